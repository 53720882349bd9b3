// Copyright 2025-2026 The statica authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
)

// command
type command interface {
	Name() string
	Description() string
	Parse(args []string) error
	Execute() error
}

// main is the entrypoint.
func main() {
	err := run()
	if err != nil {
		os.Exit(1)
	}
}

// run parses and executes the command line.
func run() error {
	commands := []command{
		NewInitCommand(),
		NewCheckCommand(),
		NewServeCommand(),
		NewVersionCommand(),
	}

	flag.Usage = func() {
		fmt.Println()
		fmt.Println("Usage: statica COMMAND")
		fmt.Println()
		fmt.Println("Commands:")
		for _, c := range commands {
			fmt.Printf("  %-16s %s\n", c.Name(), c.Description())
		}
		fmt.Println()
		fmt.Println("Run 'statica COMMAND --help' for more information on a command.")
	}
	flag.Parse()
	if len(flag.Args()) == 0 {
		flag.Usage()
		return nil
	}

	for _, c := range commands {
		if c.Name() != flag.Args()[0] {
			continue
		}

		if err := c.Parse(flag.Args()[1:]); err != nil {
			return err
		}
		if err := c.Execute(); err != nil {
			return err
		}

		return nil
	}

	fmt.Printf("Unknown command '%s'\n", flag.Args()[0])
	flag.Usage()

	return fmt.Errorf("unknown command %s", flag.Args()[0])
}
