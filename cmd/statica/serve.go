// Copyright 2025-2026 The statica authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/statica/statica/internal/app/statica"
)

// serveCommand implements the serve command.
type serveCommand struct {
	flagset *flag.FlagSet
	verbose bool
}

// NewServeCommand creates a new serve command.
func NewServeCommand() *serveCommand {
	c := serveCommand{}
	c.flagset = flag.NewFlagSet("serve", flag.ExitOnError)
	c.flagset.BoolVar(&c.verbose, "verbose", false, "Use verbose output")
	c.flagset.Usage = func() {
		fmt.Println("Usage: statica serve [OPTIONS]")
		fmt.Println()
		fmt.Println("Run the server instance.")
		fmt.Println()
		fmt.Println("Options:")
		c.flagset.PrintDefaults()
		fmt.Println()
	}

	return &c
}

// Name returns the command name.
func (c *serveCommand) Name() string {
	return c.flagset.Name()
}

// Description returns the command description.
func (c *serveCommand) Description() string {
	return "Run the server instance"
}

// Parse parses the command arguments.
func (c *serveCommand) Parse(args []string) error {
	if err := c.flagset.Parse(args); err != nil {
		return err
	}
	if len(c.flagset.Args()) > 0 {
		fmt.Println("The command accepts no arguments")
		return errors.New("invalid arguments")
	}

	return nil
}

// Execute executes the command.
func (c *serveCommand) Execute() error {
	config, err := statica.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %s\n", err)
		return err
	}

	if err := statica.New(config).Serve(); err != nil {
		fmt.Printf("Failed to run instance: %s\n", err)
		return err
	}

	return nil
}

var _ command = (*serveCommand)(nil)
