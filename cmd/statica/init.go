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

// initCommand implements the init command.
type initCommand struct {
	flagset *flag.FlagSet
	verbose bool
}

// NewInitCommand creates a new init command.
func NewInitCommand() *initCommand {
	c := initCommand{}
	c.flagset = flag.NewFlagSet("init", flag.ExitOnError)
	c.flagset.BoolVar(&c.verbose, "verbose", false, "Use verbose output")
	c.flagset.Usage = func() {
		fmt.Println("Usage: statica init [OPTIONS]")
		fmt.Println()
		fmt.Println("Generate a new configuration file.")
		fmt.Println()
		fmt.Println("Options:")
		c.flagset.PrintDefaults()
		fmt.Println()
	}

	return &c
}

// Name returns the command name.
func (c *initCommand) Name() string {
	return c.flagset.Name()
}

// Description returns the command description.
func (c *initCommand) Description() string {
	return "Generate a new configuration file"
}

// Parse parses the command arguments.
func (c *initCommand) Parse(args []string) error {
	if err := c.flagset.Parse(args); err != nil {
		return errors.New("parse arguments")
	}
	if len(c.flagset.Args()) > 0 {
		return errors.New("check arguments")
	}

	return nil
}

// Execute executes the command.
func (c *initCommand) Execute() error {
	if err := statica.GenerateConfig(); err != nil {
		fmt.Printf("Failed to generate configuration: %s\n", err)
		return fmt.Errorf("generate config: %v", err)
	}

	return nil
}

var _ command = (*initCommand)(nil)
