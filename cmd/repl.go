// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/towercalc/towercalc/calc"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "interactive prompt loop reading one expression per line",
	RunE:  cmdRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func cmdRepl(cmd *cobra.Command, args []string) error {
	f, err := newField()
	if err != nil {
		return err
	}
	return calc.REPL(f, os.Stdin, os.Stdout, os.Stderr)
}
