// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/towercalc/towercalc/calc"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   `eval "EXPR"`,
	Short: "evaluates a single expression and prints the result bitstring",
	Args:  cobra.MinimumNArgs(1),
	RunE:  cmdEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func cmdEval(cmd *cobra.Command, args []string) error {
	f, err := newField()
	if err != nil {
		return err
	}
	v, err := calc.NewEvaluator(f).Eval(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
