// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package cmd is the CLI for the towercalc binary field calculator
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/towercalc/towercalc/logger"
	"github.com/towercalc/towercalc/tower"
)

var rootCmd = &cobra.Command{
	Use:   "towercalc",
	Short: "calculator over the Wiedemann tower of binary fields",
	Long: `towercalc evaluates expressions over the Wiedemann tower of binary fields.
Elements are bitstrings of length 2^k written LSB first; see "towercalc repl"
for the representation cheat sheet.`,
	Version: tower.Version.String(),
}

var fMaxLevel uint

func init() {
	rootCmd.PersistentFlags().UintVar(&fMaxLevel, "max-level", tower.DefaultMaxLevel, "highest tower level accepted (elements up to 2^level bits)")
}

func newField() (*tower.Field, error) {
	f, err := tower.NewField(tower.WithMaxLevel(fMaxLevel))
	if err != nil {
		return nil, err
	}
	log := logger.Logger()
	log.Debug().Uint("maxLevel", fMaxLevel).Msg("field initialized")
	return f, nil
}

// Execute runs the root command; on error the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
