// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package tower

import "fmt"

// DefaultMaxLevel is the depth guard a Field is built with unless
// WithMaxLevel says otherwise. T8 elements are 256 bits wide, which is as
// deep as the schoolbook recursion stays pleasant.
const DefaultMaxLevel = 8

// maxLevelLimit bounds WithMaxLevel so widths fit a uint on every platform.
const maxLevelLimit = 24

// Option configures a Field at construction.
type Option func(*fieldConfig) error

type fieldConfig struct {
	maxLevel  uint
	constants map[uint]Element
}

// WithMaxLevel sets the highest tower level the Field accepts. Operations on
// deeper elements fail with ErrLevelTooDeep.
func WithMaxLevel(level uint) Option {
	return func(cfg *fieldConfig) error {
		if level > maxLevelLimit {
			return fmt.Errorf("tower: max level %d out of range [0, %d]", level, maxLevelLimit)
		}
		cfg.maxLevel = level
		return nil
	}
}

// WithConstants overrides entries of the extension-constant table: the value
// at key k becomes c_k, the linear coefficient of the level-k modulus
// X² + c_k·X + 1, and must be an element of T_(k-1). Levels not present keep
// the canonical Wiedemann constant. Meant for experiments with non-canonical
// towers; the defaults are the ones the worked bitstring examples assume.
func WithConstants(constants map[uint]Element) Option {
	return func(cfg *fieldConfig) error {
		cfg.constants = constants
		return nil
	}
}
