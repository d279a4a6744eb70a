// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package tower

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Inverse and Div when the divisor is
	// the zero element, at any tower level.
	ErrDivisionByZero = errors.New("tower: division by zero")

	// ErrLevelTooDeep is returned when an element's level exceeds the
	// maximum the Field was configured with.
	ErrLevelTooDeep = errors.New("tower: level exceeds field maximum")
)

// ShapeError reports a bit length that is not a power of two.
type ShapeError struct {
	Len int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("tower: bit length %d is not a power of two", e.Len)
}

// LevelMismatchError reports an operation between elements of different
// tower levels.
type LevelMismatchError struct {
	A, B uint
}

func (e LevelMismatchError) Error() string {
	return fmt.Sprintf("tower: level mismatch (T%d vs T%d)", e.A, e.B)
}

// SyntaxError reports a character other than '0' or '1' in a bitstring.
// Pos is 1-based.
type SyntaxError struct {
	Pos  int
	Char byte
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("tower: invalid character %q at position %d, want '0' or '1'", e.Char, e.Pos)
}
