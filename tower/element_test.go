// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package tower

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "10", "01", "1001", "0000", "1010110100101101"} {
		e, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, e.String())

		back, err := Parse(e.String())
		require.NoError(t, err)
		assert.True(t, e.Equal(back))
	}
}

func TestParseErrors(t *testing.T) {
	var shapeErr ShapeError
	for _, s := range []string{"", "101", "10110", "0000000"} {
		_, err := Parse(s)
		require.ErrorAs(t, err, &shapeErr, "%q", s)
		assert.Equal(t, len(s), shapeErr.Len)
	}

	var synErr SyntaxError
	_, err := Parse("10x0")
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 3, synErr.Pos)
	assert.Equal(t, byte('x'), synErr.Char)
}

func TestZeroOne(t *testing.T) {
	for level := uint(0); level <= 4; level++ {
		z, o := Zero(level), One(level)
		assert.Equal(t, level, z.Level())
		assert.Equal(t, uint(1)<<level, z.BitLen())
		assert.True(t, z.IsZero())
		assert.False(t, z.IsOne())
		assert.True(t, o.IsOne())
		assert.False(t, o.IsZero())
	}
	assert.Equal(t, "1000", One(2).String())
	assert.Equal(t, "0000", Zero(2).String())

	// the zero Element value behaves as the zero of T0
	var e Element
	assert.True(t, e.IsZero())
	assert.Equal(t, "0", e.String())
	assert.True(t, e.Equal(Zero(0)))
}

func TestGenerator(t *testing.T) {
	assert.Equal(t, "01", generator(1).String())
	assert.Equal(t, "0010", generator(2).String())
	assert.Equal(t, "00001000", generator(3).String())
}

func TestEqualLevels(t *testing.T) {
	// same bit pattern, different field
	a, b := One(1), One(2)
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(One(1)))
}

func TestLift(t *testing.T) {
	e, err := Parse("01")
	require.NoError(t, err)

	up, err := e.Lift(3)
	require.NoError(t, err)
	assert.Equal(t, "01000000", up.String())

	same, err := e.Lift(1)
	require.NoError(t, err)
	assert.True(t, e.Equal(same))

	_, err = up.Lift(1)
	var mismatch LevelMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestLiftCommutesWithArithmetic(t *testing.T) {
	f, err := NewField()
	require.NoError(t, err)

	a, err := Parse("0110")
	require.NoError(t, err)
	b, err := Parse("1011")
	require.NoError(t, err)

	prod, err := f.Mul(a, b)
	require.NoError(t, err)

	aUp, err := a.Lift(4)
	require.NoError(t, err)
	bUp, err := b.Lift(4)
	require.NoError(t, err)
	prodUp, err := f.Mul(aUp, bUp)
	require.NoError(t, err)

	lifted, err := prod.Lift(4)
	require.NoError(t, err)
	assert.True(t, prodUp.Equal(lifted), "lifting is a field embedding")
}

func TestLevelMismatchIsError(t *testing.T) {
	f, err := NewField()
	require.NoError(t, err)

	_, err = f.Add(One(1), One(2))
	var mismatch LevelMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint(1), mismatch.A)
	assert.Equal(t, uint(2), mismatch.B)

	_, err = f.Mul(One(1), One(2))
	assert.ErrorAs(t, err, &mismatch)
	_, err = f.Div(One(1), One(2))
	assert.ErrorAs(t, err, &mismatch)
	assert.False(t, errors.Is(err, ErrDivisionByZero))
}
