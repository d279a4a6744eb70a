// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package tower

import (
	"math/bits"
)

// Element is one element of T_k, the k-th field of the Wiedemann tower.
// It pairs a bit pattern of length 2^k with its level k. Elements are
// immutable values; two elements are equal iff their levels and bit patterns
// are. The zero value of the type is the zero element of T0.
type Element struct {
	level uint
	vec   bitVec
}

// Zero returns the additive identity of T_level.
func Zero(level uint) Element {
	return Element{level: level, vec: newBitVec(1 << level)}
}

// One returns the multiplicative identity of T_level.
func One(level uint) Element {
	return Element{level: level, vec: bitVecOne(1 << level)}
}

// generator returns X_(level-1), the generator of T_level over T_(level-1).
// Its single set bit sits at the bottom of the high half. level must be ≥ 1.
func generator(level uint) Element {
	v := newBitVec(1 << level)
	v.bits.Set(1 << (level - 1))
	return Element{level: level, vec: v}
}

// Parse converts an LSB-first bitstring into the tower element it represents.
// It returns a ShapeError if the length is not a power of two and a
// SyntaxError on any character other than '0' or '1'. Parse performs no
// depth check; use Field.Parse to honor a configured maximum level.
func Parse(s string) (Element, error) {
	n := uint(len(s))
	if !isPowerOfTwo(n) {
		return Element{}, ShapeError{Len: len(s)}
	}
	v := newBitVec(n)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.bits.Set(uint(i))
		case '0':
		default:
			return Element{}, SyntaxError{Pos: i + 1, Char: s[i]}
		}
	}
	return Element{level: uint(bits.TrailingZeros(n)), vec: v}, nil
}

// Level returns k for an element of T_k.
func (e Element) Level() uint {
	return e.level
}

// BitLen returns 2^k, the width of the element's bit pattern.
func (e Element) BitLen() uint {
	return 1 << e.level
}

func (e Element) IsZero() bool {
	return e.bv().isZero()
}

func (e Element) IsOne() bool {
	return e.bv().equal(bitVecOne(1 << e.level))
}

// Equal reports bitwise equality; elements of different levels are never
// equal.
func (e Element) Equal(o Element) bool {
	return e.level == o.level && e.bv().equal(o.bv())
}

// String renders the element as its canonical LSB-first bitstring,
// zero-padded to 2^k characters. It is the exact inverse of Parse.
func (e Element) String() string {
	return e.bv().String()
}

// Lift embeds the element into T_level for level ≥ its own, zero-padding the
// high bits. The embedding is the natural one: T_k is a subfield of T_level,
// so arithmetic commutes with lifting.
func (e Element) Lift(level uint) (Element, error) {
	if level < e.level {
		return Element{}, LevelMismatchError{A: e.level, B: level}
	}
	if level == e.level {
		return e, nil
	}
	v := newBitVec(1 << level)
	src := e.bv()
	for i := uint(0); i < src.n; i++ {
		if src.bits.Test(i) {
			v.bits.Set(i)
		}
	}
	return Element{level: level, vec: v}, nil
}

// bv normalizes the zero value of Element, whose vec is unallocated.
func (e Element) bv() bitVec {
	if e.vec.bits == nil {
		return newBitVec(1 << e.level)
	}
	return e.vec
}
