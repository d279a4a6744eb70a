// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package tower

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// bitVec is a fixed-width bit vector whose length is always a power of two.
// Bit i is the coefficient of the i-th basis monomial; the low half is the
// T_(k-1) component and the high half the coefficient of the top generator.
// A bitVec is never mutated after it leaves the function that built it; the
// length invariant is enforced where operands enter the package (Parse,
// NewField), so internal ops just assume it.
type bitVec struct {
	n    uint
	bits *bitset.BitSet
}

func newBitVec(n uint) bitVec {
	return bitVec{n: n, bits: bitset.New(n)}
}

// bitVecOne is the multiplicative identity at width n: only bit 0 set.
func bitVecOne(n uint) bitVec {
	v := newBitVec(n)
	v.bits.Set(0)
	return v
}

func isPowerOfTwo(n uint) bool {
	return n != 0 && n&(n-1) == 0
}

func (v bitVec) isZero() bool {
	return v.bits.None()
}

func (v bitVec) equal(o bitVec) bool {
	return v.n == o.n && v.bits.Equal(o.bits)
}

// xor is addition in every binary field. Operand widths are equal by the
// package invariant.
func (v bitVec) xor(o bitVec) bitVec {
	return bitVec{n: v.n, bits: v.bits.SymmetricDifference(o.bits)}
}

// split halves v into its generator coefficient (hi) and its T_(k-1)
// component (lo).
func (v bitVec) split() (hi, lo bitVec) {
	half := v.n / 2
	hi, lo = newBitVec(half), newBitVec(half)
	for i := uint(0); i < half; i++ {
		if v.bits.Test(i) {
			lo.bits.Set(i)
		}
		if v.bits.Test(half + i) {
			hi.bits.Set(i)
		}
	}
	return hi, lo
}

// join is the inverse of split.
func join(hi, lo bitVec) bitVec {
	v := newBitVec(2 * lo.n)
	for i := uint(0); i < lo.n; i++ {
		if lo.bits.Test(i) {
			v.bits.Set(i)
		}
		if hi.bits.Test(i) {
			v.bits.Set(lo.n + i)
		}
	}
	return v
}

// String renders v least significant bit first, zero-padded to its width.
func (v bitVec) String() string {
	var sb strings.Builder
	sb.Grow(int(v.n))
	for i := uint(0); i < v.n; i++ {
		if v.bits.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
