// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package tower

import "fmt"

// Field carries the immutable configuration of a Wiedemann tower: the
// maximum supported level and the per-level extension constants. It holds no
// other state, so a single Field may be shared freely across goroutines and
// every operation is a pure function of its operands.
type Field struct {
	maxLevel uint

	// constants[k-1] is c_k ∈ T_(k-1), the linear coefficient of the
	// level-k modulus X_(k-1)² + c_k·X_(k-1) + 1. Canonically c_1 = 1 and
	// c_k = X_(k-2) beyond that.
	constants []bitVec
}

// NewField builds a Field for the canonical Wiedemann tower up to
// DefaultMaxLevel, subject to the given options.
func NewField(opts ...Option) (*Field, error) {
	cfg := fieldConfig{maxLevel: DefaultMaxLevel}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Field{
		maxLevel:  cfg.maxLevel,
		constants: make([]bitVec, cfg.maxLevel),
	}
	for k := uint(1); k <= cfg.maxLevel; k++ {
		if k == 1 {
			f.constants[0] = bitVecOne(1)
		} else {
			f.constants[k-1] = generator(k - 1).vec
		}
	}
	for k, c := range cfg.constants {
		if k < 1 || k > cfg.maxLevel {
			return nil, fmt.Errorf("tower: constant for level %d outside [1, %d]: %w", k, cfg.maxLevel, ErrLevelTooDeep)
		}
		if c.level != k-1 {
			return nil, LevelMismatchError{A: c.level, B: k - 1}
		}
		f.constants[k-1] = c.bv()
	}
	return f, nil
}

// MaxLevel returns the depth guard the field was configured with.
func (f *Field) MaxLevel() uint {
	return f.maxLevel
}

// Constant returns c_level, the extension constant of the level-th quadratic
// step, as an element of T_(level-1).
func (f *Field) Constant(level uint) (Element, error) {
	if level < 1 || level > f.maxLevel {
		return Element{}, fmt.Errorf("tower: no constant for level %d: %w", level, ErrLevelTooDeep)
	}
	return Element{level: level - 1, vec: f.constants[level-1]}, nil
}

// Parse is Element's Parse with the field's depth guard applied.
func (f *Field) Parse(s string) (Element, error) {
	e, err := Parse(s)
	if err != nil {
		return Element{}, err
	}
	if err := f.checkLevel(e.level); err != nil {
		return Element{}, err
	}
	return e, nil
}

// Add returns a+b. In characteristic two this is XOR, so addition is its own
// inverse and Add(a, a) is zero at every level.
func (f *Field) Add(a, b Element) (Element, error) {
	if err := f.check(a, b); err != nil {
		return Element{}, err
	}
	return Element{level: a.level, vec: a.bv().xor(b.bv())}, nil
}

// Mul returns a·b by the schoolbook quadratic-extension recursion: each
// level performs four half-width multiplications plus one by the level
// constant, 4^k single-bit ANDs in total. Efficiency could be improved with
// Karatsuba.
func (f *Field) Mul(a, b Element) (Element, error) {
	if err := f.check(a, b); err != nil {
		return Element{}, err
	}
	return Element{level: a.level, vec: f.mul(a.level, a.bv(), b.bv())}, nil
}

// Square returns a·a.
func (f *Field) Square(a Element) (Element, error) {
	return f.Mul(a, a)
}

// MulByGen returns a·X_(level-1), the product with the level's own
// generator. At level 0 the generator is taken to be 1.
func (f *Field) MulByGen(a Element) (Element, error) {
	if err := f.checkLevel(a.level); err != nil {
		return Element{}, err
	}
	return Element{level: a.level, vec: f.mulByGen(a.level, a.bv())}, nil
}

// Inverse returns the multiplicative inverse of a, or ErrDivisionByZero if a
// is the zero element. It runs the Fan–Paar recursion: the norm of a down to
// T_(k-1) is inverted there, and the inverse lifts back up with two more
// multiplications per level.
func (f *Field) Inverse(a Element) (Element, error) {
	if err := f.checkLevel(a.level); err != nil {
		return Element{}, err
	}
	v, err := f.inv(a.level, a.bv())
	if err != nil {
		return Element{}, err
	}
	return Element{level: a.level, vec: v}, nil
}

// Div returns a/b, i.e. Mul(a, Inverse(b)).
func (f *Field) Div(a, b Element) (Element, error) {
	if err := f.check(a, b); err != nil {
		return Element{}, err
	}
	binv, err := f.inv(b.level, b.bv())
	if err != nil {
		return Element{}, err
	}
	return Element{level: a.level, vec: f.mul(a.level, a.bv(), binv)}, nil
}

func (f *Field) check(a, b Element) error {
	if a.level != b.level {
		return LevelMismatchError{A: a.level, B: b.level}
	}
	return f.checkLevel(a.level)
}

func (f *Field) checkLevel(level uint) error {
	if level > f.maxLevel {
		return fmt.Errorf("tower: T%d beyond configured maximum T%d: %w", level, f.maxLevel, ErrLevelTooDeep)
	}
	return nil
}

func (f *Field) mul(level uint, a, b bitVec) bitVec {
	if level == 0 {
		// GF(2): multiplication is AND
		out := newBitVec(1)
		if a.bits.Test(0) && b.bits.Test(0) {
			out.bits.Set(0)
		}
		return out
	}

	a1, a0 := a.split()
	b1, b0 := b.split()

	p00 := f.mul(level-1, a0, b0)
	p01 := f.mul(level-1, a0, b1)
	p10 := f.mul(level-1, a1, b0)
	p11 := f.mul(level-1, a1, b1)

	// (a0 + a1·X)(b0 + b1·X) with X² = c·X + 1
	lo := p00.xor(p11)
	hi := p01.xor(p10).xor(f.mul(level-1, f.constants[level-1], p11))
	return join(hi, lo)
}

func (f *Field) mulByGen(level uint, a bitVec) bitVec {
	if level == 0 {
		return a
	}
	a1, a0 := a.split()
	// X·(a0 + a1·X) = a1 + (a0 + c·a1)·X
	hi := a0.xor(f.mul(level-1, f.constants[level-1], a1))
	return join(hi, a1)
}

func (f *Field) inv(level uint, a bitVec) (bitVec, error) {
	if a.isZero() {
		return bitVec{}, ErrDivisionByZero
	}
	if level == 0 {
		// 1 is its own inverse
		return a, nil
	}

	a1, a0 := a.split()
	c := f.constants[level-1]

	// norm of a down to T_(level-1): a0·(a0 + c·a1) + a1², zero only when
	// a is. A degenerate constant table could break that; the recursive
	// call then reports the division by zero rather than masking it.
	t := a0.xor(f.mul(level-1, c, a1))
	norm := f.mul(level-1, a0, t).xor(f.mul(level-1, a1, a1))

	ninv, err := f.inv(level-1, norm)
	if err != nil {
		return bitVec{}, err
	}
	return join(f.mul(level-1, ninv, a1), f.mul(level-1, ninv, t)), nil
}
