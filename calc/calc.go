// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package calc evaluates bitstring expressions over a Wiedemann tower field.
//
// The grammar is
//
//	expression := term { '+' term }
//	term       := factor { ('*' | '/') factor }
//	factor     := bitstring | '_' | '(' expression ')'
//
// where a bitstring is a run of '0'/'1' of power-of-two length and '_'
// stands for the previous successful result. Operands of different lengths
// are lifted into the larger field before combining.
package calc

import (
	"fmt"

	"github.com/towercalc/towercalc/tower"
)

// SyntaxError reports a malformed expression. Pos is the 1-based character
// position of the offending input.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

// Evaluator evaluates expressions one at a time, remembering the last result
// for '_' substitution. It is not safe for concurrent use; the underlying
// Field is.
type Evaluator struct {
	field *tower.Field
	prev  *tower.Element
}

func NewEvaluator(f *tower.Field) *Evaluator {
	return &Evaluator{field: f}
}

// Eval parses and evaluates one expression. On success the result becomes
// the new previous value; on error the previous value is kept.
func (ev *Evaluator) Eval(input string) (tower.Element, error) {
	p := &parser{in: input, field: ev.field, prev: ev.prev}
	v, err := p.expression()
	if err != nil {
		return tower.Element{}, err
	}
	p.skipSpace()
	if p.pos < len(p.in) {
		return tower.Element{}, &SyntaxError{Pos: p.pos + 1, Msg: fmt.Sprintf("unexpected character %q", p.in[p.pos])}
	}
	ev.prev = &v
	return v, nil
}

// Prev returns the previous result, if any.
func (ev *Evaluator) Prev() (tower.Element, bool) {
	if ev.prev == nil {
		return tower.Element{}, false
	}
	return *ev.prev, true
}

type parser struct {
	in    string
	pos   int
	field *tower.Field
	prev  *tower.Element
}

func (p *parser) expression() (tower.Element, error) {
	v, err := p.term()
	if err != nil {
		return tower.Element{}, err
	}
	for {
		p.skipSpace()
		if !p.eat('+') {
			return v, nil
		}
		rhs, err := p.term()
		if err != nil {
			return tower.Element{}, err
		}
		if v, err = p.combine(p.field.Add, v, rhs); err != nil {
			return tower.Element{}, err
		}
	}
}

func (p *parser) term() (tower.Element, error) {
	v, err := p.factor()
	if err != nil {
		return tower.Element{}, err
	}
	for {
		p.skipSpace()
		switch {
		case p.eat('*'):
			rhs, err := p.factor()
			if err != nil {
				return tower.Element{}, err
			}
			if v, err = p.combine(p.field.Mul, v, rhs); err != nil {
				return tower.Element{}, err
			}
		case p.eat('/'):
			rhs, err := p.factor()
			if err != nil {
				return tower.Element{}, err
			}
			if v, err = p.combine(p.field.Div, v, rhs); err != nil {
				return tower.Element{}, err
			}
		default:
			return v, nil
		}
	}
}

func (p *parser) factor() (tower.Element, error) {
	p.skipSpace()
	switch c, ok := p.peek(); {
	case !ok:
		return tower.Element{}, &SyntaxError{Pos: p.pos + 1, Msg: "unexpected end of input"}
	case c == '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return tower.Element{}, err
		}
		p.skipSpace()
		if !p.eat(')') {
			return tower.Element{}, &SyntaxError{Pos: p.pos + 1, Msg: "expected ')'"}
		}
		return v, nil
	case c == '_':
		p.pos++
		if p.prev == nil {
			return tower.Element{}, &SyntaxError{Pos: p.pos, Msg: "no previous result available"}
		}
		return *p.prev, nil
	case c == '0' || c == '1':
		start := p.pos
		for {
			c, ok := p.peek()
			if !ok || (c != '0' && c != '1') {
				break
			}
			p.pos++
		}
		return p.field.Parse(p.in[start:p.pos])
	default:
		return tower.Element{}, &SyntaxError{Pos: p.pos + 1, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
}

// combine lifts both operands into the larger of their fields and applies
// op, so "01 + 0010" means X0 + X1 in T2.
func (p *parser) combine(op func(a, b tower.Element) (tower.Element, error), a, b tower.Element) (tower.Element, error) {
	level := max(a.Level(), b.Level())
	a, err := a.Lift(level)
	if err != nil {
		return tower.Element{}, err
	}
	b, err = b.Lift(level)
	if err != nil {
		return tower.Element{}, err
	}
	return op(a, b)
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.in) {
		return 0, false
	}
	return p.in[p.pos], true
}

func (p *parser) eat(c byte) bool {
	if got, ok := p.peek(); ok && got == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for {
		c, ok := p.peek()
		if !ok || (c != ' ' && c != '\t') {
			return
		}
		p.pos++
	}
}
