// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package calc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/towercalc/towercalc/tower"
)

const banner = `Bitstrings are elements of the Wiedemann tower, written LSB first, length a power of 2.
T1: 00 = 0, 10 = 1, 01 = X0, 11 = 1 + X0
T2: 0000 = 0, 1000 = 1, .., 1010 = 1 + X1, .., 1001 = 1 + X0X1
Operators: '*', '/', '+', '()'; '_' is the previous result.
Type 'exit' or press Ctrl+D to quit.
`

// REPL reads expressions from in line by line and writes each result to out
// as "=<bits>". Evaluation errors go to errOut and do not stop the loop or
// clobber the '_' memory. The loop ends on "exit" or EOF.
func REPL(f *tower.Field, in io.Reader, out, errOut io.Writer) error {
	ev := NewEvaluator(f)

	fmt.Fprint(out, banner)
	fmt.Fprintln(out)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			break
		}
		v, err := ev.Eval(line)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "=%s\n", v)
	}

	fmt.Fprintln(out, "Goodbye!")
	return sc.Err()
}
