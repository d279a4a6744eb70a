// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package calc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/towercalc/towercalc/tower"
)

func runREPL(t *testing.T, input string) (out, errOut string) {
	t.Helper()
	f, err := tower.NewField()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	require.NoError(t, REPL(f, strings.NewReader(input), &stdout, &stderr))
	return stdout.String(), stderr.String()
}

func TestREPLSession(t *testing.T) {
	out, errOut := runREPL(t, strings.Join([]string{
		"0010 * 1001",
		"",          // blank lines are skipped
		"_ + 0101",  // uses the previous result
		"10 / 00",   // error, loop continues
		"_ * 1000",  // memory survived the error
		"EXIT",      // case-insensitive
		"0001 0001", // never reached
	}, "\n"))

	assert.Contains(t, out, "=0101\n")
	assert.Contains(t, out, "=0000\n")
	assert.Contains(t, out, "Goodbye!\n")
	assert.Contains(t, errOut, "division by zero")
	assert.NotContains(t, out, "=0001")

	// results in order: the '_' memory after the error is still 0000
	i, j := strings.Index(out, "=0101"), strings.LastIndex(out, "=0000")
	assert.Less(t, i, j)
}

func TestREPLEOF(t *testing.T) {
	out, errOut := runREPL(t, "1001 + 1000\n")
	assert.Contains(t, out, "=0001\n")
	assert.Contains(t, out, "Goodbye!\n")
	assert.Empty(t, errOut)
}

func TestREPLBanner(t *testing.T) {
	out, _ := runREPL(t, "")
	assert.Contains(t, out, "Wiedemann tower")
	assert.Contains(t, out, "'_' is the previous result")
	assert.Contains(t, out, "Goodbye!")
}

func TestREPLSyntaxError(t *testing.T) {
	_, errOut := runREPL(t, "10 + + 10\n")
	assert.Contains(t, errOut, "Error: syntax error at position 6")
}
