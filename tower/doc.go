// Copyright 2020-2024 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package tower implements arithmetic over the Wiedemann tower of binary
// fields: the chain GF(2) = T0 ⊂ T1 ⊂ T2 ⊂ … where each T_k is the quadratic
// extension of T_(k-1) by a generator X_(k-1) satisfying
//
//	X_(k-1)² + c_k·X_(k-1) + 1 = 0, c_1 = 1, c_k = X_(k-2) for k ≥ 2.
//
// An element of T_k is a bitstring of length 2^k, written least significant
// bit first: bit i is the coefficient of the i-th basis monomial, so the low
// half of the string is the T_(k-1) component and the high half the
// coefficient of X_(k-1). For example at level 1, "10" is 1 and "01" is X0;
// at level 2, "1001" is 1 + X0X1.
//
// All operations are pure: a Field carries only its immutable extension
// constants, and every call returns a fresh Element. Multiplication is the
// plain schoolbook recursion (4 sub-multiplications per level) and inversion
// is the Fan–Paar norm recursion; neither is optimized.
package tower

import "github.com/blang/semver/v4"

// Version of the towercalc module.
var Version = semver.MustParse("0.1.0")
