// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ars

import "math"

// logSumExp returns log(exp(a) + exp(b)), computed so that it neither
// overflows nor underflows for large-magnitude a, b, and so that -Inf is
// absorbed correctly (an empty cumulative sum starts at -Inf). Ground:
// the two-term specialization of gonum's floats.LogSumExp.
func logSumExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a > b {
		return a + math.Log1p(math.Exp(b-a))
	}
	return b + math.Log1p(math.Exp(a-b))
}
