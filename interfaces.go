// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ars

// LogDensity is a target distribution for adaptive rejection sampling. Its
// log-density h must be concave on its support: h''(x) <= 0, equivalently
// f''(x)·f(x) <= f'(x)^2 everywhere f is defined. The normalizing constant of the density need
// not be included in LogProb; ARS only ever consumes h up to an additive
// constant.
//
// Implementations are only ever evaluated on the open interval (0, +Inf):
// Hull hard-codes a left integration bound of zero (zPrev starts at 0 in
// normalize and renormalize), following the original ARS implementation this package
// ports. A LogDensity supported elsewhere on the real line, or with a
// nonzero left endpoint, is out of scope; parameterizing the left bound is
// a documented open question, not silently handled.
type LogDensity interface {
	// LogProb returns h(x) = log f(x) + C for some constant C.
	LogProb(x float64) float64
	// LogProbDeriv returns h'(x).
	LogProbDeriv(x float64) float64
	// InitPoints returns two finite abscissae x0 < x1. Ideally x0 is left
	// of the mode and x1 is right of it; at minimum h'(x0) must be
	// positive, and doubling x1 must eventually reach a point where
	// h'(x1) is negative.
	InitPoints() (x0, x1 float64)
}

// Source produces independent uniform variates on the open interval
// (0, 1). Hull tolerates a closed-left [0, 1) source, but callers are
// responsible for a source that never returns exactly 0 or 1 where a
// consumer applies log(·) to it.
//
// A Hull never stores a Source; one is supplied per call to DrawSample, so
// a single Hull may be driven by different sources across calls (though
// never concurrently).
type Source interface {
	// Uniform returns an independent variate in (0, 1).
	Uniform() float64
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() float64

// Uniform calls f.
func (f SourceFunc) Uniform() float64 { return f() }
