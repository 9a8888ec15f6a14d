// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides reference LogDensity implementations for the ars
// package: Gamma and Weibull, both restricted to the shape parameters
// under which they are log-concave. Ground: original_source/src/
// LogDensity.h's GammaDistribution and WeibullDistribution.
package dist

import (
	"fmt"
	"math"

	"github.com/arscore/ars"
)

// Gamma is the Gamma(Alpha, Beta) distribution, parameterized by shape
// Alpha and rate Beta, restricted to Alpha > 1 where log f is concave.
type Gamma struct {
	Alpha float64
	Beta  float64
}

// NewGamma validates alpha and beta and returns a Gamma LogDensity.
// Alpha <= 1 is rejected because the Gamma log-density is not concave
// there, violating the ARS precondition; beta <= 0 is not a valid rate.
func NewGamma(alpha, beta float64) (Gamma, error) {
	if alpha <= 1 {
		return Gamma{}, fmt.Errorf("%w: gamma shape %g <= 1 is not log-concave", ars.ErrInvalidParameter, alpha)
	}
	if beta <= 0 {
		return Gamma{}, fmt.Errorf("%w: gamma rate %g <= 0", ars.ErrInvalidParameter, beta)
	}
	return Gamma{Alpha: alpha, Beta: beta}, nil
}

// LogProb returns h(x) = (alpha-1)*log(x) - beta*x.
func (g Gamma) LogProb(x float64) float64 {
	return (g.Alpha-1)*math.Log(x) - g.Beta*x
}

// LogProbDeriv returns h'(x) = (alpha-1)/x - beta.
func (g Gamma) LogProbDeriv(x float64) float64 {
	return (g.Alpha-1)/x - g.Beta
}

// InitPoints returns two abscissae bracketing the mode, following the
// same mode/scale heuristic as the original LogDensity.h: at alpha =
// 3+2√2 ≈ 5.83 the mode minus one scale equals half the mode. Above that
// threshold mode minus one scale is the larger of the two and gives a
// tighter starting bracket; at or below it the left point is half the
// mode, since mode minus one scale is smaller there (and not positive at
// all for alpha below about 2.62).
func (g Gamma) InitPoints() (low, high float64) {
	mode := (g.Alpha - 1) / g.Beta
	scale := math.Sqrt(g.Alpha) / g.Beta
	if g.Alpha <= 5.83 {
		return mode / 2, mode + scale
	}
	return mode - scale, mode + scale
}
