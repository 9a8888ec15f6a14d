// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/arscore/ars"
)

// Weibull is the Weibull(Lambda, K) distribution, parameterized by scale
// Lambda and shape K, restricted to K > 1 where log f is concave.
type Weibull struct {
	Lambda float64
	K      float64
}

// NewWeibull validates lambda and k and returns a Weibull LogDensity.
// K <= 1 is rejected because the Weibull log-density is not concave
// there; lambda <= 0 is not a valid scale.
func NewWeibull(lambda, k float64) (Weibull, error) {
	if k <= 1 {
		return Weibull{}, fmt.Errorf("%w: weibull shape %g <= 1 is not log-concave", ars.ErrInvalidParameter, k)
	}
	if lambda <= 0 {
		return Weibull{}, fmt.Errorf("%w: weibull scale %g <= 0", ars.ErrInvalidParameter, lambda)
	}
	return Weibull{Lambda: lambda, K: k}, nil
}

// LogProb returns h(x) = (k-1)*log(x) - (x/lambda)^k.
func (w Weibull) LogProb(x float64) float64 {
	return (w.K-1)*math.Log(x) - math.Pow(x/w.Lambda, w.K)
}

// LogProbDeriv returns h'(x) = (k-1)/x - (k/lambda)*(x/lambda)^(k-1).
func (w Weibull) LogProbDeriv(x float64) float64 {
	return (w.K-1)/x - (w.K/w.Lambda)*math.Pow(x/w.Lambda, w.K-1)
}

// InitPoints returns two abscissae bracketing the mode.
func (w Weibull) InitPoints() (low, high float64) {
	mode := w.Lambda * math.Pow((w.K-1)/w.K, 1/w.K)
	return mode / 2, mode + w.Lambda
}
