// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/arscore/ars"
	"github.com/arscore/ars/dist"
)

func TestNewWeibullInvalidParameter(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		lambda, k float64
	}{
		{1, 0.5},
		{1, 1},
		{0, 2},
		{-1, 2},
	} {
		if _, err := dist.NewWeibull(test.lambda, test.k); !errors.Is(err, ars.ErrInvalidParameter) {
			t.Errorf("NewWeibull(%v, %v): got err %v, want wrapping ErrInvalidParameter", test.lambda, test.k, err)
		}
	}
}

func TestWeibullLogProbDeriv(t *testing.T) {
	t.Parallel()
	w, err := dist.NewWeibull(2, 3)
	if err != nil {
		t.Fatalf("NewWeibull: %v", err)
	}
	for _, x := range []float64{0.1, 0.5, 1, 2, 4, 8} {
		got := w.LogProbDeriv(x)
		want := fd.Derivative(w.LogProb, x, nil)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-6, 1e-6) {
			t.Errorf("LogProbDeriv(%v) = %v, want %v (finite-difference)", x, got, want)
		}
	}
}

func TestWeibullInitPointsBracketMode(t *testing.T) {
	t.Parallel()
	for _, test := range []struct{ lambda, k float64 }{
		{1, 2}, {2, 3}, {1, 5}, {3.6, 2},
	} {
		w, err := dist.NewWeibull(test.lambda, test.k)
		if err != nil {
			t.Fatalf("NewWeibull(%v, %v): %v", test.lambda, test.k, err)
		}
		low, high := w.InitPoints()
		if !(low > 0) {
			t.Errorf("lambda=%v k=%v: InitPoints low = %v, want > 0", test.lambda, test.k, low)
		}
		if !(high > low) {
			t.Errorf("lambda=%v k=%v: InitPoints high = %v <= low = %v", test.lambda, test.k, high, low)
		}
		if d := w.LogProbDeriv(low); d <= 0 {
			t.Errorf("lambda=%v k=%v: LogProbDeriv(low=%v) = %v, want > 0", test.lambda, test.k, low, d)
		}
	}
}
