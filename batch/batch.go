// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch is the host-facing entrypoint layer: thin wrappers
// returning dense []float64 arrays, in the shape a language-binding layer
// would hand back to a calling runtime. Ground: the original ars.cpp's
// BOOST_PYTHON_MODULE(ars) binding of GetUniform, extended here with the
// symmetric GetGamma/GetWeibull the same binding exposed alongside it.
//
// This package is deliberately thin: it owns no state of its own beyond
// what a single call needs, and every failure mode of the core (invalid
// parameters, initialization failure, sampler exhaustion) surfaces as a
// plain Go error rather than being retried or masked.
package batch

import (
	"github.com/arscore/ars"
	"github.com/arscore/ars/dist"
)

// GetUniform returns n independent uniform variates drawn from src.
func GetUniform(n int, src ars.Source) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = src.Uniform()
	}
	return out
}

// GetGamma draws n independent samples from Gamma(alpha, beta) using src,
// constructing and discarding a fresh Hull for the call. It returns
// ars.ErrInvalidParameter if alpha <= 1 or beta <= 0, and surfaces any
// ars.ErrInitializationFailure or ars.ErrSamplerExhausted encountered
// while drawing.
func GetGamma(alpha, beta float64, n int, src ars.Source) ([]float64, error) {
	d, err := dist.NewGamma(alpha, beta)
	if err != nil {
		return nil, err
	}
	return drawN(d, n, src)
}

// GetWeibull draws n independent samples from Weibull(lambda, k) using
// src. See GetGamma for the error contract.
func GetWeibull(lambda, k float64, n int, src ars.Source) ([]float64, error) {
	d, err := dist.NewWeibull(lambda, k)
	if err != nil {
		return nil, err
	}
	return drawN(d, n, src)
}

func drawN[D ars.LogDensity](d D, n int, src ars.Source) ([]float64, error) {
	h, err := ars.NewHull(d)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		x, err := h.DrawSample(src)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
