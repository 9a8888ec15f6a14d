// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ars

// HullSegment is one piece of a Hull's piecewise-exponential upper
// envelope: the tangent to the target log-density taken at LeftX, and the
// interval of authority (z_prev, Z] over which that tangent dominates.
//
// All of RawIntegral, RawCumulativeIntegral, Prob and CumProb are
// logarithms, so that Hull's arithmetic never leaves log-space.
type HullSegment struct {
	// LeftX is the support abscissa x_j at which the tangent is taken.
	LeftX float64
	// HX is h(LeftX), the log-density (unshifted by the hull's max).
	HX float64
	// HPrimeX is h'(LeftX).
	HPrimeX float64
	// Z is the abscissa where this segment's tangent intersects the next
	// segment's tangent; +Inf for the rightmost segment.
	Z float64
	// RawIntegral is log(∫ exp(h_upper(x) - M) dx) over this segment's
	// interval, where M is the hull's upperHullMax shift.
	RawIntegral float64
	// RawCumulativeIntegral is log of the cumulative integral up to and
	// including this segment.
	RawCumulativeIntegral float64
	// Prob is this segment's log normalized probability mass.
	Prob float64
	// CumProb is the log cumulative normalized probability up to and
	// including this segment.
	CumProb float64
}
