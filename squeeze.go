// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ars

import "math"

// squeezeTest draws one variate from src and decides whether xTrial (from
// segment segIdx) should be accepted. When the cheap chord-based squeeze
// already settles the draw, the target log-density is never evaluated;
// otherwise hTrial holds dist.LogProb(xTrial) so the caller can reuse it
// as the new support point's h value without a second evaluation.
func (h *Hull[D]) squeezeTest(src Source, xTrial float64, segIdx int) (accept bool, hTrial float64) {
	w := math.Log(src.Uniform())

	seg := &h.segments[segIdx]
	x := seg.LeftX
	hx := seg.HX
	hpx := seg.HPrimeX
	upperVal := hx + (xTrial-x)*hpx

	var lowerVal float64
	switch {
	case xTrial <= x && segIdx > 0:
		left := &h.segments[segIdx-1]
		lowerVal = ((x-xTrial)*left.HX + (xTrial-left.LeftX)*hx) / (x - left.LeftX)
	case xTrial >= x && segIdx < h.numSegments-1:
		right := &h.segments[segIdx+1]
		lowerVal = ((right.LeftX-xTrial)*hx + (xTrial-x)*right.HX) / (right.LeftX - x)
	default:
		lowerVal = math.Inf(-1)
	}

	if w <= lowerVal-upperVal {
		return true, 0
	}

	hTrial = h.dist.LogProb(xTrial)
	return w <= hTrial-upperVal, hTrial
}
