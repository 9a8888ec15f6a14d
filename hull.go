// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ars

import "math"

const (
	// HullCapacity is the maximum number of segments a Hull will hold.
	// Fixed and preallocated, never grown: once reached, InsertSegment
	// becomes a silent no-op (the envelope is already tight).
	HullCapacity = 500

	// MaxTrials bounds the number of rejections a single DrawSample call
	// will tolerate before returning ErrSamplerExhausted.
	MaxTrials = 1000
)

// Hull is a piecewise-exponential upper envelope over a LogDensity's
// log-density, refined incrementally by inserting tangents at rejected
// proposals. It is generic over the concrete LogDensity implementation so
// that LogProb/LogProbDeriv calls are monomorphized rather than dispatched
// through an interface value on every evaluation.
//
// A Hull is not safe for concurrent use. Each goroutine sampling from a
// target distribution should own its own Hull and its own Source.
type Hull[D LogDensity] struct {
	dist D

	segments    [HullCapacity]HullSegment
	numSegments int

	// upperHullMax is the numerical shift M: the maximum value attained
	// by the (unshifted) upper envelope, fixed at initialization and
	// never refreshed. Under log-concavity, inserting tangents can only
	// lower the envelope pointwise, so M remains a valid upper bound for
	// the lifetime of the Hull even though it grows looser over time.
	upperHullMax float64
}

// NewHull constructs a Hull over dist, taking its two initial abscissae
// from dist.InitPoints and extending the right one until the log-density
// derivative there is negative. It returns ErrInitializationFailure if
// that extension cannot reach a finite abscissa with negative slope.
func NewHull[D LogDensity](dist D) (*Hull[D], error) {
	h := &Hull[D]{dist: dist, upperHullMax: math.Inf(-1)}
	if err := h.initialize(); err != nil {
		return nil, err
	}
	return h, nil
}

// Reset discards every segment beyond the initial two and reinitializes
// the Hull against dist, so the Hull can be reused for a new target
// without a new allocation. It returns ErrInitializationFailure under the
// same conditions as NewHull.
func (h *Hull[D]) Reset(dist D) error {
	h.dist = dist
	h.numSegments = 0
	h.upperHullMax = math.Inf(-1)
	return h.initialize()
}

// NumSegments reports the current number of active segments.
func (h *Hull[D]) NumSegments() int { return h.numSegments }

// Segments returns a copy of the active segments, left to right. It is
// intended for diagnostics and property testing; mutating the result does
// not affect the Hull.
func (h *Hull[D]) Segments() []HullSegment {
	out := make([]HullSegment, h.numSegments)
	copy(out, h.segments[:h.numSegments])
	return out
}

func (h *Hull[D]) initialize() error {
	x0, x1 := h.dist.InitPoints()

	h.segments[0] = HullSegment{
		LeftX:   x0,
		HX:      h.dist.LogProb(x0),
		HPrimeX: h.dist.LogProbDeriv(x0),
	}

	hpx1 := h.dist.LogProbDeriv(x1)
	for hpx1 >= 0 {
		x1 *= 2
		if !isFinite(x1) {
			return ErrInitializationFailure
		}
		hpx1 = h.dist.LogProbDeriv(x1)
	}
	h.segments[1] = HullSegment{
		LeftX:   x1,
		HX:      h.dist.LogProb(x1),
		HPrimeX: hpx1,
	}

	h.numSegments = 2
	h.setZ(&h.segments[0], &h.segments[1])
	h.segments[1].Z = math.Inf(1)
	h.initializeHullMax()
	h.normalize()
	return nil
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// setZ computes the right-hand intersection abscissa of the tangent at
// left with the tangent at right, storing it on left.Z.
func (h *Hull[D]) setZ(left, right *HullSegment) {
	s := left.HPrimeX - right.HPrimeX
	if s > 0 {
		left.Z = (right.HX - left.HX - right.LeftX*right.HPrimeX + left.LeftX*left.HPrimeX) / s
	} else {
		// Slopes equal, or inverted by numerical noise: fall back to the
		// arithmetic mean of the two log-density values.
		left.Z = (left.HX + right.HX) / 2
	}
}

// initializeHullMax sets the hull's numerical shift from segment 0 alone,
// per I5/I6: the envelope's global maximum is attained at z_0 when the
// leftmost slope is positive (the generic case), else at the left
// integration bound x = 0.
func (h *Hull[D]) initializeHullMax() {
	s0 := &h.segments[0]
	if s0.HPrimeX > 0 {
		h.upperHullMax = s0.HX + (s0.Z-s0.LeftX)*s0.HPrimeX
	} else {
		h.upperHullMax = s0.HX - s0.LeftX*s0.HPrimeX
	}
}

// integrateSegment returns log(∫_{zPrev}^{seg.Z} exp(h_upper(x) - M) dx)
// for the tangent line anchored at seg, in closed form.
func (h *Hull[D]) integrateSegment(seg *HullSegment, zPrev float64) float64 {
	xj := seg.LeftX
	hxj := seg.HX - h.upperHullMax
	hpxj := seg.HPrimeX
	zj := seg.Z

	switch {
	case hpxj == 0:
		return math.Log(zj-zPrev) + hxj
	case hpxj > 0:
		preFactor := hxj + (zj-xj)*hpxj - math.Log(hpxj)
		intFactor := math.Log1p(-math.Exp(hpxj * (zPrev - zj)))
		return preFactor + intFactor
	default:
		preFactor := hxj + (zPrev-xj)*hpxj - math.Log(-hpxj)
		intFactor := math.Log1p(-math.Exp(hpxj * (zj - zPrev)))
		return preFactor + intFactor
	}
}

// normalize performs a full left-to-right pass, setting RawIntegral and
// RawCumulativeIntegral for every segment, then a second pass assigning
// Prob and CumProb relative to the grand total.
func (h *Hull[D]) normalize() {
	cumulative := math.Inf(-1)
	zPrev := 0.0
	for i := 0; i < h.numSegments; i++ {
		seg := &h.segments[i]
		segInt := h.integrateSegment(seg, zPrev)
		cumulative = logSumExp(segInt, cumulative)
		seg.RawIntegral = segInt
		seg.RawCumulativeIntegral = cumulative
		zPrev = seg.Z
	}
	total := cumulative
	for i := 0; i < h.numSegments; i++ {
		seg := &h.segments[i]
		seg.Prob = seg.RawIntegral - total
		seg.CumProb = seg.RawCumulativeIntegral - total
	}
}

// renormalize recomputes RawIntegral only for segments within one position
// of insertIdx (clamped to the active range), since inserting a support
// point only changes integration bounds for its immediate neighbours. The
// cumulative sum and the final Prob/CumProb pass still run over every
// segment, since z-coordinate shifts ripple the running total forward.
func (h *Hull[D]) renormalize(insertIdx int) {
	idxMin := insertIdx - 1
	if idxMin < 0 {
		idxMin = 0
	}
	idxMax := insertIdx + 1
	if idxMax > h.numSegments-1 {
		idxMax = h.numSegments - 1
	}

	cumulative := math.Inf(-1)
	zPrev := 0.0
	if idxMin > 0 {
		zPrev = h.segments[idxMin-1].Z
		cumulative = h.segments[idxMin-1].RawCumulativeIntegral
	}

	for k := idxMin; k < h.numSegments; k++ {
		seg := &h.segments[k]
		if k <= idxMax {
			seg.RawIntegral = h.integrateSegment(seg, zPrev)
		}
		cumulative = logSumExp(seg.RawIntegral, cumulative)
		seg.RawCumulativeIntegral = cumulative
		zPrev = seg.Z
	}

	total := cumulative
	for k := 0; k < h.numSegments; k++ {
		seg := &h.segments[k]
		seg.Prob = seg.RawIntegral - total
		seg.CumProb = seg.RawCumulativeIntegral - total
	}
}

// argBinarySearch returns the smallest segment index j such that
// logP < segments[j].CumProb, searching within [lower, upper].
func (h *Hull[D]) argBinarySearch(logP float64, lower, upper int) int {
	mid := (lower + upper) / 2
	if mid == lower {
		if logP < h.segments[lower].CumProb {
			return lower
		}
		return upper
	}
	if logP < h.segments[mid].CumProb {
		return h.argBinarySearch(logP, lower, mid)
	}
	return h.argBinarySearch(logP, mid, upper)
}

// InverseCDF returns the abscissa x such that P(X <= x) = p under the
// current hull distribution, along with the segment index containing it.
func (h *Hull[D]) InverseCDF(p float64) (x float64, segIdx int) {
	segIdx = h.argBinarySearch(math.Log(p), 0, h.numSegments-1)
	seg := &h.segments[segIdx]
	xj := seg.LeftX
	hxj := seg.HX
	hpxj := seg.HPrimeX

	var zPrev, cdfPrev float64
	if segIdx > 0 {
		zPrev = h.segments[segIdx-1].Z
		cdfPrev = math.Exp(h.segments[segIdx-1].CumProb)
	}
	total := h.segments[h.numSegments-1].RawCumulativeIntegral
	pRem := p - cdfPrev

	if hpxj == 0 {
		return pRem/math.Exp(hxj-h.upperHullMax-total) + zPrev, segIdx
	}

	xStar := math.Log(pRem*math.Exp(total)*hpxj+math.Exp((zPrev-xj)*hpxj+hxj-h.upperHullMax)) +
		xj*hpxj - hxj + h.upperHullMax
	return xStar / hpxj, segIdx
}

// CDF returns P(X <= x) under the current hull distribution. Exposed for
// testing and diagnostics; not on the DrawSample hot path.
func (h *Hull[D]) CDF(x float64) float64 {
	segIdx := 0
	for x > h.segments[segIdx].Z {
		segIdx++
	}
	seg := &h.segments[segIdx]
	xj := seg.LeftX
	hxj := seg.HX - h.upperHullMax
	hpxj := seg.HPrimeX

	integralTot := math.Inf(-1)
	zLower := 0.0
	if segIdx > 0 {
		integralTot = h.segments[segIdx-1].RawCumulativeIntegral
		zLower = h.segments[segIdx-1].Z
	}

	segIntegral := hxj - xj*hpxj + math.Log((math.Exp(hpxj*x)-math.Exp(hpxj*zLower))/hpxj)
	integralTot = logSumExp(segIntegral, integralTot)
	return math.Exp(integralTot - h.segments[h.numSegments-1].RawCumulativeIntegral)
}

// InsertSegment inserts a new support point (xNew, hNew) into the hull,
// originating from segment originIdx (as returned by InverseCDF), and
// renormalizes. If the hull is already at HullCapacity, this is a no-op:
// capacity is a ceiling, not an error, and the sampler loop continues with
// the existing envelope.
func (h *Hull[D]) InsertSegment(xNew, hNew float64, originIdx int) {
	if h.numSegments == HullCapacity {
		return
	}
	hpNew := h.dist.LogProbDeriv(xNew)

	for k := h.numSegments; k > originIdx; k-- {
		h.segments[k] = h.segments[k-1]
	}
	h.numSegments++

	insertIdx := originIdx
	if h.segments[originIdx].LeftX < xNew {
		insertIdx = originIdx + 1
	}
	h.segments[insertIdx] = HullSegment{LeftX: xNew, HX: hNew, HPrimeX: hpNew}

	h.updateZ(insertIdx)
	h.renormalize(insertIdx)
}

// updateZ recomputes the Z coordinates of the left neighbour of idx (if
// any) and of idx itself (if it is not rightmost) after an insertion at idx.
func (h *Hull[D]) updateZ(idx int) {
	switch {
	case idx == 0:
		h.setZ(&h.segments[0], &h.segments[1])
	case idx == h.numSegments-1:
		h.setZ(&h.segments[idx-1], &h.segments[idx])
		h.segments[idx].Z = math.Inf(1)
	default:
		h.setZ(&h.segments[idx-1], &h.segments[idx])
		h.setZ(&h.segments[idx], &h.segments[idx+1])
	}
}
