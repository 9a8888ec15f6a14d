// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ars

// DrawSample draws one exact sample from the target distribution, using
// src for both the inverse-CDF proposal and the squeeze test (between 2
// and a small multiple of that many variates are consumed per call,
// depending on how many proposals are rejected).
//
// Each rejection inserts the rejected proposal as a new tangent, tightening
// the envelope, so acceptance probability increases monotonically across
// calls on the same Hull. If MaxTrials rejections occur in a single call,
// DrawSample returns ErrSamplerExhausted; this indicates a numerical
// pathology (a LogDensity returning non-finite values, or a target that
// violates log-concavity) rather than transient bad luck, and should not
// be retried.
func (h *Hull[D]) DrawSample(src Source) (float64, error) {
	for trial := 0; trial < MaxTrials; trial++ {
		u := src.Uniform()
		xTrial, segIdx := h.InverseCDF(u)

		accept, hTrial := h.squeezeTest(src, xTrial, segIdx)
		if accept {
			return xTrial, nil
		}
		h.InsertSegment(xTrial, hTrial, segIdx)
	}
	return 0, ErrSamplerExhausted
}
