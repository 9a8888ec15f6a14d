// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ars

import (
	"fmt"
	"math"
	"strings"
)

// String formats the hull's segments for debugging: index, x, z, segment
// probability, cumulative probability, segment integral and cumulative
// integral, all in linear (not log) space. Ground: the original C++
// Hull::printHull, reinstated here as a fmt.Stringer instead of a direct
// console write.
func (h *Hull[D]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "hull max value: %.4f\n", h.upperHullMax)
	fmt.Fprintf(&b, "%7s%10s%10s%10s%10s%10s%10s\n",
		"seg idx", "x", "z", "seg prob", "cumu prob", "seg int", "cumu int")
	for i := 0; i < h.numSegments; i++ {
		seg := &h.segments[i]
		z := seg.Z
		var zStr string
		if math.IsInf(z, 1) {
			zStr = "+Inf"
		} else {
			zStr = fmt.Sprintf("%.4f", z)
		}
		fmt.Fprintf(&b, "%7d%10.4f%10s%10.4f%10.4f%10.4f%10.4f\n",
			i, seg.LeftX, zStr,
			math.Exp(seg.Prob), math.Exp(seg.CumProb),
			math.Exp(seg.RawIntegral), math.Exp(seg.RawCumulativeIntegral))
	}
	return b.String()
}
