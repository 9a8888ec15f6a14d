// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ars implements Adaptive Rejection Sampling (Gilks & Wild, 1992)
// for univariate, log-concave continuous distributions.
//
// The core type is Hull, a piecewise-exponential upper envelope over a
// target log-density that is refined on every rejected proposal, paired
// with a piecewise-linear squeeze test that avoids evaluating the target
// density whenever the cheap lower bound already settles acceptance.
// Samples drawn by (*Hull[D]).DrawSample are exact draws from the target
// distribution; acceptance probability increases monotonically as the
// hull tightens.
//
// Hull is generic over the LogDensity interface so that the distribution's
// concrete type is monomorphized rather than dispatched through an
// interface on every evaluation. Two reference LogDensity implementations,
// Gamma and Weibull, live in the sibling dist package.
package ars
