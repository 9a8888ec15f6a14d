// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ars

import "errors"

// ErrInvalidParameter is wrapped by LogDensity constructors (see the dist
// package) when a caller supplies parameters that would make the target
// distribution non-log-concave, or otherwise undefined.
var ErrInvalidParameter = errors.New("ars: invalid distribution parameter")

// ErrInitializationFailure is returned by NewHull when doubling the right
// initial abscissa fails to reach a negative log-density derivative before
// producing a non-finite value. This indicates the LogDensity does not
// decay in its right tail, violating the log-concavity precondition.
var ErrInitializationFailure = errors.New("ars: hull initialization failed to reach a negative slope")

// ErrSamplerExhausted is returned by (*Hull[D]).DrawSample when MaxTrials
// proposals were rejected without an accept. Because every rejection
// tightens the envelope, exhaustion indicates a numerical pathology —
// typically a LogDensity returning non-finite values, or a target that is
// not actually log-concave — and callers should treat it as a programming
// error rather than retry.
var ErrSamplerExhausted = errors.New("ars: exceeded maximum sampling trials")
