// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewUsers indicates a size parameter below the constructor minimum.
var ErrTooFewUsers = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
