// SPDX-License-Identifier: MIT
// Package: tspexact/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach method context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor was called without an
// RNG (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the core graph rejected a node or edge.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf returns "<method>: <msg>: <err>" keeping err matchable with errors.Is.
func wrapf(method, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, msg, err)
}
