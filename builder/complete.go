// SPDX-License-Identifier: MIT
// Package: tspexact/builder
//
// complete.go — Complete(n) and RandomComplete(n) constructors.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds nodes via cfg.idFn / cfg.labelFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j}, i<j, exactly once, in lexicographic order.
//   • Returns only sentinel errors (wrapped with method context); never panics.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.
//   • Space: O(n) for the precomputed ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tspexact/core"
)

const (
	methodComplete       = "Complete"
	methodRandomComplete = "RandomComplete"
	minCompleteNodes     = 1
)

// Complete builds K_n with weights from the configured WeightFn.
func Complete(n int, opts ...BuilderOption) (*core.Graph, error) {
	return buildComplete(methodComplete, n, newBuilderConfig(opts...))
}

// RandomComplete builds K_n with integer weights uniform in
// [DefaultMinWeight, DefaultMaxWeight] unless WithWeightFn overrides them.
// An RNG is mandatory (WithSeed or WithRand), else ErrNeedRandSource.
func RandomComplete(n int, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, wrapf(methodRandomComplete, "rng is required", ErrNeedRandSource)
	}
	if !cfg.weightSet {
		cfg.weightFn = UniformIntWeightFn(DefaultMinWeight, DefaultMaxWeight)
	}

	return buildComplete(methodRandomComplete, n, cfg)
}

// buildComplete is the shared body of Complete and RandomComplete.
func buildComplete(method string, n int, cfg builderConfig) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, wrapf(method, fmt.Sprintf("n=%d < min=%d", n, minCompleteNodes), ErrTooFewVertices)
	}

	g := core.NewGraph()
	ids := make([]string, n)

	var i, j int
	for i = 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i], cfg.labelFn(i)); err != nil {
			return nil, wrapf(method, fmt.Sprintf("AddNode(%s): %v", ids[i], err), ErrConstructFailed)
		}
	}

	var w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return nil, wrapf(method, fmt.Sprintf("AddEdge(%s→%s, w=%g): %v", ids[i], ids[j], w, err), ErrConstructFailed)
			}
		}
	}

	return g, nil
}
