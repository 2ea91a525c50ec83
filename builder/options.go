// SPDX-License-Identifier: MIT
// Package: tspexact/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs; the
//     constructors themselves never panic.
//   • Options apply in order; later ones override earlier ones.
//   • Deterministic defaults: IDs "n<i>", labels "A".., constant weight, no RNG.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn     IDFn
	labelFn  IDFn
	rng      *rand.Rand
	weightFn WeightFn
	// weightSet records an explicit WithWeightFn so RandomComplete keeps it.
	weightSet bool
}

// newBuilderConfig applies opts over the deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		labelFn:  LetterLabelFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes a constructor.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithLabelScheme sets the node label generator. Panics on nil.
func WithLabelScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}

	return func(c *builderConfig) { c.labelFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
		c.weightSet = true
	}
}
