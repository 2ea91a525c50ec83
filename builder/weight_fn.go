// SPDX-License-Identifier: MIT
// Package builder - edge-weight distributions for graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultEdgeWeight is the weight assigned by DefaultWeightFn.
	DefaultEdgeWeight float64 = 1

	// DefaultMinWeight and DefaultMaxWeight bound RandomComplete weights (inclusive).
	DefaultMinWeight = 10
	DefaultMaxWeight = 59
)

// WeightFn produces an edge weight from an optional *rand.Rand.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn drawing integers uniformly from
// [min, max] inclusive. With a nil rng it yields min.
// Panics if min < 0 or max < min.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [min, max).
// With a nil rng it yields min.
// Panics if min < 0 or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
