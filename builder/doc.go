// SPDX-License-Identifier: MIT
// Package builder generates complete weighted graphs for the TSP solvers:
// demo instances, fixtures and benchmarks.
//
// Constructors:
//
//	Complete(n, opts...)       K_n with weights from the configured WeightFn
//	                           (constant 1 unless overridden).
//	RandomComplete(n, opts...) K_n with integer weights uniform in
//	                           [DefaultMinWeight, DefaultMaxWeight]; needs an RNG
//	                           (WithSeed or WithRand).
//
// Determinism:
//   - Node IDs and labels come from pure index → string functions
//     ("n0", "n1", … and "A", "B", …, "Z", "AA", … by default).
//   - Pairs are emitted in lexicographic (i, j), i < j order, so a fixed seed
//     always yields the same weights.
//
// Error policy: only sentinels from errors.go, wrapped with the method name;
// option constructors panic on meaningless values (programmer error).
package builder
