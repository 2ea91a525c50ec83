// Package tsp - unified dispatcher for the exact solvers.
//
// Solve is the canonical entry point for hosts (CLI, exporters): it picks the
// algorithm, explicit or size-based, and returns the solver's results as-is.
package tsp

import "strings"

// Algorithm selects a solver.
type Algorithm int

const (
	// Auto runs BruteForce for n ≤ BruteForceMaxNodes and HeldKarp otherwise.
	Auto Algorithm = iota
	// BruteForce forces SolveBruteForce regardless of n.
	BruteForce
	// HeldKarp forces SolveHeldKarp regardless of n.
	HeldKarp
)

// String returns the display name used in SolveStats and reports.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case BruteForce:
		return "Brute Force"
	case HeldKarp:
		return "Held-Karp (DP)"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a mode string to an Algorithm.
// Accepted (case-insensitive, surrounding spaces ignored): "auto", "bruteforce", "heldkarp".
// Any other value yields ErrUnrecognizedAlgorithm.
func ParseAlgorithm(mode string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "auto":
		return Auto, nil
	case "bruteforce":
		return BruteForce, nil
	case "heldkarp":
		return HeldKarp, nil
	default:
		return 0, ErrUnrecognizedAlgorithm
	}
}

// Resolve returns the concrete solver Auto would pick for n nodes; explicit
// algorithms resolve to themselves.
func (a Algorithm) Resolve(n int) Algorithm {
	if a != Auto {
		return a
	}
	if n <= BruteForceMaxNodes {
		return BruteForce
	}

	return HeldKarp
}

// Solve validates algo and delegates to the matching solver.
//
// Contracts:
//   - algo must be Auto, BruteForce or HeldKarp, else ErrUnrecognizedAlgorithm
//     (checked before any node validation).
//   - results[0] is always the optimum and equals stats.OptimalRoute/OptimalCost.
//
// Errors: ErrUnrecognizedAlgorithm plus those of the selected solver.
func Solve(ids []string, cost CostFunc, algo Algorithm) ([]RouteResult, SolveStats, error) {
	switch algo.Resolve(len(ids)) {
	case BruteForce:
		return SolveBruteForce(ids, cost)
	case HeldKarp:
		return SolveHeldKarp(ids, cost)
	default:
		return nil, SolveStats{}, ErrUnrecognizedAlgorithm
	}
}

// SolveMode is Solve with the algorithm given as a mode string (see ParseAlgorithm).
func SolveMode(ids []string, cost CostFunc, mode string) ([]RouteResult, SolveStats, error) {
	algo, err := ParseAlgorithm(mode)
	if err != nil {
		return nil, SolveStats{}, err
	}

	return Solve(ids, cost, algo)
}
