package tsp

import (
	"cmp"
	"slices"
	"time"
)

// SolveBruteForce enumerates every cycle through ids with ids[0] fixed as the
// start and returns all of them ranked by ascending cost.
//
// Routes are produced in Permutations order over ids[1:] and sorted stably, so
// equal-cost routes keep their enumeration order. A cycle and its reverse are
// distinct permutations and both are reported; len(results) is always (n−1)!.
//
// No upper bound on n is enforced: a caller asking for brute force pays for it.
//
// Errors: ErrInsufficientNodes, ErrNilCostFunc, ErrEmptyNodeID, ErrDuplicateNode.
//
// Complexity: Θ((n−1)!·n) time, Θ((n−1)!·n) space.
func SolveBruteForce(ids []string, cost CostFunc) ([]RouteResult, SolveStats, error) {
	n, err := validateInput(ids, cost)
	if err != nil {
		return nil, SolveStats{}, err
	}

	started := time.Now()

	var (
		start   = ids[0]
		rest    = ids[1:]
		results = make([]RouteResult, 0, capacityHint(n-1))
	)
	for perm := range Permutations(rest) {
		route := make(Route, 0, n)
		route = append(route, start)
		route = append(route, perm...)
		results = append(results, RouteResult{Route: route, Cost: RouteCost(route, cost)})
	}

	slices.SortStableFunc(results, func(a, b RouteResult) int {
		return cmp.Compare(a.Cost, b.Cost)
	})

	stats := SolveStats{
		EvaluatedRoutes: len(results),
		OptimalCost:     results[0].Cost,
		OptimalRoute:    results[0].Route,
		Elapsed:         time.Since(started),
		Algorithm:       BruteForce,
	}

	return results, stats, nil
}
