// Package tsp - route cost evaluation shared by both solvers.
//
// The summation order is fixed (start → … → last, then last → start) so that
// re-evaluating a route yields exactly the cost a solver reported for it.
package tsp

// RouteCost returns the total cost of the cycle described by route:
// Σ cost(route[i], route[i+1]) for i in [0, n−2], plus cost(route[n−1], route[0]).
//
// Contract:
//   - cost must be non-nil; route may be of any length.
//   - An empty route costs 0; a single vertex costs cost(v, v).
//
// Pure function; exactly n oracle calls.
//
// Complexity: O(n).
func RouteCost(route Route, cost CostFunc) float64 {
	var n = len(route)
	if n == 0 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += cost(route[i], route[i+1])
	}
	// Close the cycle back to the start.
	sum += cost(route[n-1], route[0])

	return sum
}
