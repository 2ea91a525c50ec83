package tsp

import (
	"fmt"
	"time"
)

// noParent marks a table entry whose predecessor is the anchor vertex ids[0].
const noParent = -1

// SolveHeldKarp computes the optimal cycle through ids with the Held–Karp
// subset dynamic program and returns it as the single RouteResult.
//
// ids[0] is the anchor. The remaining m = n−1 vertices are indexed 0..m−1 and
// a subset S of them is a bitmask. For S ∋ j:
//
//	dp[S][j] = min cost of a path anchor → … → j visiting exactly S.
//	dp[{j}][j] = cost(anchor, j)
//	dp[S][j] = min over k ∈ S∖{j} of dp[S∖{j}][k] + cost(k, j)
//
// The optimum is min over j of dp[full][j] + cost(j, anchor). Each entry stores
// its minimizing predecessor, and the route is rebuilt by walking those
// pointers back from the optimal last vertex. Ties resolve to the smallest
// index. Summation follows route order, so RouteCost(route) reproduces the
// reported cost exactly.
//
// Tables are flat slices indexed by mask*m + j and are allocated per call.
//
// Errors: ErrInsufficientNodes, ErrNilCostFunc, ErrEmptyNodeID,
// ErrDuplicateNode, ErrTooManyNodes.
//
// Panics if reconstruction finds no predecessor for a reachable state; that
// can only be an internal invariant violation.
//
// Complexity: Θ(n²·2ⁿ) time, Θ(n·2ⁿ) space, n(n−1) oracle calls.
func SolveHeldKarp(ids []string, cost CostFunc) ([]RouteResult, SolveStats, error) {
	n, err := validateInput(ids, cost)
	if err != nil {
		return nil, SolveStats{}, err
	}
	if n > HeldKarpMaxNodes {
		return nil, SolveStats{}, ErrTooManyNodes
	}

	started := time.Now()

	// Read every weight once; w[i][j] over the full index space 0..n−1.
	w := weightTable(ids, cost)

	var (
		m      = n - 1
		full   = 1<<m - 1
		size   = (full + 1) * m
		dp     = make([]float64, size)
		parent = make([]int32, size)
	)

	// Base case: single-vertex subsets, reached straight from the anchor.
	var j int
	for j = 0; j < m; j++ {
		dp[(1<<j)*m+j] = w[0][j+1]
		parent[(1<<j)*m+j] = noParent
	}

	var (
		mask, prev, k int
		best, cand    float64
		bestK         int
	)
	for mask = 1; mask <= full; mask++ {
		if mask&(mask-1) == 0 {
			continue // singleton, seeded above
		}
		for j = 0; j < m; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			bestK = noParent
			for k = 0; k < m; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				cand = dp[prev*m+k] + w[k+1][j+1]
				if bestK == noParent || cand < best {
					best, bestK = cand, k
				}
			}
			dp[mask*m+j] = best
			parent[mask*m+j] = int32(bestK)
		}
	}

	// Close the cycle back to the anchor.
	var (
		bestCost float64
		last     = noParent
	)
	for j = 0; j < m; j++ {
		cand = dp[full*m+j] + w[j+1][0]
		if last == noParent || cand < bestCost {
			bestCost, last = cand, j
		}
	}

	route := reconstruct(ids, parent, m, full, last)

	stats := SolveStats{
		EvaluatedRoutes: 1,
		OptimalCost:     bestCost,
		OptimalRoute:    route,
		Elapsed:         time.Since(started),
		Algorithm:       HeldKarp,
	}

	return []RouteResult{{Route: route, Cost: bestCost}}, stats, nil
}

// weightTable evaluates cost over every ordered pair of ids.
//
// Complexity: Θ(n²) oracle calls and space.
func weightTable(ids []string, cost CostFunc) [][]float64 {
	var n = len(ids)
	w := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		w[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				w[i][j] = cost(ids[i], ids[j])
			}
		}
	}

	return w
}

// reconstruct walks predecessor pointers from (full, last) back to the anchor
// and returns the anchor-first route.
//
// Every reachable state has a predecessor: a non-singleton subset points at a
// member of its reduced subset, a singleton points at the anchor. Any other
// outcome is a broken table.
func reconstruct(ids []string, parent []int32, m, full, last int) Route {
	route := make(Route, m+1)
	route[0] = ids[0]

	var (
		mask = full
		j    = last
		pos  int
		p    int
	)
	for pos = m; pos >= 1; pos-- {
		if j < 0 || j >= m || mask&(1<<j) == 0 {
			panic(fmt.Sprintf("tsp: held-karp reconstruction lost state at position %d (mask=%b, last=%d)", pos, mask, j))
		}
		route[pos] = ids[j+1]
		p = int(parent[mask*m+j])
		mask ^= 1 << j
		if p == noParent && mask != 0 {
			panic(fmt.Sprintf("tsp: held-karp reconstruction reached anchor early (mask=%b)", mask))
		}
		j = p
	}
	if mask != 0 || j != noParent {
		panic(fmt.Sprintf("tsp: held-karp reconstruction left vertices unvisited (mask=%b)", mask))
	}

	return route
}
