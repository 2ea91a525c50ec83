// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package: synthetic cost oracles, deterministic generators and route
// assertions.
package tsp_test

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/tspexact/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for random instances.
	seedDet = int64(42)

	// minW and maxW bound integer test weights (inclusive).
	minW = 1
	maxW = 100
)

// -----------------------------------------------------------------------------
// Cost oracles
// -----------------------------------------------------------------------------

// matrixCost adapts a square matrix over ids into a tsp.CostFunc.
func matrixCost(ids []string, a [][]float64) tsp.CostFunc {
	idx := make(map[string]int, len(ids))
	var i int
	for i = range ids {
		idx[ids[i]] = i
	}

	return func(u, v string) float64 {
		return a[idx[u]][idx[v]]
	}
}

// pairCost builds a symmetric oracle from an undirected edge list keyed "u-v".
// Missing pairs cost 0.
func pairCost(edges map[[2]string]float64) tsp.CostFunc {
	return func(u, v string) float64 {
		if w, ok := edges[[2]string{u, v}]; ok {
			return w
		}

		return edges[[2]string{v, u}]
	}
}

// countingCost wraps cost and counts oracle calls.
func countingCost(cost tsp.CostFunc, calls *int) tsp.CostFunc {
	return func(u, v string) float64 {
		*calls++

		return cost(u, v)
	}
}

// -----------------------------------------------------------------------------
// Generators (deterministic)
// -----------------------------------------------------------------------------

// nodeIDs returns ["n0", "n1", ..., "n{n-1}"].
func nodeIDs(n int) []string {
	ids := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		ids[i] = fmt.Sprintf("n%d", i)
	}

	return ids
}

// randomSymmetric builds a symmetric integer-weighted matrix with zero diagonal.
func randomSymmetric(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w := float64(minW + rng.Intn(maxW-minW+1))
			a[i][j] = w
			a[j][i] = w
		}
	}

	return a
}

// cycleDist builds ring distances dist(i,j)=min(|i-j|, n-|i-j|); optimum = n.
func cycleDist(n int) [][]float64 {
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d := math.Abs(float64(i - j))
			a[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return a
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requireHamiltonian asserts route is a permutation of ids starting at ids[0].
func requireHamiltonian(t *testing.T, ids []string, route tsp.Route) {
	t.Helper()
	require.Len(t, route, len(ids))
	require.Equal(t, ids[0], route[0], "route must start at the first node")

	got := slices.Clone([]string(route))
	want := slices.Clone(ids)
	slices.Sort(got)
	slices.Sort(want)
	require.Equal(t, want, got, "route must visit every node exactly once")
}

// requireSortedByCost asserts results are non-decreasing by cost.
func requireSortedByCost(t *testing.T, results []tsp.RouteResult) {
	t.Helper()
	var i int
	for i = 0; i+1 < len(results); i++ {
		require.LessOrEqual(t, results[i].Cost, results[i+1].Cost, "results[%d] > results[%d]", i, i+1)
	}
}

// factorial returns k! for test expectations.
func factorial(k int) int {
	f := 1
	var i int
	for i = 2; i <= k; i++ {
		f *= i
	}

	return f
}
