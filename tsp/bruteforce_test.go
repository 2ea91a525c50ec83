package tsp_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/katalvlaran/tspexact/tsp"
	"github.com/stretchr/testify/require"
)

func TestBruteForce_Triangle(t *testing.T) {
	ids := []string{"A", "B", "C"}
	cost := pairCost(map[[2]string]float64{{"A", "B"}: 1, {"B", "C"}: 1, {"A", "C"}: 1})

	results, stats, err := tsp.SolveBruteForce(ids, cost)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, 3.0, stats.OptimalCost)
	require.Equal(t, 2, stats.EvaluatedRoutes)
	require.Equal(t, tsp.BruteForce, stats.Algorithm)
	require.Equal(t, "Brute Force", stats.AlgorithmName())
	requireHamiltonian(t, ids, stats.OptimalRoute)
}

func TestBruteForce_FourNodes(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	cost := pairCost(map[[2]string]float64{
		{"A", "B"}: 10, {"B", "C"}: 15, {"C", "D"}: 20,
		{"D", "A"}: 25, {"A", "C"}: 12, {"B", "D"}: 18,
	})

	results, stats, err := tsp.SolveBruteForce(ids, cost)
	require.NoError(t, err)
	require.Equal(t, 6, stats.EvaluatedRoutes)
	require.Len(t, results, 6)
	require.Equal(t, 60.0, stats.OptimalCost)

	// Stable ranking: ties keep enumeration order, and mirror images are both reported.
	want := []tsp.RouteResult{
		{Route: tsp.Route{"A", "B", "D", "C"}, Cost: 60},
		{Route: tsp.Route{"A", "C", "D", "B"}, Cost: 60},
		{Route: tsp.Route{"A", "B", "C", "D"}, Cost: 70},
		{Route: tsp.Route{"A", "C", "B", "D"}, Cost: 70},
		{Route: tsp.Route{"A", "D", "B", "C"}, Cost: 70},
		{Route: tsp.Route{"A", "D", "C", "B"}, Cost: 70},
	}
	require.Equal(t, want, results)
	require.Equal(t, results[0].Route, stats.OptimalRoute)

	_, hk, err := tsp.SolveHeldKarp(ids, cost)
	require.NoError(t, err)
	require.Equal(t, hk.OptimalCost, stats.OptimalCost)
}

func TestBruteForce_CountSortedAndValid(t *testing.T) {
	var n int
	for n = 3; n <= 8; n++ {
		ids := nodeIDs(n)
		cost := matrixCost(ids, randomSymmetric(n, seedDet+int64(n)))

		results, stats, err := tsp.SolveBruteForce(ids, cost)
		require.NoError(t, err)
		require.Equal(t, factorial(n-1), stats.EvaluatedRoutes, "n=%d", n)
		require.Len(t, results, stats.EvaluatedRoutes)
		requireSortedByCost(t, results)

		for _, r := range results {
			requireHamiltonian(t, ids, r.Route)
			require.Equal(t, tsp.RouteCost(r.Route, cost), r.Cost)
		}
		require.Equal(t, stats.OptimalCost, tsp.RouteCost(stats.OptimalRoute, cost))
	}
}

func TestBruteForce_Idempotent(t *testing.T) {
	ids := nodeIDs(6)
	cost := matrixCost(ids, randomSymmetric(6, seedDet))

	first, s1, err := tsp.SolveBruteForce(ids, cost)
	require.NoError(t, err)
	second, s2, err := tsp.SolveBruteForce(ids, cost)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, s1.OptimalRoute, s2.OptimalRoute)
	require.Equal(t, s1.OptimalCost, s2.OptimalCost)
	require.Equal(t, s1.EvaluatedRoutes, s2.EvaluatedRoutes)
}

func TestBruteForce_Errors(t *testing.T) {
	cost := func(string, string) float64 { return 1 }

	tests := []struct {
		name string
		ids  []string
		cost tsp.CostFunc
		want error
	}{
		{"nil ids", nil, cost, tsp.ErrInsufficientNodes},
		{"one node", []string{"A"}, cost, tsp.ErrInsufficientNodes},
		{"two nodes", []string{"A", "B"}, cost, tsp.ErrInsufficientNodes},
		{"two nodes nil cost", []string{"A", "B"}, nil, tsp.ErrInsufficientNodes},
		{"nil cost", []string{"A", "B", "C"}, nil, tsp.ErrNilCostFunc},
		{"empty id", []string{"A", "", "C"}, cost, tsp.ErrEmptyNodeID},
		{"duplicate id", []string{"A", "B", "A"}, cost, tsp.ErrDuplicateNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, stats, err := tsp.SolveBruteForce(tc.ids, tc.cost)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, results)
			require.Zero(t, stats)
		})
	}
}

// TestBruteForce_LargeNStartsEnumerating requests brute force on 22 nodes,
// where (n−1)! exceeds int, and stops the solver once the oracle has been
// consulted: the request must be honoured rather than fail on allocation.
func TestBruteForce_LargeNStartsEnumerating(t *testing.T) {
	const stopAfter = 100

	var (
		calls    int
		reached  = make(chan struct{})
		panicked = make(chan any, 1)
	)
	cost := func(string, string) float64 {
		calls++
		if calls == stopAfter {
			close(reached)
			runtime.Goexit()
		}
		return 1
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				panicked <- r
			}
		}()
		_, _, _ = tsp.SolveBruteForce(nodeIDs(22), cost)
	}()

	select {
	case <-reached:
	case r := <-panicked:
		t.Fatalf("SolveBruteForce(22 nodes) panicked before enumerating: %v", r)
	case <-time.After(10 * time.Second):
		t.Fatal("SolveBruteForce(22 nodes) never consulted the oracle")
	}
}
