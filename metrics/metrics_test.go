package metrics_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/tspexact/metrics"
	"github.com/katalvlaran/tspexact/tsp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(4, tsp.SolveStats{EvaluatedRoutes: 6, OptimalCost: 60, Elapsed: time.Millisecond, Algorithm: tsp.BruteForce})
	r.Observe(12, tsp.SolveStats{EvaluatedRoutes: 1, OptimalCost: 12, Elapsed: time.Millisecond, Algorithm: tsp.HeldKarp})
	r.Observe(5, tsp.SolveStats{EvaluatedRoutes: 24, OptimalCost: 40, Elapsed: time.Millisecond, Algorithm: tsp.BruteForce})

	expected := `
# HELP tspexact_evaluated_routes_total Routes materialized by solves.
# TYPE tspexact_evaluated_routes_total counter
tspexact_evaluated_routes_total{algorithm="Brute Force"} 30
tspexact_evaluated_routes_total{algorithm="Held-Karp (DP)"} 1
# HELP tspexact_solves_total Completed solves by algorithm.
# TYPE tspexact_solves_total counter
tspexact_solves_total{algorithm="Brute Force"} 2
tspexact_solves_total{algorithm="Held-Karp (DP)"} 1
# HELP tspexact_last_optimal_cost Optimal cycle cost of the most recent solve.
# TYPE tspexact_last_optimal_cost gauge
tspexact_last_optimal_cost{algorithm="Brute Force"} 40
tspexact_last_optimal_cost{algorithm="Held-Karp (DP)"} 12
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"tspexact_evaluated_routes_total", "tspexact_solves_total", "tspexact_last_optimal_cost"))

	count, err := testutil.GatherAndCount(r.Registry(), "tspexact_solve_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestRecorder_ObserveError(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveError(tsp.ErrInsufficientNodes)
	r.ObserveError(tsp.ErrInsufficientNodes)
	r.ObserveError(tsp.ErrUnrecognizedAlgorithm)

	expected := `
# HELP tspexact_solve_failures_total Rejected solves by error kind.
# TYPE tspexact_solve_failures_total counter
tspexact_solve_failures_total{reason="insufficient_nodes"} 2
tspexact_solve_failures_total{reason="unrecognized_algorithm"} 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "tspexact_solve_failures_total"))
}

func TestReason(t *testing.T) {
	require.Equal(t, "invalid_node", metrics.Reason(tsp.ErrDuplicateNode))
	require.Equal(t, "too_many_nodes", metrics.Reason(tsp.ErrTooManyNodes))
	require.Equal(t, "nil_cost", metrics.Reason(tsp.ErrNilCostFunc))
	require.Equal(t, "other", metrics.Reason(errors.New("boom")))

	// Config validation wraps the solver sentinel alongside its own.
	invalid := errors.New("config: invalid value")
	wrapped := fmt.Errorf("%w: solver.algorithm %q: %w", invalid, "xyz", tsp.ErrUnrecognizedAlgorithm)
	require.Equal(t, "unrecognized_algorithm", metrics.Reason(wrapped))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(3, tsp.SolveStats{EvaluatedRoutes: 2, OptimalCost: 3, Algorithm: tsp.BruteForce})

	path := filepath.Join(t.TempDir(), "tsp.prom")
	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `tspexact_solves_total{algorithm="Brute Force"} 1`)
}
