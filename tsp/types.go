package tsp

import (
	"errors"
	"strings"
	"time"
)

// Sentinel errors returned by the solvers and the dispatcher.
var (
	// ErrInsufficientNodes is returned when fewer than MinNodes identifiers are supplied.
	ErrInsufficientNodes = errors.New("tsp: at least 3 nodes are required")

	// ErrUnrecognizedAlgorithm is returned for an algorithm outside {auto, bruteforce, heldkarp}.
	ErrUnrecognizedAlgorithm = errors.New("tsp: unrecognized algorithm")

	// ErrNilCostFunc is returned when the cost oracle is nil.
	ErrNilCostFunc = errors.New("tsp: cost function is nil")

	// ErrEmptyNodeID is returned when a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("tsp: node ID is empty")

	// ErrDuplicateNode is returned when the same identifier appears twice.
	ErrDuplicateNode = errors.New("tsp: duplicate node ID")

	// ErrTooManyNodes is returned when Held–Karp is asked for more than
	// HeldKarpMaxNodes nodes.
	ErrTooManyNodes = errors.New("tsp: too many nodes for Held-Karp")
)

const (
	// MinNodes is the smallest graph that admits a Hamiltonian cycle worth solving.
	MinNodes = 3

	// BruteForceMaxNodes is the largest n for which Auto selects brute force.
	BruteForceMaxNodes = 10

	// HeldKarpMaxNodes is the largest n SolveHeldKarp accepts. The tables hold
	// 2ⁿ⁻¹·(n−1) entries of 12 bytes each, about 2.3 GB at n = 24.
	HeldKarpMaxNodes = 24
)

// CostFunc is the cost oracle: it returns the non-negative weight of the
// undirected edge {a, b}. It must be total over all pairs of supplied IDs and
// report an unmodelled pair as 0.
type CostFunc func(a, b string) float64

// Route is an ordering of all node IDs interpreted as a cycle: the edge from
// the last element back to the first is implicit.
type Route []string

// Len returns the number of vertices on the route.
func (r Route) Len() int { return len(r) }

// Closed returns a copy of r with the start vertex appended, i.e. the explicit
// cycle r[0] → … → r[n−1] → r[0]. An empty route yields nil.
func (r Route) Closed() []string {
	if len(r) == 0 {
		return nil
	}
	out := make([]string, len(r)+1)
	copy(out, r)
	out[len(r)] = r[0]

	return out
}

// String renders the closed cycle as "a → b → c → a".
func (r Route) String() string {
	return strings.Join(r.Closed(), " → ")
}

// RouteResult pairs a route with its total cycle cost.
type RouteResult struct {
	Route Route
	Cost  float64
}

// SolveStats summarizes a single solve call.
type SolveStats struct {
	// EvaluatedRoutes is the number of RouteResults produced:
	// (n−1)! for brute force, exactly 1 for Held–Karp.
	EvaluatedRoutes int

	// OptimalCost and OptimalRoute always describe results[0].
	OptimalCost  float64
	OptimalRoute Route

	// Elapsed is the wall-clock duration of the computation.
	Elapsed time.Duration

	// Algorithm is the solver that actually ran (never Auto).
	Algorithm Algorithm
}

// ElapsedMillis returns Elapsed in fractional milliseconds.
func (s SolveStats) ElapsedMillis() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

// AlgorithmName returns the display name of the solver that ran.
func (s SolveStats) AlgorithmName() string {
	return s.Algorithm.String()
}
