// File: methods_edges.go
// Role: Edge lifecycle & queries, the Weight oracle, and completeness checks.
//
// Determinism:
//   - Edges() returns edges in insertion (edge ID sequence) order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates the undirected edge {from, to} with the given weight and
// returns its ID. Both endpoints must already exist.
//
// Errors: ErrEmptyNodeID, ErrLoopNotAllowed, ErrBadWeight, ErrNodeNotFound, ErrEdgeExists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if !validWeight(weight) {
		return "", ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return "", ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return "", ErrNodeNotFound
	}
	key := newPairKey(from, to)
	if _, exists := g.edges[key]; exists {
		return "", ErrEdgeExists
	}

	eid := nextEdgeID(g)
	g.edges[key] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	return eid, nil
}

// SetWeight replaces the weight of the existing edge {a, b}.
//
// Errors: ErrBadWeight, ErrEdgeNotFound.
func (g *Graph) SetWeight(a, b string, weight float64) error {
	if !validWeight(weight) {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[newPairKey(a, b)]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// RemoveEdge deletes the edge {a, b}.
func (g *Graph) RemoveEdge(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := newPairKey(a, b)
	if _, ok := g.edges[key]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, key)

	return nil
}

// HasEdge reports whether {a, b} has an edge (orientation-insensitive).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[newPairKey(a, b)]

	return ok
}

// Weight is the cost oracle: the weight of {a, b}, or 0 when there is no such
// edge (including a == b and unknown IDs). Its signature matches tsp.CostFunc,
// so g.Weight can be passed to the solvers directly.
//
// Complexity: O(1).
func (g *Graph) Weight(a, b string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e, ok := g.edges[newPairKey(a, b)]; ok {
		return e.Weight
	}

	return 0
}

// Edges returns copies of all edges sorted by insertion sequence.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return edgeSeq(out[i].ID) < edgeSeq(out[j].ID)
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// MissingPairs returns every unordered node pair without an edge, in node
// insertion order. The solvers treat those pairs as weight 0.
//
// Complexity: O(V²).
func (g *Graph) MissingPairs() [][2]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		out  [][2]string
		i, j int
	)
	for i = 0; i < len(g.order); i++ {
		for j = i + 1; j < len(g.order); j++ {
			if _, ok := g.edges[newPairKey(g.order[i], g.order[j])]; !ok {
				out = append(out, [2]string{g.order[i], g.order[j]})
			}
		}
	}

	return out
}

// IsComplete reports whether every unordered node pair has an edge.
func (g *Graph) IsComplete() bool {
	g.mu.RLock()
	n := len(g.order)
	m := len(g.edges)
	g.mu.RUnlock()

	return m == n*(n-1)/2
}

// validWeight accepts finite, non-negative values.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// nextEdgeID returns a new unique edge ID; caller holds g.mu for writing.
func nextEdgeID(g *Graph) string {
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// edgeSeq parses the numeric suffix of an edge ID for ordering.
func edgeSeq(id string) uint64 {
	if len(id) < 2 {
		return 0
	}
	v, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return 0
	}

	return v
}
