// Package core - type declarations, sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodeExists indicates AddNode was called with an ID already present.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrEdgeExists indicates a second edge for an unordered pair that already has one.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")
)

// Node is a graph vertex. ID is the stable identifier the solvers use;
// Label is for display only.
type Node struct {
	ID    string
	Label string
}

// Edge is an undirected weighted connection between two nodes.
// From/To keep the orientation the edge was added with; Weight ignores it.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	From string
	To   string

	Weight float64
}

// pairKey is the canonical unordered key of an edge (a ≤ b).
type pairKey struct{ a, b string }

// newPairKey orders the endpoints so {a,b} and {b,a} share a key.
func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// Graph is a complete-graph-oriented store of labelled nodes and undirected
// weighted edges.
//
// mu guards every field below it; nextEdgeID is advanced atomically under the
// write lock so IDs stay monotonic across Clear.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64

	order []string         // node IDs in insertion order
	nodes map[string]*Node // node ID → Node
	edges map[pairKey]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[pairKey]*Edge),
	}
}
