// Package core provides the thread-safe, in-memory graph that feeds the exact
// TSP solvers: labelled nodes plus undirected, non-negative float64 edge weights.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes keep insertion order; NodeIDs() is the solver input and its first
//     element becomes the fixed start of every cycle.
//   - Edges are undirected and unique per unordered pair; self-loops are rejected.
//   - Weight(a, b) is the cost oracle. It is symmetric and returns 0 for a pair
//     without an edge, so an incomplete graph still looks complete to the solver.
//   - Edge IDs are generated atomically ("e1", "e2", …); Edges() is sorted by
//     insertion sequence for reproducible output.
//   - A single sync.RWMutex guards nodes, edges and the pair index.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddNode("n0", "A")
//	_ = g.AddNode("n1", "B")
//	_ = g.AddNode("n2", "C")
//	_, _ = g.AddEdge("n0", "n1", 10)
//	_, _ = g.AddEdge("n1", "n2", 15)
//	_, _ = g.AddEdge("n0", "n2", 12)
//	results, stats, err := tsp.Solve(g.NodeIDs(), g.Weight, tsp.Auto)
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - an edge references an unknown node.
//	ErrNodeExists     - AddNode with an ID already present.
//	ErrEdgeExists     - a second edge for the same unordered pair.
//	ErrEdgeNotFound   - SetWeight/RemoveEdge on a missing pair.
//	ErrLoopNotAllowed - edge from a node to itself.
//	ErrBadWeight      - negative, NaN or infinite weight.
package core
