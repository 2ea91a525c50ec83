// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeIDs() and Nodes() return insertion order; NodeIDs()[0] is the solver's start.
package core

// AddNode registers a node with a display label. An empty label defaults to the ID.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeExists if id is already present (labels are never silently replaced).
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, label string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if label == "" {
		label = id
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return ErrNodeExists
	}
	g.nodes[id] = &Node{ID: id, Label: label}
	g.order = append(g.order, id)

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Label returns the display label of id, or id itself when the node is unknown.
func (g *Graph) Label(id string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.Label
	}

	return id
}

// Labels returns the id → label map for every node.
func (g *Graph) Labels() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]string, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n.Label
	}

	return out
}

// NodeIDs returns node IDs in insertion order (a fresh slice).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, len(g.order))
	var i int
	for i = range g.order {
		out[i] = *g.nodes[g.order[i]]
	}

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// RemoveNode deletes a node and every edge incident to it.
//
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}
	delete(g.nodes, id)

	var i int
	for i = range g.order {
		if g.order[i] == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	for k := range g.edges {
		if k.a == id || k.b == id {
			delete(g.edges, k)
		}
	}

	return nil
}

// Clear removes all nodes and edges; the edge ID counter keeps running.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.order = nil
	g.nodes = make(map[string]*Node)
	g.edges = make(map[pairKey]*Edge)
}
