// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels in first-reference order.
//   - Callers that present labels to humans sort them.

package core

// AddVertex inserts a node if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyVertexID).
//   - Stage 2: If the label already has an adjacency bucket, return (no-op).
//   - Stage 3: Record the label in first-reference order and create an empty bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adjacency[id]; ok {
		return nil
	}
	g.nodes = append(g.nodes, id)
	g.adjacency[id] = nil

	return nil
}

// HasVertex reports whether id is a known node.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all node labels in first-reference order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// VertexCount returns the number of nodes. O(1).
func (g *Graph) VertexCount() int { return len(g.nodes) }

// Degree returns the number of edges incident to id.
// Parallel edges count separately; a self-loop counts once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}
