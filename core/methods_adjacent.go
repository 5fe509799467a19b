// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors) and cloning.
// Determinism:
//   - Neighbors(id) follows edge-insertion order; searches inherit it as tie-break.

package core

// Neighbors returns the edges incident to id, oriented so that From == id.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID / ErrVertexNotFound).
//   - Stage 2: Walk id's adjacency bucket in insertion order.
//   - Stage 3: Copy each edge, swapping endpoints when id was stored as To.
//
// Behavior highlights:
//   - Parallel edges are all returned; callers relax each by weight.
//   - A self-loop appears once with From == To == id.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, 0, len(bucket))
	var e *Edge
	for _, eid := range bucket {
		e = g.edges[eid]
		if e.From == id {
			out = append(out, *e)
			continue
		}
		out = append(out, e.reversed())
	}

	return out, nil
}

// Clone returns a deep copy of the Graph: options, nodes, edges and adjacency.
//
// The edge ID counter is carried over so that AddEdge on the clone continues
// the same textual sequence.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		strictWeights: g.strictWeights,
		nextEdgeID:    g.nextEdgeID,
		nodes:         make([]string, len(g.nodes)),
		edgeOrder:     make([]string, len(g.edgeOrder)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacency:     make(map[string][]string, len(g.adjacency)),
	}
	copy(clone.nodes, g.nodes)
	copy(clone.edgeOrder, g.edgeOrder)
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
	}
	for id, bucket := range g.adjacency {
		if bucket == nil {
			clone.adjacency[id] = nil
			continue
		}
		nb := make([]string, len(bucket))
		copy(nb, bucket)
		clone.adjacency[id] = nb
	}

	return clone
}
