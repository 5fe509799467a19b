// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"fmt"
	"math"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge records an undirected edge from-to with the given weight.
//
// Steps:
//  1. Validate labels; on strict graphs validate weight.
//  2. Ensure endpoints via AddVertex.
//  3. Generate the edge ID and store the edge in the catalog.
//  4. Append the ID to from's bucket and, unless from == to, to to's bucket.
//
// Parallel edges are never merged: calling AddEdge twice for the same pair
// stores two edges, and both take part in traversal.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if g.strictWeights {
		if err := validateWeight(weight); err != nil {
			return "", fmt.Errorf("%w: %s-%s weight=%v", err, from, to, weight)
		}
	}

	// AddVertex only fails on empty labels, which were rejected above.
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edgeOrder = append(g.edgeOrder, eid)

	g.adjacency[from] = append(g.adjacency[from], eid)
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], eid)
	}

	return eid, nil
}

// Edges returns one entry per undirected edge, in insertion order.
//
// The reciprocal pair (A,B)/(B,A) is a single catalog entry, so the result
// length equals the number of AddEdge calls regardless of direction.
// Returned values are copies.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// validateWeight rejects weights the weighted search cannot handle.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return ErrBadWeight
	}

	return nil
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
