// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Determinism:
//   - nodes and edges slices preserve insertion order; adjacency buckets too.
// Concurrency:
//   - None. See doc.go.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided node label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent node.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight rejected by a strict graph
	// (negative, NaN or infinite).
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Edge is one undirected, weighted connection between two nodes.
//
// The catalog stores every edge once with From/To as passed to AddEdge.
// Neighbors returns copies oriented from the queried node, so From is always
// the node you asked about and To is the node across the edge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From and To are the endpoint labels.
	From string
	To   string

	// Weight is the traversal cost (distance, time, …).
	Weight float64
}

// Other returns the endpoint opposite to id.
// For a self-loop both endpoints are id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// reversed returns a copy of e with endpoints swapped.
func (e Edge) reversed() Edge {
	e.From, e.To = e.To, e.From

	return e
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictWeights makes AddEdge reject negative, NaN and infinite weights.
func WithStrictWeights() GraphOption {
	return func(g *Graph) { g.strictWeights = true }
}

// Graph is the adjacency-list road graph.
//
// nodes keeps first-reference order for Vertices(); adjacency maps each label
// to the IDs of its incident edges in insertion order; edges is the catalog.
type Graph struct {
	strictWeights bool // reject bad weights in AddEdge

	nextEdgeID uint64           // monotonically increasing edge counter
	nodes      []string         // node labels, first-reference order
	edgeOrder  []string         // edge IDs, insertion order
	edges      map[string]*Edge // edge ID → Edge

	// adjacency[label] = incident edge IDs, insertion order.
	// A self-loop appears once in its node's bucket.
	adjacency map[string][]string
}

// NewGraph creates an empty Graph.
// By default weights are not validated.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// StrictWeights reports whether AddEdge validates weights.
func (g *Graph) StrictWeights() bool { return g.strictWeights }
