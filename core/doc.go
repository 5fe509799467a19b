// Package core provides the in-memory road graph used by optiruta: a small,
// static, weighted, undirected graph of labeled locations.
//
// The Graph G = (V,E) keeps:
//
//   - Nodes identified by case-sensitive string labels (no normalization).
//     A node exists from the first time a mutation references it.
//   - Undirected edges with a non-negative float64 weight (e.g. kilometres).
//     Parallel edges between the same pair are retained; nothing is merged.
//   - An adjacency list: label → incident edges, in edge-insertion order.
//     Every edge is recorded under both endpoints with the same weight.
//
// Why insertion order?
//
//   - Searches enumerate neighbors through Neighbors(), so the order in which
//     roads were added fully determines tie-breaking in bfs and dijkstra.
//     Identical build sequences yield identical routes.
//
// Configuration Options (GraphOption):
//
//	– WithStrictWeights()
//	    Reject negative, NaN and infinite weights at insertion time with
//	    ErrBadWeight. Without it AddEdge stores any weight verbatim, and a
//	    negative weight leaves weighted search results undefined.
//
// Core Methods:
//
//	// Nodes
//	AddVertex(id string) error            // O(1), idempotent
//	HasVertex(id string) bool             // O(1)
//	Vertices() []string                   // O(V), first-reference order
//	VertexCount() int                     // O(1)
//
//	// Edges
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1) amortized
//	Edges() []Edge                        // O(E), one entry per undirected edge
//	EdgeCount() int                       // O(1)
//
//	// Adjacency
//	Neighbors(id string) ([]Edge, error)  // O(d), oriented so From == id
//	Degree(id string) (int, error)        // O(1)
//
//	// Copies
//	Clone() *Graph                        // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length node label
//	ErrVertexNotFound – Neighbors/Degree on an unknown label
//	ErrBadWeight      – rejected weight (strict graphs only)
//
// Concurrency:
//
//	A Graph performs no locking. Callers that share one instance between
//	goroutines serialize access themselves (one writer, or a sync.RWMutex
//	held around mutations and queries).
package core
