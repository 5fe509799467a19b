// Package dijkstra finds the minimum-total-weight path between two nodes of a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Classic single-source search with a min-heap keyed by accumulated cost.
//   - Lazy decrease-key: an improved distance pushes a new heap entry; entries
//     for already-settled nodes are discarded when popped.
//   - Stops as soon as the destination is settled. Once a node is popped with
//     minimum cost and was not settled before, no cheaper path to it exists.
//   - Predecessors are recorded on relaxation; the path is rebuilt by walking
//     back from the destination once, at the end.
//
// Outcomes:
//
//   - Reachable: Result.Path is start…end inclusive, Result.Cost is its weight.
//   - start == end: Path = [start], Cost = 0.
//   - Unknown start or end, empty graph, disconnected pair: Path == nil,
//     Cost == 0, nil error.
//
// Determinism:
//
//   - Neighbors are relaxed in edge-insertion order (core.Neighbors).
//   - Heap entries with equal cost pop in push order.
//     Equal-cost routes therefore resolve the same way on every run.
//
// Preconditions:
//
//   - Edge weights must be non-negative. This is not checked here; build the
//     graph with core.WithStrictWeights() to reject bad weights on insertion.
//     With negative weights the result is undefined.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy deletion.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, start, end string, opts ...Option) (*Result, error)
package dijkstra
