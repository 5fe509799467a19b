// Package bfs finds the path with the fewest hops between two nodes of a
// core.Graph, ignoring edge weights.
//
// What
//
//   - Level-order traversal from start using a FIFO frontier.
//   - A node is marked visited when it is enqueued, not when it is dequeued,
//     so no node enters the queue twice and the first time end is dequeued
//     its path is a shortest one in edge count.
//   - Paths are rebuilt from a predecessor map once end is reached.
//
// Outcomes
//
//   - Reachable: Result.Path is start…end inclusive, Result.Hops = len(Path)-1.
//   - start == end: Path = [start], Hops = 0.
//   - Unknown start or end, empty graph, disconnected pair: Path == nil,
//     Hops == 0, and a nil error. Absence of a path is not an error.
//
// Determinism
//
//	core.Neighbors enumerates edges in insertion order and BFS enqueues in
//	that order, so among several fewest-hop paths the one returned depends
//	only on the order roads were added.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited set and predecessor map.
//
// Usage
//
//	res, err := bfs.ShortestPath(g, "La Paz", "Tarija")
//	if err != nil {
//	    // only ErrGraphNil
//	}
//	if res.Found() {
//	    fmt.Println(res.Path, res.Hops)
//	}
//
// Options
//
//   - WithOnEnqueue(fn): hook when a node is enqueued, with its depth.
//   - WithOnDequeue(fn): hook when a node is taken off the queue.
package bfs
