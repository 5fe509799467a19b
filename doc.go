// Package optiruta is an in-memory road network and route planner.
//
// A road map is an undirected weighted graph: cities are vertices, roads are
// edges whose weight is the distance between two cities. Two queries are
// answered over it:
//
//   - fewest stops: breadth-first search, every road costs one hop
//   - shortest distance: Dijkstra's algorithm over road distances
//
// Both return the full city sequence, not only the cost. A missing route is
// a normal result (an empty path), never an error.
//
// Layout:
//
//	core/       - Graph, Edge and the mutation/query primitives
//	bfs/        - fewest-hops path search
//	dijkstra/   - least-distance path search
//	converters/ - Graphviz DOT and interactive HTML export
//	internal/   - config, logging, road map files, planner, HTTP server
//	cmd/optiruta - command-line interface
//
// Quick ASCII example:
//
//	La Paz ──230── Oruro ──330── Potosí ──340── Tarija
//	   │             │
//	  380           210
//	   │             │
//	Cochabamba ──────┘
//
// With these roads the distance route from La Paz to Tarija is
// La Paz → Oruro → Potosí → Tarija (900 km).
//
//	go install github.com/katalvlaran/optiruta/cmd/optiruta@latest
package optiruta
