// Package converters renders a core.Graph into formats consumed by external
// viewers:
//   - Graphviz DOT (WriteDOT)
//   - a self-contained interactive HTML page backed by vis-network (WriteHTML)
//
// Both are read-only views built from Graph.Vertices() and Graph.Edges(), so
// every node appears once and every undirected edge appears exactly once,
// whichever direction it was inserted in.
package converters
