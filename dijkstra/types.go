// Package dijkstra defines core types and configuration options
// for the minimum-weight path query on a core.Graph.
//
// Options:
//
//	– WithOnSettle: hook called each time a node's distance is finalized.
//
// Errors (sentinel):
//
//	– ErrNilGraph if the provided graph pointer is nil.
package dijkstra

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Options configures the behavior of ShortestPath.
type Options struct {
	// OnSettle is called when a node is settled, with its final cost.
	OnSettle func(id string, cost float64)
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithOnSettle registers a callback run when a node's distance becomes final.
func WithOnSettle(fn func(id string, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns Options with a no-op OnSettle hook.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(string, float64) {},
	}
}

// Result is the outcome of a minimum-weight query.
//   - Path: node labels from start to end inclusive; nil when no path exists.
//   - Cost: sum of edge weights along Path; 0 when no path exists.
type Result struct {
	Path []string
	Cost float64
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r != nil && r.Path != nil }
