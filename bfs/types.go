// Package bfs provides tunable options and error definitions
// for fewest-hops search over a core.Graph.
package bfs

import "errors"

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a search.
type Options struct {
	// OnEnqueue is called when a node is enqueued (and marked visited).
	// Receives node ID and its depth from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called when a node is taken off the queue.
	OnDequeue func(id string, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result is the outcome of a fewest-hops query.
//   - Path: node labels from start to end inclusive; nil when no path exists.
//   - Hops: number of edges on Path; 0 when no path exists.
type Result struct {
	Path []string
	Hops int
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r != nil && r.Path != nil }
