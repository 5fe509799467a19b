// Package bfs provides breadth-first search over a core.Graph,
// returning the path with the fewest edges between two nodes.
package bfs

import (
	"github.com/katalvlaran/optiruta/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	end     string
	queue   []queueItem
	visited map[string]bool
	parent  map[string]string
}

// ShortestPath runs breadth-first search on g from start and returns the
// first path that reaches end, which has the fewest hops.
//
// Unknown endpoints and unreachable pairs yield a Result with a nil Path;
// the only error is ErrGraphNil.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Unknown node is unreachability, not a programming error.
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return &Result{}, nil
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		end:     end,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
	}

	w.enqueue(start, 0, "")
	if !w.loop() {
		return &Result{}, nil
	}

	path := w.pathTo(end)

	return &Result{Path: path, Hops: len(path) - 1}, nil
}

// enqueue marks id visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	if parent != "" {
		w.parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// loop processes the queue until end is dequeued (true) or the queue empties (false).
func (w *walker) loop() bool {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if item.id == w.end {
			return true
		}
		w.enqueueNeighbors(item)
	}

	return false
}

// enqueueNeighbors enqueues each unseen neighbor of item in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) {
	// item.id came off the queue, so it is a known node.
	edges, _ := w.graph.Neighbors(item.id)
	for _, e := range edges {
		if !w.visited[e.To] {
			w.enqueue(e.To, item.depth+1, item.id)
		}
	}
}

// pathTo walks the predecessor chain back from dest and reverses it.
func (w *walker) pathTo(dest string) []string {
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
