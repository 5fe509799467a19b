// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/optiruta/core"
)

// ShortestPath computes the minimum-weight path from start to end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be known nodes; otherwise the result is "no path"
//     with a nil error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !g.HasVertex(start) || !g.HasVertex(end) {
		return &Result{}, nil
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		settled: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init(start)
	cost, ok := r.process(end)
	if !ok {
		return &Result{}, nil
	}

	return &Result{Path: r.pathTo(end), Cost: cost}, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64 // best known distance from start
	prev    map[string]string  // predecessor on the best known path
	settled map[string]bool    // distance finalized
	pq      nodePQ
	seq     uint64 // push counter for FIFO among equal costs
}

// init sets dist[v] = +∞ for every node, dist[start] = 0, and seeds the heap.
func (r *runner) init(start string) {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	r.push(start, 0)
}

// process pops entries until end is settled (returning its cost) or the
// heap is empty.
func (r *runner) process(end string) (float64, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a cheaper path to this node was already finalized.
		if r.settled[item.id] {
			continue
		}
		r.settled[item.id] = true
		r.options.OnSettle(item.id, item.dist)

		if item.id == end {
			return item.dist, true
		}
		r.relax(item.id, item.dist)
	}

	return 0, false
}

// relax tries to improve each neighbor of u through u.
// Only strict improvements update dist and push, so equal-cost alternatives
// found later never replace the first one.
func (r *runner) relax(u string, du float64) {
	// u came off the heap, so it is a known node.
	edges, _ := r.g.Neighbors(u)
	var newDist float64
	for _, e := range edges {
		if r.settled[e.To] {
			continue
		}
		newDist = du + e.Weight
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		r.push(e.To, newDist)
	}
}

func (r *runner) push(id string, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// pathTo walks prev back from dest and reverses the result.
func (r *runner) pathTo(dest string) []string {
	path := []string{dest}
	for cur := dest; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a node and a tentative distance from the start.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64 // push order, breaks ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
