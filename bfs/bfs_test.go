package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optiruta/bfs"
	"github.com/katalvlaran/optiruta/core"
)

func TestShortestPath_NilGraph(t *testing.T) {
	res, err := bfs.ShortestPath(nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestShortestPath_DirectEdgeBeatsDetour: A–B(10), B–C(10), A–C(5).
func TestShortestPath_DirectEdgeBeatsDetour(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 10)
	_, _ = g.AddEdge("B", "C", 10)
	_, _ = g.AddEdge("A", "C", 5)

	res, err := bfs.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 1, res.Hops)
}

// TestShortestPath_IgnoresWeight: A–B(1), B–C(1), C–D(1), A–D(100).
func TestShortestPath_IgnoresWeight(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("A", "D", 100)

	res, err := bfs.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, res.Path)
	assert.Equal(t, 1, res.Hops)
}

func TestShortestPath_NoPath(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")

	res, err := bfs.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Nil(t, res.Path)
	assert.Equal(t, 0, res.Hops)

	// two components
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "D", 1)
	res, err = bfs.ShortestPath(g, "C", "D")
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestShortestPath_SameEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)

	res, err := bfs.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, 0, res.Hops)
}

func TestShortestPath_UnknownNodes(t *testing.T) {
	g := core.NewGraph()

	res, err := bfs.ShortestPath(g, "A", "B")
	require.NoError(t, err, "empty graph")
	assert.False(t, res.Found())

	_, _ = g.AddEdge("A", "B", 1)
	for _, pair := range [][2]string{{"Z", "A"}, {"A", "Z"}, {"", "A"}} {
		res, err = bfs.ShortestPath(g, pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, res.Found(), "%v", pair)
		assert.Equal(t, 0, res.Hops)
	}
}

// TestShortestPath_TieBreakInsertionOrder: two 2-hop routes; the one whose
// first road was added first wins.
func TestShortestPath_TieBreakInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("S", "Y", 1)
	_, _ = g.AddEdge("S", "X", 1)
	_, _ = g.AddEdge("X", "T", 1)
	_, _ = g.AddEdge("Y", "T", 1)

	res, err := bfs.ShortestPath(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Y", "T"}, res.Path)
}

// TestShortestPath_EnqueueOncePerNode checks visited-at-enqueue: in a
// complete graph every node is enqueued exactly once.
func TestShortestPath_EnqueueOncePerNode(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			_, _ = g.AddEdge(ids[i], ids[j], 1)
		}
	}
	_ = g.AddVertex("F")

	counts := map[string]int{}
	var dequeued []string
	res, err := bfs.ShortestPath(g, "A", "F",
		bfs.WithOnEnqueue(func(id string, _ int) { counts[id]++ }),
		bfs.WithOnDequeue(func(id string, _ int) { dequeued = append(dequeued, id) }),
	)
	require.NoError(t, err)
	assert.False(t, res.Found())
	for _, id := range ids {
		assert.Equal(t, 1, counts[id], "node %s", id)
	}
	assert.Equal(t, ids, dequeued)
}

func TestShortestPath_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	res, err := bfs.ShortestPath(g, "C", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Path)
	assert.Equal(t, 2, res.Hops)
}

// TestShortestPath_HopOptimality compares against exhaustive enumeration of
// simple paths on small random graphs.
func TestShortestPath_HopOptimality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		g := randomGraph(rng, 7, 9)
		nodes := g.Vertices()
		for _, s := range nodes {
			for _, e := range nodes {
				want, reachable := minHops(g, s, e)
				res, err := bfs.ShortestPath(g, s, e)
				require.NoError(t, err)
				require.Equal(t, reachable, res.Found(), "trial %d %s→%s", trial, s, e)
				if !reachable {
					continue
				}
				assert.Equal(t, want, res.Hops, "trial %d %s→%s", trial, s, e)
				assert.Equal(t, len(res.Path)-1, res.Hops)
				assert.Equal(t, s, res.Path[0])
				assert.Equal(t, e, res.Path[len(res.Path)-1])
				assertIsWalk(t, g, res.Path)
			}
		}
	}
}

func randomGraph(rng *rand.Rand, n, m int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("N%d", i))
	}
	for i := 0; i < m; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		_, _ = g.AddEdge(fmt.Sprintf("N%d", u), fmt.Sprintf("N%d", v), float64(rng.Intn(20)))
	}

	return g
}

// minHops enumerates every simple path from s and returns the fewest edges to e.
func minHops(g *core.Graph, s, e string) (int, bool) {
	best, found := 0, false
	onPath := map[string]bool{s: true}
	var walk func(cur string, hops int)
	walk = func(cur string, hops int) {
		if cur == e {
			if !found || hops < best {
				best, found = hops, true
			}
			return
		}
		nb, _ := g.Neighbors(cur)
		for _, edge := range nb {
			if onPath[edge.To] {
				continue
			}
			onPath[edge.To] = true
			walk(edge.To, hops+1)
			onPath[edge.To] = false
		}
	}
	walk(s, 0)

	return best, found
}

func assertIsWalk(t *testing.T, g *core.Graph, path []string) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		nb, err := g.Neighbors(path[i])
		require.NoError(t, err)
		ok := false
		for _, e := range nb {
			if e.To == path[i+1] {
				ok = true
				break
			}
		}
		assert.True(t, ok, "no edge %s-%s", path[i], path[i+1])
	}
}
