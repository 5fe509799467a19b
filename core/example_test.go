package core_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/optiruta/core"
)

// ExampleGraph demonstrates building a road graph and exporting its edges.
func ExampleGraph() {
	g := core.NewGraph()

	// Adding an edge adds its endpoints.
	_, _ = g.AddEdge("La Paz", "Oruro", 230)
	_, _ = g.AddEdge("Oruro", "Potosí", 330)
	_ = g.AddVertex("Tarija")

	cities := g.Vertices()
	sort.Strings(cities)
	fmt.Println(cities)

	for _, e := range g.Edges() {
		fmt.Printf("%s %s -- %s %.0f\n", e.ID, e.From, e.To, e.Weight)
	}

	// Output:
	// [La Paz Oruro Potosí Tarija]
	// e1 La Paz -- Oruro 230
	// e2 Oruro -- Potosí 330
}

// ExampleGraph_Neighbors shows that adjacency is symmetric.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 10)

	nb, _ := g.Neighbors("B")
	fmt.Println(nb[0].From, "->", nb[0].To, nb[0].Weight)

	// Output:
	// B -> A 10
}
