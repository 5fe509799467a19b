package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/optiruta/core"
)

// ErrNilGraph is returned when a nil graph is passed to a writer.
var ErrNilGraph = errors.New("converters: graph is nil")

// DOTOptions controls DOT rendering.
type DOTOptions struct {
	// GraphName is the identifier after the "graph" keyword.
	GraphName string
	// Unit is appended to every edge label (e.g. "km").
	Unit string
}

// DOTOption configures WriteDOT.
type DOTOption func(*DOTOptions)

// WithGraphName sets the DOT graph identifier.
func WithGraphName(name string) DOTOption {
	return func(o *DOTOptions) {
		if name != "" {
			o.GraphName = name
		}
	}
}

// WithUnit sets the suffix of edge labels. An empty unit prints bare weights.
func WithUnit(unit string) DOTOption {
	return func(o *DOTOptions) { o.Unit = unit }
}

// DefaultDOTOptions returns the options used when none are given.
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{GraphName: "OptiRuta", Unit: "km"}
}

// WriteDOT writes g as an undirected Graphviz graph:
//
//	graph OptiRuta {
//	  node [shape=circle, style=filled, fillcolor=lightblue];
//	  edge [fontcolor=darkblue];
//	  "La Paz";
//	  "La Paz" -- "Oruro" [label="230km"];
//	}
//
// Nodes are listed first so isolated cities are still drawn.
func WriteDOT(w io.Writer, g *core.Graph, opts ...DOTOption) error {
	if g == nil {
		return ErrNilGraph
	}
	o := DefaultDOTOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s {\n", quoteID(o.GraphName))
	bw.WriteString("  node [shape=circle, style=filled, fillcolor=lightblue];\n")
	bw.WriteString("  edge [fontcolor=darkblue];\n")
	for _, v := range g.Vertices() {
		fmt.Fprintf(bw, "  %s;\n", strconv.Quote(v))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %s -- %s [label=%s];\n",
			strconv.Quote(e.From), strconv.Quote(e.To), strconv.Quote(FormatWeight(e.Weight)+o.Unit))
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// FormatWeight prints a weight without a trailing ".0" for whole numbers.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// quoteID leaves plain identifiers bare and quotes anything else.
func quoteID(id string) string {
	if id == "" {
		return `""`
	}
	plain := strings.IndexFunc(id, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) < 0
	if plain && (id[0] < '0' || id[0] > '9') {
		return id
	}

	return strconv.Quote(id)
}
