package converters

import (
	"html/template"
	"io"

	"github.com/katalvlaran/optiruta/core"
)

// htmlNode and htmlEdge mirror the vis-network DataSet item shapes.
type htmlNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
}

type htmlEdge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Title string  `json:"title"`
}

type htmlPage struct {
	Title string
	Nodes []htmlNode
	Edges []htmlEdge
}

// html/template JSON-encodes Nodes/Edges inside <script>, so labels need no
// manual escaping.
var pageTmpl = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 0; }
  h1 { font-size: 1.2em; margin: 0.5em 1em; }
  #network { width: 100%; height: 750px; border-top: 1px solid #ccc; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="network"></div>
<script>
  var nodes = new vis.DataSet({{.Nodes}});
  var edges = new vis.DataSet({{.Edges}});
  var options = {
    nodes: { shape: "dot", color: "lightblue" },
    edges: { font: { color: "darkblue" }, scaling: { min: 1, max: 8 } },
    physics: { enabled: true },
    configure: { filter: "physics" }
  };
  new vis.Network(document.getElementById("network"), { nodes: nodes, edges: edges }, options);
</script>
</body>
</html>
`))

// WriteHTML writes an interactive map page for g. unit labels edge weights
// (e.g. "km"); edge thickness follows the weight.
func WriteHTML(w io.Writer, g *core.Graph, title, unit string) error {
	if g == nil {
		return ErrNilGraph
	}

	vertices := g.Vertices()
	page := htmlPage{
		Title: title,
		Nodes: make([]htmlNode, 0, len(vertices)),
		Edges: make([]htmlEdge, 0, g.EdgeCount()),
	}
	for _, v := range vertices {
		page.Nodes = append(page.Nodes, htmlNode{ID: v, Label: v, Title: "City: " + v})
	}
	for _, e := range g.Edges() {
		label := FormatWeight(e.Weight) + unit
		page.Edges = append(page.Edges, htmlEdge{
			From:  e.From,
			To:    e.To,
			Label: label,
			Value: e.Weight,
			Title: label,
		})
	}

	return pageTmpl.Execute(w, page)
}
