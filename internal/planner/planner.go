// Package planner is the application-facing route planner. It owns one road
// graph, serializes access to it, validates user requests and formats
// results for people.
package planner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/optiruta/bfs"
	"github.com/katalvlaran/optiruta/converters"
	"github.com/katalvlaran/optiruta/core"
	"github.com/katalvlaran/optiruta/dijkstra"
	"github.com/katalvlaran/optiruta/internal/roadmap"
)

// Usage errors. The engine itself accepts all of these inputs; the planner
// rejects them before querying because they are user mistakes.
var (
	ErrMissingEndpoint = errors.New("planner: origin and destination are required")
	ErrSameEndpoints   = errors.New("planner: origin and destination must differ")
	ErrUnknownMetric   = errors.New("planner: unknown metric")
)

// Metric selects the cost a route minimizes.
type Metric string

const (
	// MetricDistance minimizes the sum of road distances.
	MetricDistance Metric = "km"
	// MetricStops minimizes the number of roads taken.
	MetricStops Metric = "hops"
)

// ParseMetric accepts "km"/"distance" and "hops"/"stops".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "km", "distance", "":
		return MetricDistance, nil
	case "hops", "stops":
		return MetricStops, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Route is the answer to one query.
type Route struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Metric Metric   `json:"metric"`
	Found  bool     `json:"found"`
	Path   []string `json:"path,omitempty"`
	Cost   float64  `json:"cost"`
	Unit   string   `json:"unit"`
}

// String renders the route the way the result panel shows it.
func (r Route) String() string {
	if !r.Found {
		return fmt.Sprintf("No route found between %s and %s.", r.From, r.To)
	}
	var b strings.Builder
	heading := "Distance"
	if r.Metric == MetricStops {
		heading = "Stops"
	}
	fmt.Fprintf(&b, "Calculation: %s\n\n", heading)
	fmt.Fprintf(&b, "Best route:\n%s\n\n", strings.Join(r.Path, " -> "))
	fmt.Fprintf(&b, "Total cost: %s %s", converters.FormatWeight(r.Cost), r.Unit)

	return b.String()
}

// Planner wraps a core.Graph with a read-write lock. Queries take the read
// lock, AddRoad takes the write lock.
type Planner struct {
	mu   sync.RWMutex
	g    *core.Graph
	name string
	unit string
	log  *slog.Logger
}

// New wraps g. name titles exported maps; unit labels weighted costs.
func New(g *core.Graph, name, unit string, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Planner{g: g, name: name, unit: unit, log: log}
}

// FromMap builds a planner over the graph of m.
func FromMap(m *roadmap.Map, log *slog.Logger, opts ...core.GraphOption) (*Planner, error) {
	g, err := m.Build(opts...)
	if err != nil {
		return nil, err
	}

	return New(g, m.Name, m.Unit, log), nil
}

// Name returns the map title.
func (p *Planner) Name() string { return p.name }

// Unit returns the distance unit label.
func (p *Planner) Unit() string { return p.unit }

// Cities returns all city names sorted alphabetically.
func (p *Planner) Cities() []string {
	p.mu.RLock()
	cities := p.g.Vertices()
	p.mu.RUnlock()
	sort.Strings(cities)

	return cities
}

// Roads returns every road once.
func (p *Planner) Roads() []core.Edge {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.g.Edges()
}

// AddCity adds a city with no roads.
func (p *Planner) AddCity(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.g.AddVertex(name)
}

// AddRoad adds an undirected road, creating missing cities.
func (p *Planner) AddRoad(from, to string, distance float64) (string, error) {
	p.mu.Lock()
	id, err := p.g.AddEdge(from, to, distance)
	p.mu.Unlock()
	if err != nil {
		return "", err
	}
	p.log.Info("road added", "id", id, "from", from, "to", to, "distance", distance)

	return id, nil
}

// Route finds the best route from one city to another under metric.
// Unknown cities and unreachable pairs are a Route with Found == false.
func (p *Planner) Route(from, to string, metric Metric) (Route, error) {
	if from == "" || to == "" {
		return Route{}, ErrMissingEndpoint
	}
	if from == to {
		return Route{}, ErrSameEndpoints
	}

	r := Route{From: from, To: to, Metric: metric}

	p.mu.RLock()
	defer p.mu.RUnlock()

	switch metric {
	case MetricDistance:
		res, err := dijkstra.ShortestPath(p.g, from, to)
		if err != nil {
			return Route{}, err
		}
		r.Found, r.Path, r.Cost, r.Unit = res.Found(), res.Path, res.Cost, p.unit
	case MetricStops:
		res, err := bfs.ShortestPath(p.g, from, to)
		if err != nil {
			return Route{}, err
		}
		r.Found, r.Path, r.Cost, r.Unit = res.Found(), res.Path, float64(res.Hops), "stops"
	default:
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	p.log.Debug("route computed", "from", from, "to", to, "metric", string(metric),
		"found", r.Found, "cost", r.Cost)

	return r, nil
}

// WriteDOT renders the current map as Graphviz DOT.
func (p *Planner) WriteDOT(w io.Writer) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return converters.WriteDOT(w, p.g, converters.WithUnit(p.unit))
}

// WriteHTML renders the current map as an interactive HTML page.
func (p *Planner) WriteHTML(w io.Writer) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return converters.WriteHTML(w, p.g, p.name, p.unit)
}

// Snapshot captures the current map for saving.
func (p *Planner) Snapshot() *roadmap.Map {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return roadmap.FromGraph(p.g, p.name, p.unit)
}
