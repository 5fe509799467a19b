// Package roadmap loads road maps from YAML or TOML documents and turns them
// into a core.Graph.
package roadmap

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/optiruta/core"
)

// Format names a road map encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnknownFormat is returned for unsupported file extensions or format names.
	ErrUnknownFormat = errors.New("roadmap: unknown format")

	// ErrInvalidMap is returned by Build for a city or road the graph rejects.
	ErrInvalidMap = errors.New("roadmap: invalid map")
)

//go:embed demo.yaml
var demoYAML []byte

// Map is a named set of cities and the roads between them.
type Map struct {
	Name   string   `yaml:"name" toml:"name"`
	Unit   string   `yaml:"unit" toml:"unit"`
	Cities []string `yaml:"cities" toml:"cities"`
	Roads  []Road   `yaml:"roads" toml:"roads"`
}

// Road is one undirected connection.
type Road struct {
	From     string  `yaml:"from" toml:"from"`
	To       string  `yaml:"to" toml:"to"`
	Distance float64 `yaml:"distance" toml:"distance"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the road map at path.
func Load(path string) (*Map, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("roadmap: %s: %w", path, err)
	}

	return m, nil
}

// Decode reads a road map in the given format from r.
func Decode(r io.Reader, format Format) (*Map, error) {
	var m Map
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&m)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &m, nil
}

// Encode writes m in the given format.
func (m *Map) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Build creates a graph holding every city and road of m.
// Cities are added first, in listed order, then roads.
func (m *Map) Build(opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for _, c := range m.Cities {
		if err := g.AddVertex(c); err != nil {
			return nil, fmt.Errorf("%w: city %q: %v", ErrInvalidMap, c, err)
		}
	}
	for i, r := range m.Roads {
		if _, err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("%w: #%d %q-%q: %w", ErrInvalidMap, i+1, r.From, r.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Map; used to save a map edited at runtime.
func FromGraph(g *core.Graph, name, unit string) *Map {
	m := &Map{Name: name, Unit: unit, Cities: g.Vertices()}
	for _, e := range g.Edges() {
		m.Roads = append(m.Roads, Road{From: e.From, To: e.To, Distance: e.Weight})
	}

	return m
}

// Demo returns the built-in Bolivian road map.
func Demo() *Map {
	m, err := Decode(bytes.NewReader(demoYAML), FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("roadmap: embedded demo map: %v", err))
	}

	return m
}
