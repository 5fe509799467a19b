package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optiruta/internal/planner"
	"github.com/katalvlaran/optiruta/internal/roadmap"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()

	return out.String(), err
}

func TestCitiesCmd(t *testing.T) {
	out, err := run(t, "cities")
	require.NoError(t, err)
	assert.Equal(t,
		"Cochabamba\nLa Paz\nOruro\nPotosí\nSanta Cruz\nSucre\nTarija\n", out)
}

func TestRouteCmd(t *testing.T) {
	out, err := run(t, "route", "La Paz", "Tarija")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculation: Distance")
	assert.Contains(t, out, "La Paz -> Oruro -> Potosí -> Tarija")
	assert.Contains(t, out, "Total cost: 900 km")

	out, err = run(t, "route", "La Paz", "Sucre", "--metric", "hops", "--json")
	require.NoError(t, err)
	var r planner.Route
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Found)
	assert.Equal(t, []string{"La Paz", "Cochabamba", "Sucre"}, r.Path)
	assert.Equal(t, 2.0, r.Cost)

	out, err = run(t, "route", "La Paz", "Cobija")
	require.NoError(t, err)
	assert.Equal(t, "No route found between La Paz and Cobija.\n", out)
}

func TestRouteCmd_Errors(t *testing.T) {
	_, err := run(t, "route", "Sucre", "Sucre")
	assert.ErrorIs(t, err, planner.ErrSameEndpoints)

	_, err = run(t, "route", "Sucre", "Oruro", "--metric", "minutes")
	assert.ErrorIs(t, err, planner.ErrUnknownMetric)

	_, err = run(t, "route", "Sucre")
	assert.Error(t, err)
}

func TestExportCmd(t *testing.T) {
	out, err := run(t, "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph OptiRuta {"))

	out, err = run(t, "export", "--format", "yaml")
	require.NoError(t, err)
	m, err := roadmap.Decode(strings.NewReader(out), roadmap.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, roadmap.Demo(), m)

	file := filepath.Join(t.TempDir(), "map.html")
	out, err = run(t, "export", "-f", "html", "-o", file)
	require.NoError(t, err)
	assert.Empty(t, out)
	page, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(page), "vis.Network")

	_, err = run(t, "export", "--format", "png")
	assert.ErrorContains(t, err, "unknown export format")
}

func TestMapFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "Tiny"
unit = "mi"

[[roads]]
from = "A"
to = "B"
distance = 2.0

[[roads]]
from = "B"
to = "C"
distance = 3.0
`), 0o644))

	out, err := run(t, "--map", path, "route", "A", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "A -> B -> C")
	assert.Contains(t, out, "Total cost: 5 mi")

	_, err = run(t, "--map", filepath.Join(t.TempDir(), "missing.yaml"), "cities")
	assert.Error(t, err)
}
