package application

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

const validGraphYAML = `version: "1.0.0"
metadata:
  name: "Projectile Range"
  description: "Initial speed times flight time"
  tags: ["physics", "demo"]
nodes:
  - id: speed
    type: number
    ports:
      value:
        binding: literal
        literal: 12.5
  - id: duration
    type: number
    ports:
      value:
        binding: variable
        ref: flight_time
  - id: distance
    type: multiply
edges:
  - id: e1
    from: speed
    fromPort: out
    to: distance
    toPort: a
  - id: e2
    from: duration
    fromPort: out
    to: distance
    toPort: b
constants:
  g: 9.81
variables:
  flight_time: 3
`

func newTestLoader(t *testing.T) *GraphLoader {
	t.Helper()
	loader, err := NewGraphLoader()
	require.NoError(t, err)
	return loader
}

func TestGraphLoader_LoadFromReader_ValidDocument(t *testing.T) {
	loader := newTestLoader(t)

	graph, err := loader.LoadFromReader(strings.NewReader(validGraphYAML))
	require.NoError(t, err)

	assert.Equal(t, "Projectile Range", graph.Metadata.Name)
	require.Len(t, graph.Nodes, 3)
	require.Len(t, graph.Edges, 2)

	speed := graph.Nodes[0]
	assert.Equal(t, "speed", speed.ID)
	assert.Equal(t, "number", speed.Type)
	require.Contains(t, speed.Ports, "value")
	assert.Equal(t, domain.BindingLiteral, speed.Ports["value"].Binding)
	assert.Equal(t, 12.5, speed.Ports["value"].Literal)

	duration := graph.Nodes[1]
	assert.Equal(t, domain.BindingVariable, duration.Ports["value"].Binding)
	assert.Equal(t, "flight_time", duration.Ports["value"].Ref)

	assert.Equal(t, 9.81, graph.Refs["g"])
	assert.Equal(t, 3.0, graph.Refs["flight_time"])
}

func TestGraphLoader_LoadFromFile(t *testing.T) {
	loader := newTestLoader(t)

	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validGraphYAML), 0o600))

	graph, err := loader.LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, graph.Nodes, 3)
}

func TestGraphLoader_LoadFromFile_NotFound(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestGraphLoader_UnknownFieldFails(t *testing.T) {
	loader := newTestLoader(t)

	doc := strings.Replace(validGraphYAML, "metadata:", "surprise: true\nmetadata:", 1)

	_, err := loader.LoadFromReader(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestGraphLoader_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc string) string
		wantMsg string
	}{
		{
			name: "bad version",
			mutate: func(doc string) string {
				return strings.Replace(doc, `version: "1.0.0"`, `version: "one"`, 1)
			},
			wantMsg: "struct validation failed",
		},
		{
			name: "missing metadata name",
			mutate: func(doc string) string {
				return strings.Replace(doc, `name: "Projectile Range"`, `name: ""`, 1)
			},
			wantMsg: "struct validation failed",
		},
		{
			name: "duplicate node ID",
			mutate: func(doc string) string {
				return strings.Replace(doc, "- id: duration", "- id: speed", 1)
			},
			wantMsg: "duplicate node ID",
		},
		{
			name: "duplicate edge ID",
			mutate: func(doc string) string {
				return strings.Replace(doc, "- id: e2", "- id: e1", 1)
			},
			wantMsg: "duplicate edge ID",
		},
		{
			name: "edge to unknown node",
			mutate: func(doc string) string {
				return strings.Replace(doc, "to: distance\n    toPort: a", "to: nowhere\n    toPort: a", 1)
			},
			wantMsg: "non-existent target node",
		},
		{
			name: "two edges into one port",
			mutate: func(doc string) string {
				return strings.Replace(doc, "toPort: b", "toPort: a", 1)
			},
			wantMsg: "at most one edge may feed a port",
		},
		{
			name: "named binding without ref",
			mutate: func(doc string) string {
				return strings.Replace(doc, "binding: variable\n        ref: flight_time", "binding: variable", 1)
			},
			wantMsg: "binding requires a ref",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newTestLoader(t)

			_, err := loader.LoadFromReader(strings.NewReader(tt.mutate(validGraphYAML)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGraphLoader_NamedBindingErrorIsDocumentError(t *testing.T) {
	loader := newTestLoader(t)

	doc := strings.Replace(validGraphYAML,
		"binding: variable\n        ref: flight_time", "binding: variable", 1)

	_, err := loader.LoadFromReader(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}

func TestGraphLoader_CacheReturnsSameInstance(t *testing.T) {
	loader := newTestLoader(t)

	first, err := loader.LoadFromReader(strings.NewReader(validGraphYAML))
	require.NoError(t, err)

	second, err := loader.LoadFromReader(strings.NewReader(validGraphYAML))
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestGraphLoader_CacheIgnoresFormattingDifferences(t *testing.T) {
	loader := newTestLoader(t)

	first, err := loader.LoadFromReader(strings.NewReader(validGraphYAML))
	require.NoError(t, err)

	reformatted := strings.Replace(validGraphYAML, `tags: ["physics", "demo"]`,
		"tags:\n    - physics\n    - demo", 1)
	second, err := loader.LoadFromReader(strings.NewReader(reformatted))
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestGraphLoader_ClearCache(t *testing.T) {
	loader := newTestLoader(t)

	first, err := loader.LoadFromReader(strings.NewReader(validGraphYAML))
	require.NoError(t, err)

	loader.ClearCache()

	second, err := loader.LoadFromReader(strings.NewReader(validGraphYAML))
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestGraphLoader_CompiledGraphEvaluates(t *testing.T) {
	loader := newTestLoader(t)

	graph, err := loader.LoadFromReader(strings.NewReader(validGraphYAML))
	require.NoError(t, err)

	registry := NewBlockRegistry()
	require.NoError(t, registry.Register("number", sourceBlock()))
	require.NoError(t, registry.Register("multiply", &mockBlock{
		ports: []ports.PortSpec{{ID: "a"}, {ID: "b"}},
		evalFunc: func(inputs []*domain.Value, _ domain.Node) domain.Value {
			a, aok := inputs[0].AsScalar()
			b, bok := inputs[1].AsScalar()
			if !aok || !bok {
				return domain.ErrorValue("expected numbers")
			}
			return domain.Scalar(a * b)
		},
	}))

	ev, err := NewEvaluator(registry)
	require.NoError(t, err)

	results := ev.Evaluate(graph.Nodes, graph.Edges, graph.Refs)

	v, ok := results.Value("distance")
	require.True(t, ok)
	assert.True(t, v.Equal(domain.Scalar(37.5)))
}
