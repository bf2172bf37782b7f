package application

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

// CompiledGraph is the evaluation-ready form of a graph document: the
// inputs Evaluate takes, plus the document metadata.
// A CompiledGraph may be served from the loader's cache and MUST NOT be
// mutated by callers; run a pass and discard, or reload after edits.
type CompiledGraph struct {
	Nodes    []domain.Node
	Edges    []domain.Edge
	Refs     domain.ReferenceTable
	Metadata Metadata
}

// GraphLoader parses, validates, and compiles YAML graph documents,
// caching compiled graphs by the SHA256 hash of the normalized document so
// identical documents are compiled once.
type GraphLoader struct {
	// validator performs struct field validation and the custom rules
	// registered for graph documents.
	validator *validator.Validate
	// cache stores compiled graphs indexed by normalized-document hash.
	cache map[string]*CompiledGraph
	// cacheMu provides thread-safe access to the cache map.
	cacheMu sync.RWMutex
	// sf prevents duplicate compilation when multiple goroutines request
	// the same document simultaneously.
	sf singleflight.Group
}

// NewGraphLoader creates a graph loader with an empty cache and the
// document validators registered.
func NewGraphLoader() (*GraphLoader, error) {
	v := validator.New()
	if err := registerCustomValidators(v); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	return &GraphLoader{
		validator: v,
		cache:     make(map[string]*CompiledGraph),
	}, nil
}

// LoadFromFile loads and compiles a graph document from a YAML file.
// The returned graph may be a cached instance; callers MUST NOT mutate it.
func (gl *GraphLoader) LoadFromFile(path string) (*CompiledGraph, error) {
	// Clean the path to prevent directory traversal through user input.
	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return gl.load(data)
}

// LoadFromReader loads and compiles a graph document from an io.Reader.
// The returned graph may be a cached instance; callers MUST NOT mutate it.
func (gl *GraphLoader) LoadFromReader(r io.Reader) (*CompiledGraph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	return gl.load(data)
}

// load parses, validates, and compiles document bytes, using singleflight
// plus the hash cache to avoid duplicate compilation.
func (gl *GraphLoader) load(data []byte) (*CompiledGraph, error) {
	doc, err := gl.parseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Hash the normalized document, not the raw bytes, so formatting
	// differences do not defeat the cache.
	hash, err := gl.documentHash(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate hash: %w", err)
	}

	v, err, _ := gl.sf.Do(hash, func() (any, error) {
		// Re-check inside singleflight to handle the race between the
		// cache check and group execution.
		if graph, ok := gl.cachedGraph(hash); ok {
			return graph, nil
		}

		if err := gl.validateDocument(doc); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		graph := compileDocument(doc)
		gl.cacheGraph(hash, graph)
		return graph, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*CompiledGraph), nil
}

// parseYAML unmarshals a graph document with strict decoding so unknown
// fields fail loudly instead of being silently ignored.
func (gl *GraphLoader) parseYAML(data []byte) (*GraphDocument, error) {
	var doc GraphDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("YAML decode failed: %w", err)
	}
	return &doc, nil
}

// validateDocument runs struct tag validation followed by the semantic
// rules that tags cannot express.
func (gl *GraphLoader) validateDocument(doc *GraphDocument) error {
	if err := gl.validator.Struct(doc); err != nil {
		return fmt.Errorf("struct validation failed: %w", err)
	}

	if err := validateDocumentSemantics(doc); err != nil {
		return fmt.Errorf("semantic validation failed: %w", err)
	}

	return nil
}

// validateDocumentSemantics enforces the relationships struct tags cannot:
// unique node and edge IDs, edge endpoints that exist, named bindings with
// a reference, and at most one edge per (node, port) target. The loader is
// a graph-construction path, so it owns the fan-in invariant the evaluator
// assumes.
func validateDocumentSemantics(doc *GraphDocument) error {
	nodeIDs := make(map[string]struct{}, len(doc.Nodes))
	for _, node := range doc.Nodes {
		if _, exists := nodeIDs[node.ID]; exists {
			return fmt.Errorf("duplicate node ID %q", node.ID)
		}
		nodeIDs[node.ID] = struct{}{}

		for portID, port := range node.Ports {
			if (port.Binding == "constant" || port.Binding == "variable") && port.Ref == "" {
				docErr := domain.NewDocumentError(fmt.Sprintf("node %s port %s", node.ID, portID))
				docErr.AddError(fmt.Sprintf("%s binding requires a ref", port.Binding))
				return docErr
			}
		}
	}

	edgeIDs := make(map[string]struct{}, len(doc.Edges))
	targets := make(map[string]string, len(doc.Edges)) // "node.port" -> edge ID
	for _, edge := range doc.Edges {
		if _, exists := edgeIDs[edge.ID]; exists {
			return fmt.Errorf("duplicate edge ID %q", edge.ID)
		}
		edgeIDs[edge.ID] = struct{}{}

		if _, exists := nodeIDs[edge.From]; !exists {
			return fmt.Errorf("edge %s references non-existent source node: %s", edge.ID, edge.From)
		}
		if _, exists := nodeIDs[edge.To]; !exists {
			return fmt.Errorf("edge %s references non-existent target node: %s", edge.ID, edge.To)
		}

		target := edge.To + "." + edge.ToPort
		if prior, exists := targets[target]; exists {
			return fmt.Errorf("edges %s and %s both target %s: at most one edge may feed a port", prior, edge.ID, target)
		}
		targets[target] = edge.ID
	}

	return nil
}

// compileDocument converts a validated document into the engine's graph
// model. Constants and variables are merged into one reference table;
// a name defined in both resolves to the variable's value, since variables
// are the mutable layer.
func compileDocument(doc *GraphDocument) *CompiledGraph {
	nodes := make([]domain.Node, len(doc.Nodes))
	for i, nc := range doc.Nodes {
		var settings map[string]domain.PortSetting
		if len(nc.Ports) > 0 {
			settings = make(map[string]domain.PortSetting, len(nc.Ports))
			for portID, pc := range nc.Ports {
				settings[portID] = domain.PortSetting{
					Binding:  bindingKind(pc.Binding),
					Literal:  pc.Literal,
					Ref:      pc.Ref,
					Override: pc.Override,
				}
			}
		}
		nodes[i] = domain.Node{
			ID:    nc.ID,
			Type:  nc.Type,
			Ports: settings,
			Data:  nc.Data,
		}
	}

	edges := make([]domain.Edge, len(doc.Edges))
	for i, ec := range doc.Edges {
		edges[i] = domain.Edge{
			ID:       ec.ID,
			From:     ec.From,
			FromPort: ec.FromPort,
			To:       ec.To,
			ToPort:   ec.ToPort,
		}
	}

	refs := make(domain.ReferenceTable, len(doc.Constants)+len(doc.Variables))
	for name, value := range doc.Constants {
		refs[name] = value
	}
	for name, value := range doc.Variables {
		refs[name] = value
	}

	return &CompiledGraph{
		Nodes:    nodes,
		Edges:    edges,
		Refs:     refs,
		Metadata: doc.Metadata,
	}
}

func bindingKind(s string) domain.BindingKind {
	switch s {
	case "constant":
		return domain.BindingConstant
	case "variable":
		return domain.BindingVariable
	default:
		return domain.BindingLiteral
	}
}

// documentHash computes the SHA256 hash of the re-encoded document so
// semantically identical documents share a cache entry regardless of
// whitespace or key ordering.
func (gl *GraphLoader) documentHash(doc *GraphDocument) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode document for hashing: %w", err)
	}

	hash := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(hash[:]), nil
}

func (gl *GraphLoader) cachedGraph(hash string) (*CompiledGraph, bool) {
	gl.cacheMu.RLock()
	defer gl.cacheMu.RUnlock()

	graph, ok := gl.cache[hash]
	return graph, ok
}

func (gl *GraphLoader) cacheGraph(hash string, graph *CompiledGraph) {
	gl.cacheMu.Lock()
	defer gl.cacheMu.Unlock()

	gl.cache[hash] = graph
}

// ClearCache removes all cached graphs, forcing subsequent loads to
// recompile from source.
func (gl *GraphLoader) ClearCache() {
	gl.cacheMu.Lock()
	defer gl.cacheMu.Unlock()

	gl.cache = make(map[string]*CompiledGraph)
}
