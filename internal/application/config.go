package application

// GraphDocument is the YAML specification of a computation graph: the
// nodes with their port bindings, the edges connecting them, and the named
// reference tables. It is an input adapter for callers that persist graphs
// declaratively; the engine's contract remains Evaluate(nodes, edges, refs).
type GraphDocument struct {
	// Version specifies the document schema version using semantic
	// versioning to ensure compatibility across updates.
	Version string `yaml:"version" validate:"required,semver"`
	// Metadata carries descriptive information about the graph.
	Metadata Metadata `yaml:"metadata" validate:"required"`
	// Nodes defines the operation instances of the graph.
	Nodes []NodeConfig `yaml:"nodes" validate:"required,min=1,dive"`
	// Edges defines the directed connections between node ports.
	Edges []EdgeConfig `yaml:"edges" validate:"dive"`
	// Constants maps named-constant references to their values.
	Constants map[string]float64 `yaml:"constants" validate:"omitempty,dive,keys,refname,endkeys"`
	// Variables maps named-variable references to their current values.
	// Callers typically refresh these between passes.
	Variables map[string]float64 `yaml:"variables" validate:"omitempty,dive,keys,refname,endkeys"`
}

// Metadata provides descriptive information about a graph document for
// organization and discovery. The engine carries it through unchanged.
type Metadata struct {
	// Name is the human-readable identifier for this graph.
	Name string `yaml:"name" validate:"required,min=1,max=255"`
	// Description explains the graph's purpose.
	Description string `yaml:"description" validate:"max=1000"`
	// Tags are categorical labels for filtering and grouping.
	Tags []string `yaml:"tags" validate:"max=20,dive,min=1,max=50"`
}

// NodeConfig is the document form of one node.
type NodeConfig struct {
	// ID uniquely identifies the node within the document and must be
	// stable across edits so results can be matched back to the canvas.
	ID string `yaml:"id" validate:"required,graphid,min=1,max=100"`
	// Type names the operation, resolved through the block registry at
	// evaluation time. Unknown types are legal; such nodes produce no
	// result.
	Type string `yaml:"type" validate:"required,min=1,max=100"`
	// Ports holds the per-port bindings and override flags keyed by port ID.
	Ports map[string]PortConfig `yaml:"ports" validate:"omitempty,dive"`
	// Data is the opaque per-node payload handed to the block.
	Data map[string]any `yaml:"data"`
}

// PortConfig is the document form of a port binding.
type PortConfig struct {
	// Binding selects the binding kind; an empty value means literal.
	Binding string `yaml:"binding" validate:"omitempty,oneof=literal constant variable"`
	// Literal is the number used by literal bindings.
	Literal float64 `yaml:"literal"`
	// Ref names the constant or variable used by named bindings.
	Ref string `yaml:"ref" validate:"omitempty,refname"`
	// Override forces the binding even while the port is connected.
	Override bool `yaml:"override"`
}

// EdgeConfig is the document form of one connection.
type EdgeConfig struct {
	// ID uniquely identifies the edge within the document.
	ID string `yaml:"id" validate:"required,graphid,min=1,max=100"`
	// From and FromPort name the upstream node and its output port.
	From     string `yaml:"from" validate:"required,graphid"`
	FromPort string `yaml:"fromPort" validate:"required,min=1,max=100"`
	// To and ToPort name the downstream node and its input port. At most
	// one edge may target a given (node, port) pair.
	To     string `yaml:"to" validate:"required,graphid"`
	ToPort string `yaml:"toPort" validate:"required,min=1,max=100"`
}
