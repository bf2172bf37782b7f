package domain

// BindingKind declares where an unconnected (or overridden) port takes its
// value from.
type BindingKind int

const (
	// BindingLiteral binds the port to the number stored on the port itself.
	BindingLiteral BindingKind = iota

	// BindingConstant binds the port to a named constant resolved through
	// the caller-supplied ReferenceTable.
	BindingConstant

	// BindingVariable binds the port to a named variable resolved through
	// the caller-supplied ReferenceTable. Variables differ from constants
	// only in how the surrounding application manages them; the engine
	// resolves both through the same table.
	BindingVariable
)

// String returns the lowercase name of the binding kind.
func (k BindingKind) String() string {
	switch k {
	case BindingLiteral:
		return "literal"
	case BindingConstant:
		return "constant"
	case BindingVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// PortSetting is the per-port configuration a node carries: the binding
// that supplies the port's value while it is unconnected, and the override
// flag that forces the binding even while an upstream connection exists.
type PortSetting struct {
	// Binding selects how the port's standalone value is produced.
	Binding BindingKind

	// Literal is the number used when Binding is BindingLiteral.
	Literal float64

	// Ref names the constant or variable used for the named binding kinds.
	Ref string

	// Override forces a connected port to ignore its upstream value in
	// favor of the binding.
	Override bool
}

// ReferenceTable maps named constant and variable references to their
// current numeric values. The caller supplies it before port resolution;
// the engine only reads it.
type ReferenceTable map[string]float64

// ResolveBinding resolves the setting's binding to a plain number.
// Named references are looked up in refs; a missing reference reports
// false, which port resolution treats as an unavailable input.
func (p PortSetting) ResolveBinding(refs ReferenceTable) (float64, bool) {
	switch p.Binding {
	case BindingConstant, BindingVariable:
		v, ok := refs[p.Ref]
		return v, ok
	default:
		return p.Literal, true
	}
}

// Node is one operation instance in the user-authored graph. The engine
// reads nodes and never mutates them; ownership stays with the surrounding
// application, which mutates them incrementally between passes.
type Node struct {
	// ID is stable across passes and unique within the graph.
	ID string

	// Type names the operation, resolved through the block registry.
	Type string

	// Ports holds the per-port configuration keyed by port ID. A port with
	// no entry carries no binding and resolves to nothing while unconnected.
	Ports map[string]PortSetting

	// Data is the opaque per-node payload handed to the block's evaluate
	// function. Blocks define its shape; the engine never inspects it.
	Data map[string]any
}

// Edge is a directed connection from one node's output port to another
// node's input port. At most one edge may target a given (node, port) pair;
// the graph-mutation layer guarantees this and the evaluator assumes it.
type Edge struct {
	ID       string
	From     string
	FromPort string
	To       string
	ToPort   string
}

// Legacy node-data keys from the manual-value era, before per-port bindings
// existed. Stored graphs are never rewritten; the shape is adapted at the
// read boundary instead.
const (
	legacyManualValuesKey = "manualValues"
	legacyOverridesKey    = "overrides"
)

// EffectivePorts returns the node's port settings with any legacy
// manual-value data folded in. It is a pure adapter: node data is read,
// never rewritten, and explicit PortSetting entries win over legacy ones.
//
// The legacy shape stores numbers under Data["manualValues"] (port ID to
// number) and override flags under Data["overrides"] (port ID to bool).
func EffectivePorts(n Node) map[string]PortSetting {
	manual, manualOK := n.Data[legacyManualValuesKey].(map[string]any)
	overrides, overridesOK := n.Data[legacyOverridesKey].(map[string]any)
	if !manualOK && !overridesOK {
		return n.Ports
	}

	effective := make(map[string]PortSetting, len(n.Ports)+len(manual))
	if manualOK {
		for port, raw := range manual {
			num, ok := legacyNumber(raw)
			if !ok {
				continue
			}
			effective[port] = PortSetting{Binding: BindingLiteral, Literal: num}
		}
	}
	if overridesOK {
		for port, raw := range overrides {
			flag, ok := raw.(bool)
			if !ok || !flag {
				continue
			}
			setting := effective[port]
			setting.Override = true
			effective[port] = setting
		}
	}
	// Explicit settings take precedence over migrated legacy entries.
	for port, setting := range n.Ports {
		effective[port] = setting
	}
	return effective
}

// legacyNumber coerces the numeric types a decoded legacy document can
// carry for a manual value.
func legacyNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
