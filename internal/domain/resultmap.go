package domain

import (
	"fmt"
	"maps"
	"slices"
)

// ResultMap is the sole output of one evaluation pass: node ID to the Value
// the node produced. A node inside a cycle (or reachable only through one)
// never receives an entry, which downstream consumers treat exactly like a
// not-yet-connected input.
//
// A ResultMap is an immutable snapshot. It is rebuilt from scratch every
// pass; values from two different passes must never be mixed.
type ResultMap struct {
	values map[string]Value
}

// NewResultMap freezes the given values into a ResultMap snapshot.
// The map is copied, so the caller's map remains free to reuse.
func NewResultMap(values map[string]Value) ResultMap {
	return ResultMap{values: maps.Clone(values)}
}

// Value returns the Value recorded for the node and true, or the zero Value
// and false when the node has no entry this pass.
func (m ResultMap) Value(nodeID string) (Value, bool) {
	v, ok := m.values[nodeID]
	return v, ok
}

// Has reports whether the node received a Value this pass.
func (m ResultMap) Has(nodeID string) bool {
	_, ok := m.values[nodeID]
	return ok
}

// Len returns the number of nodes that resolved this pass.
func (m ResultMap) Len() int { return len(m.values) }

// NodeIDs returns the resolved node IDs in lexical order.
// The slice is freshly allocated and safe to modify.
func (m ResultMap) NodeIDs() []string {
	ids := make([]string, 0, len(m.values))
	for id := range m.values {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Equal reports whether two snapshots contain the same entries.
func (m ResultMap) Equal(other ResultMap) bool {
	if len(m.values) != len(other.values) {
		return false
	}
	for id, v := range m.values {
		ov, ok := other.values[id]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String returns a compact debug rendering of the snapshot.
func (m ResultMap) String() string {
	return fmt.Sprintf("ResultMap(%d nodes)", len(m.values))
}
