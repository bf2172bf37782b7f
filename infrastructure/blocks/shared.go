// Package blocks provides the built-in operation catalog for the
// evaluation engine: numeric sources, scalar arithmetic, vector
// operations, and table assembly. Every block follows the same contract:
// inputs arrive as resolved values (nil when unavailable), errors come
// back as error Values, and Evaluate never panics.
package blocks

import (
	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

// scalarInput extracts a scalar from a resolved input slot. The returned
// Value is meaningful only when ok is false: it is the error Value the
// block should return in place of a result. Error inputs propagate
// unchanged so the first failure in a chain surfaces at every dependent.
func scalarInput(inputs []*domain.Value, port string, idx int) (float64, domain.Value, bool) {
	in := inputs[idx]
	if in == nil {
		return 0, domain.Errorf("input %q is not connected", port), false
	}
	if in.IsError() {
		return 0, *in, false
	}
	s, ok := in.AsScalar()
	if !ok {
		return 0, domain.Errorf("input %q expects a number, got %s", port, in.Kind()), false
	}
	return s, domain.Value{}, true
}

// vectorInput extracts a vector from a resolved input slot, with the same
// ok/error contract as scalarInput.
func vectorInput(inputs []*domain.Value, port string, idx int) ([]float64, domain.Value, bool) {
	in := inputs[idx]
	if in == nil {
		return nil, domain.Errorf("input %q is not connected", port), false
	}
	if in.IsError() {
		return nil, *in, false
	}
	vec, ok := in.AsVector()
	if !ok {
		return nil, domain.Errorf("input %q expects a vector, got %s", port, in.Kind()), false
	}
	return vec, domain.Value{}, true
}
