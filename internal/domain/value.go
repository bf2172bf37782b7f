// Package domain contains pure, dependency-free domain models and types
// for the dataflow evaluation engine.
package domain

import (
	"fmt"
	"math"
	"slices"
)

// Kind identifies the variant carried by a Value.
// Every consumer of a Value must switch exhaustively over Kind so that
// adding a new variant becomes a compile-visible change at each call site.
type Kind int

const (
	// KindScalar is a single floating-point number.
	// NaN and ±Inf are valid scalars, not engine errors.
	KindScalar Kind = iota

	// KindVector is an ordered sequence of numbers.
	KindVector

	// KindTable is a named-column matrix of numbers.
	KindTable

	// KindError is a failed computation carrying a human-readable message.
	// Error values flow downstream exactly like any other Value.
	KindError
)

// String returns the lowercase name of the kind for labels and debugging.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindTable:
		return "table"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the tagged union produced by every block evaluation.
// A Value is immutable once produced: constructors copy slice payloads in
// and accessors copy them out, so no holder of a Value can mutate the data
// seen by another holder.
type Value struct {
	kind    Kind
	scalar  float64
	vector  []float64
	columns []string
	rows    [][]float64
	message string
}

// Scalar returns a scalar Value.
// NaN and ±Inf are accepted as-is; the engine never special-cases them.
func Scalar(v float64) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Vector returns a vector Value holding a copy of elems.
func Vector(elems []float64) Value {
	return Value{kind: KindVector, vector: slices.Clone(elems)}
}

// TableOf returns a table Value holding copies of the column names and rows.
// Each row is expected to have one cell per column; the constructor does not
// re-verify this because tables are produced by blocks that build them
// column-wise.
func TableOf(columns []string, rows [][]float64) Value {
	copied := make([][]float64, len(rows))
	for i, row := range rows {
		copied[i] = slices.Clone(row)
	}
	return Value{kind: KindTable, columns: slices.Clone(columns), rows: copied}
}

// ErrorValue returns an error Value carrying the given message.
func ErrorValue(message string) Value {
	return Value{kind: KindError, message: message}
}

// Errorf returns an error Value with a formatted message.
func Errorf(format string, args ...any) Value {
	return ErrorValue(fmt.Sprintf(format, args...))
}

// Kind returns the variant tag of this Value.
func (v Value) Kind() Kind { return v.kind }

// IsScalar reports whether the Value is a scalar.
func (v Value) IsScalar() bool { return v.kind == KindScalar }

// IsVector reports whether the Value is a vector.
func (v Value) IsVector() bool { return v.kind == KindVector }

// IsTable reports whether the Value is a table.
func (v Value) IsTable() bool { return v.kind == KindTable }

// IsError reports whether the Value is an error.
func (v Value) IsError() bool { return v.kind == KindError }

// AsScalar returns the scalar payload and true, or zero and false when the
// Value is not a scalar.
func (v Value) AsScalar() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	return v.scalar, true
}

// AsVector returns a copy of the vector payload and true, or nil and false
// when the Value is not a vector.
func (v Value) AsVector() ([]float64, bool) {
	if v.kind != KindVector {
		return nil, false
	}
	return slices.Clone(v.vector), true
}

// AsTable returns copies of the column names and rows and true, or nils and
// false when the Value is not a table.
func (v Value) AsTable() ([]string, [][]float64, bool) {
	if v.kind != KindTable {
		return nil, nil, false
	}
	rows := make([][]float64, len(v.rows))
	for i, row := range v.rows {
		rows[i] = slices.Clone(row)
	}
	return slices.Clone(v.columns), rows, true
}

// ErrorMessage returns the message of an error Value, or the empty string
// for any other kind.
func (v Value) ErrorMessage() string {
	if v.kind != KindError {
		return ""
	}
	return v.message
}

// Equal reports whether two Values carry the same kind and payload.
// Scalar comparison treats NaN as equal to NaN so that repeated passes over
// the same graph compare as identical.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return scalarEqual(v.scalar, other.scalar)
	case KindVector:
		return slices.EqualFunc(v.vector, other.vector, scalarEqual)
	case KindTable:
		if !slices.Equal(v.columns, other.columns) {
			return false
		}
		return slices.EqualFunc(v.rows, other.rows, func(a, b []float64) bool {
			return slices.EqualFunc(a, b, scalarEqual)
		})
	case KindError:
		return v.message == other.message
	default:
		return false
	}
}

// String returns a locale-neutral rendering for debugging and logs.
func (v Value) String() string { return FormatValueNeutral(v) }

func scalarEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
