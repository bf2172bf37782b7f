package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur while assembling graphs and
// registries for evaluation.
var (
	// ErrEmptyBlockType indicates that a block registration used an empty
	// operation type.
	ErrEmptyBlockType = errors.New("block type cannot be empty")

	// ErrNilBlock indicates that a nil block was offered for registration.
	ErrNilBlock = errors.New("block cannot be nil")

	// ErrDuplicateBlockType indicates that an operation type was registered
	// more than once in the same registry.
	ErrDuplicateBlockType = errors.New("block type already registered")

	// ErrInvalidDocument indicates that a graph document failed validation.
	ErrInvalidDocument = errors.New("invalid graph document")
)

// DocumentError collects the validation failures found in one graph
// document entity, such as a node or an edge.
type DocumentError struct {
	// Entity names the document element that failed validation.
	Entity string

	// Errors contains the individual validation failure messages.
	Errors []string
}

// Error implements the error interface for DocumentError.
func (e *DocumentError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("document error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("document errors for %s: %v", e.Entity, e.Errors)
}

// Unwrap marks every DocumentError as an ErrInvalidDocument so callers can
// match the whole class with errors.Is.
func (e *DocumentError) Unwrap() error { return ErrInvalidDocument }

// AddError appends a validation failure message.
func (e *DocumentError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors reports whether any failures were recorded.
func (e *DocumentError) HasErrors() bool { return len(e.Errors) > 0 }

// NewDocumentError creates an empty DocumentError for the given entity.
func NewDocumentError(entity string) *DocumentError {
	return &DocumentError{Entity: entity, Errors: make([]string, 0)}
}
