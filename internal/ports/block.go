// Package ports defines the contracts between the evaluation engine and
// the operation implementations it orchestrates.
// These interfaces enable dependency inversion and make the engine testable
// without a single real block.
package ports

import (
	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

// PortSpec describes one declared input port of a block.
// The engine resolves inputs positionally in the order the block declares
// its ports.
type PortSpec struct {
	// ID is the port identifier edges and bindings refer to.
	ID string

	// Label is the human-readable name shown by the canvas; the engine
	// carries it through without interpreting it.
	Label string
}

// Block is the per-operation-type descriptor the engine evaluates nodes
// through. Implementations are stateless: one Block instance serves every
// node of its type across every pass.
type Block interface {
	// Ports returns the block's input ports in declaration order.
	// The returned slice must be stable across calls; the engine builds
	// the positional input list from it on every evaluation.
	Ports() []PortSpec

	// Evaluate computes the block's output from its resolved inputs.
	// inputs[i] corresponds to Ports()[i]; a nil entry means the port's
	// value is unavailable (unconnected with no binding, or upstream
	// unreachable through a cycle). Each block decides by convention
	// whether a nil input is fatal to its own output.
	//
	// Evaluate must return a Value and never panic: domain-level failures
	// are reported as error Values, not panics or Go errors. The evaluator
	// nevertheless wraps every call in a recovery barrier as
	// defense-in-depth, converting a panic into an error Value so one
	// faulty operation cannot abort a pass.
	//
	// The node is read-only; Evaluate must not mutate it.
	Evaluate(inputs []*domain.Value, node domain.Node) domain.Value
}

// BlockRegistry resolves operation types to their Block descriptors.
// The engine validates only that a block exists for a node's type; a node
// with an unregistered type simply produces no result for the pass.
//
// Registries are explicit objects passed into the evaluator by reference.
// Registration normally happens once per process at startup, but nothing
// in the engine depends on global state.
type BlockRegistry interface {
	// Register binds an operation type to its block descriptor.
	// Register returns an error for an empty type, a nil block, or a type
	// that is already registered.
	Register(blockType string, block Block) error

	// Lookup returns the block for an operation type and true, or nil and
	// false when the type is not registered.
	Lookup(blockType string) (Block, bool)

	// Types returns all registered operation types in lexical order.
	Types() []string
}
