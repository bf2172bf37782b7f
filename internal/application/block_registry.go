// Package application implements the evaluation engine: topology building,
// deterministic scheduling, port resolution, and pass execution over the
// domain graph model.
package application

import (
	"fmt"
	"sort"
	"sync"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// Verify interface compliance at compile time.
var _ ports.BlockRegistry = (*BlockRegistry)(nil)

// BlockRegistry is the default ports.BlockRegistry implementation: a
// thread-safe map from operation type to block descriptor.
// It is an explicit object constructed once and passed by reference into
// the evaluator, so there is no hidden global registration state.
type BlockRegistry struct {
	// mu protects concurrent access to the blocks map. Registration
	// normally finishes before the first pass, but nothing enforces that.
	mu sync.RWMutex
	// blocks maps operation type strings to their descriptors.
	blocks map[string]ports.Block
}

// NewBlockRegistry creates an empty block registry.
// Callers register their catalog once at startup, typically through
// blocks.RegisterBuiltins plus any application-specific types.
func NewBlockRegistry() *BlockRegistry {
	return &BlockRegistry{blocks: make(map[string]ports.Block)}
}

// Register binds an operation type to its block descriptor.
// Register returns an error for an empty type, a nil block, or a type
// registered before; registration is once per process by convention and
// silently replacing a descriptor would change graph semantics mid-flight.
func (r *BlockRegistry) Register(blockType string, block ports.Block) error {
	if blockType == "" {
		return domain.ErrEmptyBlockType
	}
	if block == nil {
		return domain.ErrNilBlock
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blocks[blockType]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateBlockType, blockType)
	}

	r.blocks[blockType] = block
	return nil
}

// Lookup returns the block registered for the operation type.
func (r *BlockRegistry) Lookup(blockType string) (ports.Block, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	block, ok := r.blocks[blockType]
	return block, ok
}

// Types returns all registered operation types in lexical order.
// Useful for catalog introspection and validation tooling.
func (r *BlockRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.blocks))
	for blockType := range r.blocks {
		types = append(types, blockType)
	}
	sort.Strings(types)
	return types
}
