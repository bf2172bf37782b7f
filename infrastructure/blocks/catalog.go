package blocks

import (
	"fmt"

	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// RegisterBuiltins registers the full built-in catalog on the given
// registry. Registration fails on the first conflicting type, so callers
// composing custom catalogs should register their own blocks afterwards
// under distinct type names.
func RegisterBuiltins(r ports.BlockRegistry) error {
	builtins := map[string]ports.Block{
		"number":   NewNumberBlock(),
		"display":  NewDisplayBlock(),
		"add":      NewAddBlock(),
		"subtract": NewSubtractBlock(),
		"multiply": NewMultiplyBlock(),
		"divide":   NewDivideBlock(),
		"negate":   NewNegateBlock(),
		"absolute": NewAbsoluteBlock(),
		"power":    NewPowerBlock(),
		"minimum":  NewMinimumBlock(),
		"maximum":  NewMaximumBlock(),
		"range":    NewRangeBlock(),
		"sum":      NewSumBlock(),
		"mean":     NewMeanBlock(),
		"length":   NewLengthBlock(),
		"scale":    NewScaleBlock(),
		"table":    NewTableBlock(),
		"column":   NewColumnBlock(),
	}

	for blockType, block := range builtins {
		if err := r.Register(blockType, block); err != nil {
			return fmt.Errorf("failed to register builtin %q: %w", blockType, err)
		}
	}
	return nil
}
