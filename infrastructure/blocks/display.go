package blocks

import (
	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// DisplayBlock is a pass-through sink: it forwards whatever reaches its
// "value" port so the node's own result is the value being shown. The
// engine has no display side effects; presentation layers read the result
// map and format it with the locale helpers.
type DisplayBlock struct{}

// NewDisplayBlock creates a display block.
func NewDisplayBlock() *DisplayBlock { return &DisplayBlock{} }

func (b *DisplayBlock) Ports() []ports.PortSpec {
	return []ports.PortSpec{{ID: "value", Label: "Value"}}
}

func (b *DisplayBlock) Evaluate(inputs []*domain.Value, _ domain.Node) domain.Value {
	if inputs[0] == nil {
		return domain.ErrorValue("nothing connected to display")
	}
	return *inputs[0]
}
