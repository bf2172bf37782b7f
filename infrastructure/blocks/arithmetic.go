package blocks

import (
	"math"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// NumberBlock is the canonical source block. Its single "value" port is
// meant to carry a binding rather than a connection, so the node's
// configured number flows in through port resolution like any other input.
type NumberBlock struct{}

// NewNumberBlock creates a numeric source block.
func NewNumberBlock() *NumberBlock { return &NumberBlock{} }

func (b *NumberBlock) Ports() []ports.PortSpec {
	return []ports.PortSpec{{ID: "value", Label: "Value"}}
}

func (b *NumberBlock) Evaluate(inputs []*domain.Value, _ domain.Node) domain.Value {
	if inputs[0] == nil {
		return domain.ErrorValue("value is not set")
	}
	return *inputs[0]
}

// unaryBlock applies a scalar function to its single input.
type unaryBlock struct {
	apply func(x float64) domain.Value
}

func (b *unaryBlock) Ports() []ports.PortSpec {
	return []ports.PortSpec{{ID: "x", Label: "X"}}
}

func (b *unaryBlock) Evaluate(inputs []*domain.Value, _ domain.Node) domain.Value {
	x, errv, ok := scalarInput(inputs, "x", 0)
	if !ok {
		return errv
	}
	return b.apply(x)
}

// binaryBlock applies a scalar function to its two inputs.
type binaryBlock struct {
	apply func(a, b float64) domain.Value
}

func (b *binaryBlock) Ports() []ports.PortSpec {
	return []ports.PortSpec{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}
}

func (b *binaryBlock) Evaluate(inputs []*domain.Value, _ domain.Node) domain.Value {
	a, errv, ok := scalarInput(inputs, "a", 0)
	if !ok {
		return errv
	}
	bv, errv, ok := scalarInput(inputs, "b", 1)
	if !ok {
		return errv
	}
	return b.apply(a, bv)
}

// NewAddBlock creates a block computing a + b.
func NewAddBlock() ports.Block {
	return &binaryBlock{apply: func(a, b float64) domain.Value {
		return domain.Scalar(a + b)
	}}
}

// NewSubtractBlock creates a block computing a - b.
func NewSubtractBlock() ports.Block {
	return &binaryBlock{apply: func(a, b float64) domain.Value {
		return domain.Scalar(a - b)
	}}
}

// NewMultiplyBlock creates a block computing a * b.
func NewMultiplyBlock() ports.Block {
	return &binaryBlock{apply: func(a, b float64) domain.Value {
		return domain.Scalar(a * b)
	}}
}

// NewDivideBlock creates a block computing a / b. Division by zero is a
// domain error, not an infinity, so downstream consumers see an explicit
// failure instead of a silently useless number.
func NewDivideBlock() ports.Block {
	return &binaryBlock{apply: func(a, b float64) domain.Value {
		if b == 0 {
			return domain.ErrorValue("division by zero")
		}
		return domain.Scalar(a / b)
	}}
}

// NewPowerBlock creates a block computing a raised to b.
func NewPowerBlock() ports.Block {
	return &binaryBlock{apply: func(a, b float64) domain.Value {
		return domain.Scalar(math.Pow(a, b))
	}}
}

// NewMinimumBlock creates a block computing the smaller of a and b.
func NewMinimumBlock() ports.Block {
	return &binaryBlock{apply: func(a, b float64) domain.Value {
		return domain.Scalar(math.Min(a, b))
	}}
}

// NewMaximumBlock creates a block computing the larger of a and b.
func NewMaximumBlock() ports.Block {
	return &binaryBlock{apply: func(a, b float64) domain.Value {
		return domain.Scalar(math.Max(a, b))
	}}
}

// NewNegateBlock creates a block computing -x.
func NewNegateBlock() ports.Block {
	return &unaryBlock{apply: func(x float64) domain.Value {
		return domain.Scalar(-x)
	}}
}

// NewAbsoluteBlock creates a block computing |x|.
func NewAbsoluteBlock() ports.Block {
	return &unaryBlock{apply: func(x float64) domain.Value {
		return domain.Scalar(math.Abs(x))
	}}
}
