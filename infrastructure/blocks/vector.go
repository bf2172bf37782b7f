package blocks

import (
	"math"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// maxRangeLength bounds generated ranges so a careless step cannot
// allocate unbounded memory inside a synchronous pass.
const maxRangeLength = 1_000_000

// RangeBlock generates an arithmetic sequence [start, stop) with the
// given step.
type RangeBlock struct{}

// NewRangeBlock creates a range generator block.
func NewRangeBlock() *RangeBlock { return &RangeBlock{} }

func (b *RangeBlock) Ports() []ports.PortSpec {
	return []ports.PortSpec{
		{ID: "start", Label: "Start"},
		{ID: "stop", Label: "Stop"},
		{ID: "step", Label: "Step"},
	}
}

func (b *RangeBlock) Evaluate(inputs []*domain.Value, _ domain.Node) domain.Value {
	start, errv, ok := scalarInput(inputs, "start", 0)
	if !ok {
		return errv
	}
	stop, errv, ok := scalarInput(inputs, "stop", 1)
	if !ok {
		return errv
	}
	step, errv, ok := scalarInput(inputs, "step", 2)
	if !ok {
		return errv
	}

	if step == 0 {
		return domain.ErrorValue("range step cannot be zero")
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsNaN(step) ||
		math.IsInf(start, 0) || math.IsInf(stop, 0) || math.IsInf(step, 0) {
		return domain.ErrorValue("range bounds must be finite")
	}

	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	if n > maxRangeLength {
		return domain.Errorf("range would produce %d elements (limit %d)", n, maxRangeLength)
	}

	elems := make([]float64, n)
	for i := range elems {
		elems[i] = start + float64(i)*step
	}
	return domain.Vector(elems)
}

// vectorReduceBlock collapses a vector to a scalar.
type vectorReduceBlock struct {
	reduce func(elems []float64) domain.Value
}

func (b *vectorReduceBlock) Ports() []ports.PortSpec {
	return []ports.PortSpec{{ID: "vector", Label: "Vector"}}
}

func (b *vectorReduceBlock) Evaluate(inputs []*domain.Value, _ domain.Node) domain.Value {
	elems, errv, ok := vectorInput(inputs, "vector", 0)
	if !ok {
		return errv
	}
	return b.reduce(elems)
}

// NewSumBlock creates a block summing the elements of a vector. The sum
// of an empty vector is zero.
func NewSumBlock() ports.Block {
	return &vectorReduceBlock{reduce: func(elems []float64) domain.Value {
		total := 0.0
		for _, e := range elems {
			total += e
		}
		return domain.Scalar(total)
	}}
}

// NewMeanBlock creates a block computing the arithmetic mean of a vector.
func NewMeanBlock() ports.Block {
	return &vectorReduceBlock{reduce: func(elems []float64) domain.Value {
		if len(elems) == 0 {
			return domain.ErrorValue("mean of empty vector")
		}
		total := 0.0
		for _, e := range elems {
			total += e
		}
		return domain.Scalar(total / float64(len(elems)))
	}}
}

// NewLengthBlock creates a block reporting the element count of a vector.
func NewLengthBlock() ports.Block {
	return &vectorReduceBlock{reduce: func(elems []float64) domain.Value {
		return domain.Scalar(float64(len(elems)))
	}}
}

// ScaleBlock multiplies every element of a vector by a scalar factor.
type ScaleBlock struct{}

// NewScaleBlock creates a vector scaling block.
func NewScaleBlock() *ScaleBlock { return &ScaleBlock{} }

func (b *ScaleBlock) Ports() []ports.PortSpec {
	return []ports.PortSpec{
		{ID: "vector", Label: "Vector"},
		{ID: "factor", Label: "Factor"},
	}
}

func (b *ScaleBlock) Evaluate(inputs []*domain.Value, _ domain.Node) domain.Value {
	elems, errv, ok := vectorInput(inputs, "vector", 0)
	if !ok {
		return errv
	}
	factor, errv, ok := scalarInput(inputs, "factor", 1)
	if !ok {
		return errv
	}

	scaled := make([]float64, len(elems))
	for i, e := range elems {
		scaled[i] = e * factor
	}
	return domain.Vector(scaled)
}
