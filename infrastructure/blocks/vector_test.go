package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

func TestRangeBlock(t *testing.T) {
	block := NewRangeBlock()

	tests := []struct {
		name              string
		start, stop, step float64
		want              []float64
		wantMsg           string
	}{
		{
			name: "ascending", start: 0, stop: 5, step: 1,
			want: []float64{0, 1, 2, 3, 4},
		},
		{
			name: "fractional step", start: 1, stop: 2, step: 0.5,
			want: []float64{1, 1.5},
		},
		{
			name: "descending", start: 3, stop: 0, step: -1,
			want: []float64{3, 2, 1},
		},
		{
			name: "empty when step points away", start: 0, stop: 5, step: -1,
			want: []float64{},
		},
		{
			name: "zero step", start: 0, stop: 5, step: 0,
			wantMsg: "range step cannot be zero",
		},
		{
			name: "infinite bound", start: 0, stop: 5, step: 1e-308,
			wantMsg: "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := block.Evaluate([]*domain.Value{
				vp(domain.Scalar(tt.start)),
				vp(domain.Scalar(tt.stop)),
				vp(domain.Scalar(tt.step)),
			}, domain.Node{})

			if tt.wantMsg != "" {
				require.True(t, got.IsError(), "got %v", got)
				assert.Contains(t, got.ErrorMessage(), tt.wantMsg)
				return
			}
			elems, ok := got.AsVector()
			require.True(t, ok, "got %v", got)
			assert.Equal(t, tt.want, elems)
		})
	}
}

func TestVectorReduceBlocks(t *testing.T) {
	input := vp(domain.Vector([]float64{2, 4, 6}))

	got := NewSumBlock().Evaluate([]*domain.Value{input}, domain.Node{})
	assert.True(t, got.Equal(domain.Scalar(12)))

	got = NewMeanBlock().Evaluate([]*domain.Value{input}, domain.Node{})
	assert.True(t, got.Equal(domain.Scalar(4)))

	got = NewLengthBlock().Evaluate([]*domain.Value{input}, domain.Node{})
	assert.True(t, got.Equal(domain.Scalar(3)))
}

func TestVectorReduceBlocks_EmptyVector(t *testing.T) {
	input := vp(domain.Vector(nil))

	got := NewSumBlock().Evaluate([]*domain.Value{input}, domain.Node{})
	assert.True(t, got.Equal(domain.Scalar(0)))

	got = NewLengthBlock().Evaluate([]*domain.Value{input}, domain.Node{})
	assert.True(t, got.Equal(domain.Scalar(0)))

	got = NewMeanBlock().Evaluate([]*domain.Value{input}, domain.Node{})
	require.True(t, got.IsError())
	assert.Equal(t, "mean of empty vector", got.ErrorMessage())
}

func TestVectorReduceBlocks_RejectScalar(t *testing.T) {
	got := NewSumBlock().Evaluate([]*domain.Value{vp(domain.Scalar(1))}, domain.Node{})
	require.True(t, got.IsError())
	assert.Equal(t, `input "vector" expects a vector, got scalar`, got.ErrorMessage())
}

func TestScaleBlock(t *testing.T) {
	got := NewScaleBlock().Evaluate([]*domain.Value{
		vp(domain.Vector([]float64{1, -2, 3})),
		vp(domain.Scalar(2)),
	}, domain.Node{})

	elems, ok := got.AsVector()
	require.True(t, ok)
	assert.Equal(t, []float64{2, -4, 6}, elems)
}

func TestScaleBlock_PropagatesUpstreamError(t *testing.T) {
	got := NewScaleBlock().Evaluate([]*domain.Value{
		vp(domain.ErrorValue("bad range")),
		vp(domain.Scalar(2)),
	}, domain.Node{})

	require.True(t, got.IsError())
	assert.Equal(t, "bad range", got.ErrorMessage())
}
