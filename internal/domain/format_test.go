package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatValueNeutral(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "integer scalar", value: Scalar(7), want: "7"},
		{name: "fractional scalar uses point separator", value: Scalar(3.5), want: "3.5"},
		{name: "NaN scalar", value: Scalar(math.NaN()), want: "NaN"},
		{name: "positive infinity", value: Scalar(math.Inf(1)), want: "+Inf"},
		{name: "negative infinity", value: Scalar(math.Inf(-1)), want: "-Inf"},
		{name: "vector", value: Vector([]float64{1, 2.5, 3}), want: "[1,2.5,3]"},
		{name: "empty vector", value: Vector(nil), want: "[]"},
		{name: "table", value: TableOf([]string{"x", "y"}, [][]float64{{1, 2}, {3, 4}}), want: "table(x,y)x2"},
		{name: "error", value: ErrorValue("division by zero"), want: "error: division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValueNeutral(tt.value))
		})
	}
}

func TestFormatValue_LocaleAware(t *testing.T) {
	// German locale uses ',' as the decimal separator.
	german := FormatValue(Scalar(3.5), language.German)
	assert.Equal(t, "3,5", german)

	english := FormatValue(Scalar(3.5), language.English)
	assert.Equal(t, "3.5", english)
}

func TestFormatValue_NonFiniteStaysNeutral(t *testing.T) {
	// Non-finite markers are never localized; the UI flags them visually.
	assert.Equal(t, "NaN", FormatValue(Scalar(math.NaN()), language.German))
	assert.Equal(t, "+Inf", FormatValue(Scalar(math.Inf(1)), language.French))
}

func TestFormatValue_VectorElision(t *testing.T) {
	long := make([]float64, 12)
	for i := range long {
		long[i] = float64(i)
	}
	got := FormatValue(Vector(long), language.English)
	assert.Contains(t, got, "4 more")

	short := FormatValue(Vector([]float64{1, 2}), language.English)
	assert.Equal(t, "[1, 2]", short)
}

func TestFormatValue_Error(t *testing.T) {
	got := FormatValue(ErrorValue("bad input"), language.English)
	assert.Equal(t, "error: bad input", got)
}

func TestTableCSV(t *testing.T) {
	v := TableOf([]string{"x", "y"}, [][]float64{{1, 2.5}, {3, 4}})

	csv, ok := TableCSV(v)
	require.True(t, ok)
	assert.Equal(t, "x,y\n1,2.5\n3,4\n", csv)

	_, ok = TableCSV(Scalar(1))
	assert.False(t, ok)
}
