package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDisplayElems caps how many vector elements a display rendering shows
// before eliding the rest. Export paths are never truncated.
const maxDisplayElems = 8

// FormatValue renders a Value for on-screen display in the given locale.
// Number formatting (decimal separators, digit grouping) follows the locale;
// non-finite scalars render as fixed markers since the UI flags them
// visually rather than localizing them.
func FormatValue(v Value, tag language.Tag) string {
	p := message.NewPrinter(tag)
	switch v.Kind() {
	case KindScalar:
		s, _ := v.AsScalar()
		return formatScalarLocale(p, s)
	case KindVector:
		elems, _ := v.AsVector()
		shown := elems
		elided := false
		if len(shown) > maxDisplayElems {
			shown = shown[:maxDisplayElems]
			elided = true
		}
		parts := make([]string, len(shown))
		for i, e := range shown {
			parts[i] = formatScalarLocale(p, e)
		}
		if elided {
			return p.Sprintf("[%s, … %d more]", strings.Join(parts, ", "), len(elems)-maxDisplayElems)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindTable:
		columns, rows, _ := v.AsTable()
		return p.Sprintf("table(%s) × %d rows", strings.Join(columns, ", "), len(rows))
	case KindError:
		return "error: " + v.ErrorMessage()
	default:
		return fmt.Sprintf("unknown value kind %d", int(v.Kind()))
	}
}

// FormatValueNeutral renders a Value in a fixed, locale-neutral format for
// machine export paths such as CSV and JSON: '.' decimal separator, no digit
// grouping, shortest round-trip representation.
func FormatValueNeutral(v Value) string {
	switch v.Kind() {
	case KindScalar:
		s, _ := v.AsScalar()
		return formatScalarNeutral(s)
	case KindVector:
		elems, _ := v.AsVector()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = formatScalarNeutral(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindTable:
		columns, rows, _ := v.AsTable()
		return fmt.Sprintf("table(%s)x%d", strings.Join(columns, ","), len(rows))
	case KindError:
		return "error: " + v.ErrorMessage()
	default:
		return fmt.Sprintf("unknown value kind %d", int(v.Kind()))
	}
}

// TableCSV renders a table Value as locale-neutral CSV with a header row.
// It reports false when the Value is not a table.
func TableCSV(v Value) (string, bool) {
	columns, rows, ok := v.AsTable()
	if !ok {
		return "", false
	}
	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))
	b.WriteByte('\n')
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatScalarNeutral(cell))
		}
		b.WriteByte('\n')
	}
	return b.String(), true
}

func formatScalarLocale(p *message.Printer, s float64) string {
	// The locale machinery has no sensible rendering for non-finite values.
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return formatScalarNeutral(s)
	}
	return p.Sprint(number.Decimal(s, number.MaxFractionDigits(9)))
}

func formatScalarNeutral(s float64) string {
	return strconv.FormatFloat(s, 'g', -1, 64)
}
