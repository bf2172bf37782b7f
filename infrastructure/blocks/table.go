package blocks

import (
	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// tableColumnPorts are the fixed input slots of a table block. Only
// connected slots become columns; the rest are simply absent.
var tableColumnPorts = []ports.PortSpec{
	{ID: "c1", Label: "Column 1"},
	{ID: "c2", Label: "Column 2"},
	{ID: "c3", Label: "Column 3"},
	{ID: "c4", Label: "Column 4"},
}

// TableBlock assembles equally sized column vectors into a table. Column
// names come from the node's "columns" data entry when present, falling
// back to the port IDs.
type TableBlock struct{}

// NewTableBlock creates a table assembly block.
func NewTableBlock() *TableBlock { return &TableBlock{} }

func (b *TableBlock) Ports() []ports.PortSpec { return tableColumnPorts }

func (b *TableBlock) Evaluate(inputs []*domain.Value, node domain.Node) domain.Value {
	names := columnNames(node)

	var columns []string
	var vectors [][]float64
	for i, in := range inputs {
		if in == nil {
			continue
		}
		elems, errv, ok := vectorInput(inputs, tableColumnPorts[i].ID, i)
		if !ok {
			return errv
		}
		name := tableColumnPorts[i].ID
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		columns = append(columns, name)
		vectors = append(vectors, elems)
	}

	if len(vectors) == 0 {
		return domain.ErrorValue("no columns connected")
	}
	rowCount := len(vectors[0])
	for _, vec := range vectors {
		if len(vec) != rowCount {
			return domain.ErrorValue("columns must have equal length")
		}
	}

	rows := make([][]float64, rowCount)
	for r := range rows {
		row := make([]float64, len(vectors))
		for c, vec := range vectors {
			row[c] = vec[r]
		}
		rows[r] = row
	}
	return domain.TableOf(columns, rows)
}

// columnNames reads the optional "columns" list from node data. Entries
// may arrive as []string or, after YAML decoding, as []any.
func columnNames(node domain.Node) []string {
	raw, ok := node.Data["columns"]
	if !ok {
		return nil
	}
	switch list := raw.(type) {
	case []string:
		return list
	case []any:
		names := make([]string, len(list))
		for i, entry := range list {
			if s, ok := entry.(string); ok {
				names[i] = s
			}
		}
		return names
	default:
		return nil
	}
}

// ColumnBlock extracts one named column from a table as a vector. The
// column name comes from the node's "column" data entry.
type ColumnBlock struct{}

// NewColumnBlock creates a column extraction block.
func NewColumnBlock() *ColumnBlock { return &ColumnBlock{} }

func (b *ColumnBlock) Ports() []ports.PortSpec {
	return []ports.PortSpec{{ID: "table", Label: "Table"}}
}

func (b *ColumnBlock) Evaluate(inputs []*domain.Value, node domain.Node) domain.Value {
	in := inputs[0]
	if in == nil {
		return domain.ErrorValue(`input "table" is not connected`)
	}
	if in.IsError() {
		return *in
	}
	columns, rows, ok := in.AsTable()
	if !ok {
		return domain.Errorf(`input "table" expects a table, got %s`, in.Kind())
	}

	name, _ := node.Data["column"].(string)
	if name == "" {
		return domain.ErrorValue("column name is not configured")
	}

	idx := -1
	for i, col := range columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Errorf("table has no column %q", name)
	}

	elems := make([]float64, len(rows))
	for r, row := range rows {
		elems[r] = row[idx]
	}
	return domain.Vector(elems)
}
