package types

import (
	"fmt"
	"time"

	"github.com/mitchellh/hashstructure"
)

// Dataset is an ordered, read-only sequence of records sharing one schema.
//
// Operations that narrow a dataset return a new Dataset and never touch the
// receiver; the records themselves are shared, so callers must not mutate a
// Record obtained from a dataset.
type Dataset struct {
	kind   Kind
	schema Schema
	rows   []Record
}

func NewDataset(kind Kind, schema Schema, rows []Record) Dataset {
	return Dataset{
		kind:   kind,
		schema: schema,
		rows:   append([]Record(nil), rows...),
	}
}

func (d Dataset) Kind() Kind {
	return d.kind
}

func (d Dataset) Schema() Schema {
	return d.schema
}

func (d Dataset) Len() int {
	return len(d.rows)
}

func (d Dataset) Empty() bool {
	return len(d.rows) == 0
}

// Rows returns a copy of the row slice.
func (d Dataset) Rows() []Record {
	return append([]Record(nil), d.rows...)
}

func (d Dataset) Row(idx int) (Record, error) {
	if idx < 0 || idx >= len(d.rows) {
		return nil, fmt.Errorf("%w: %d (rows: %d)", ErrRowOutOfRange, idx, len(d.rows))
	}
	return d.rows[idx], nil
}

// Column returns every row's value for column, nil where the row lacks it.
func (d Dataset) Column(column string) []any {
	values := make([]any, len(d.rows))
	for i, row := range d.rows {
		values[i] = row[column]
	}
	return values
}

// WithRows returns a dataset with the same kind and schema holding rows.
func (d Dataset) WithRows(rows []Record) Dataset {
	return NewDataset(d.kind, d.schema, rows)
}

// Where keeps the rows for which keep returns true, preserving their relative order.
func (d Dataset) Where(keep func(Record) bool) Dataset {
	kept := make([]Record, 0, len(d.rows))
	for _, row := range d.rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	return Dataset{kind: d.kind, schema: d.schema, rows: kept}
}

// Fingerprint hashes schema and row contents; equal datasets share a fingerprint.
func (d Dataset) Fingerprint() (uint64, error) {
	rows := make([][]string, len(d.rows))
	for i, row := range d.rows {
		cells := make([]string, len(d.schema.Columns))
		for j, col := range d.schema.Columns {
			cells[j] = fingerprintValue(row[col.Name])
		}
		rows[i] = cells
	}

	return hashstructure.Hash(struct {
		Kind    Kind
		Columns []Column
		Rows    [][]string
	}{d.kind, d.schema.Columns, rows}, nil)
}

func fingerprintValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%T:%v", v, v)
	}
}
