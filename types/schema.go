package types

import "fmt"

type Column struct {
	Name string   `json:"name"`
	Type DataType `json:"type"`
}

// Schema is the fixed, ordered column list of a dataset.
type Schema struct {
	Columns []Column `json:"columns"`
}

func NewSchema(columns ...Column) Schema {
	return Schema{Columns: append([]Column(nil), columns...)}
}

func (s Schema) Has(column string) bool {
	return s.Index(column) >= 0
}

// Index returns the position of column or -1 when the schema lacks it.
func (s Schema) Index(column string) int {
	for i, c := range s.Columns {
		if c.Name == column {
			return i
		}
	}
	return -1
}

func (s Schema) Type(column string) (DataType, error) {
	idx := s.Index(column)
	if idx < 0 {
		return Unknown, fmt.Errorf("%w: [%s]", ErrColumnNotFound, column)
	}
	return s.Columns[idx].Type, nil
}

func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// TextualColumns returns the names of all string typed columns in schema order.
func (s Schema) TextualColumns() []string {
	names := []string{}
	for _, c := range s.Columns {
		if c.Type.IsTextual() {
			names = append(names, c.Name)
		}
	}
	return names
}

// Select keeps the given columns that exist in the schema, preserving the requested order.
func (s Schema) Select(columns ...string) []string {
	selected := make([]string, 0, len(columns))
	for _, c := range columns {
		if s.Has(c) {
			selected = append(selected, c)
		}
	}
	return selected
}
