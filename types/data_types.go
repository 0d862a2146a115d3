package types

type DataType string

const (
	Null      DataType = "null"
	Int64     DataType = "integer"
	Float64   DataType = "number"
	String    DataType = "string"
	Bool      DataType = "boolean"
	Object    DataType = "object"
	Array     DataType = "array"
	Unknown   DataType = "unknown"
	Date      DataType = "date"      // calendar date without time of day
	Timestamp DataType = "timestamp" // date + time of day
)

// IsTextual reports whether values of this type are searched by the keyword filter
// when no explicit candidate columns are given.
func (d DataType) IsTextual() bool {
	return d == String
}

func (d DataType) IsTemporal() bool {
	return d == Date || d == Timestamp
}

func (d DataType) IsNumeric() bool {
	return d == Int64 || d == Float64
}

// Record is a single row of a dataset keyed by column name.
type Record map[string]any

// Get returns the value stored for key; absent keys and nil values both report ok=false.
func (r Record) Get(key string) (any, bool) {
	v, found := r[key]
	if !found || v == nil {
		return nil, false
	}
	return v, true
}
