package typeutils

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/types"
)

var timeType = reflect.TypeOf(time.Time{})

func TypeFromValue(v interface{}) types.DataType {
	if v == nil {
		return types.Null
	}

	switch val := v.(type) {
	case bool:
		return types.Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return types.Int64
	case float32, float64:
		return types.Float64
	case json.Number:
		// If the number is an integer then -> int64
		if _, err := val.Int64(); err == nil {
			return types.Int64
		}
		return types.Float64
	case string:
		return typeFromString(val)
	case []byte:
		return types.String
	case time.Time:
		return types.Timestamp
	case Date:
		return types.Date
	case []any:
		return types.Array
	case map[string]any:
		return types.Object
	}

	return typeFromValueReflect(v)
}

// typeFromString detects dates and timestamps written as strings.
// NOTE: a string in a known datetime layout is reported as temporal, never textual
func typeFromString(s string) types.DataType {
	trimmed := strings.TrimSpace(s)
	if _, err := time.Parse(constants.DateLayout, trimmed); err == nil {
		return types.Date
	}
	if _, err := parseStringTimestamp(trimmed); err == nil {
		return types.Timestamp
	}
	return types.String
}

// typeFromValueReflect handles types that require reflection
func typeFromValueReflect(v interface{}) types.DataType {
	valType := reflect.TypeOf(v)
	if valType == nil {
		return types.Null
	}
	// Handle pointers
	if valType.Kind() == reflect.Pointer {
		val := reflect.ValueOf(v)
		if val.IsNil() {
			return types.Null
		}
		return TypeFromValue(val.Elem().Interface())
	}

	switch valType.Kind() {
	case reflect.Bool:
		return types.Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return types.Int64
	case reflect.Float32, reflect.Float64:
		return types.Float64
	case reflect.String:
		return typeFromString(reflect.ValueOf(v).String())
	case reflect.Slice, reflect.Array:
		return types.Array
	case reflect.Map:
		return types.Object
	default:
		if valType == timeType {
			return types.Timestamp
		}
		return types.Unknown
	}
}

// InferSchema derives a schema for rows that carry no declared one. Columns keep
// the given order; keys missing from order are appended alphabetically. A column
// takes the type of its first non-null value; mixed types degrade to string, an
// all-null column stays null.
func InferSchema(order []string, rows []types.Record) types.Schema {
	seen := map[string]bool{}
	names := []string{}
	for _, name := range order {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	extra := []string{}
	for _, row := range rows {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				extra = append(extra, key)
			}
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	columns := make([]types.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, types.Column{Name: name, Type: inferColumnType(name, rows)})
	}
	return types.NewSchema(columns...)
}

func inferColumnType(column string, rows []types.Record) types.DataType {
	found := types.Null
	for _, row := range rows {
		typ := TypeFromValue(row[column])
		switch {
		case typ == types.Null:
			continue
		case found == types.Null:
			found = typ
		case found == typ:
		case found.IsTemporal() && typ.IsTemporal():
			found = types.Timestamp
		case found.IsNumeric() && typ.IsNumeric():
			found = types.Float64
		default:
			return types.String
		}
	}
	return found
}
