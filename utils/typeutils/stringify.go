package typeutils

import (
	"fmt"
	"reflect"
	"time"

	"github.com/goccy/go-json"
	"github.com/songminj/logtrack/constants"
)

// Stringify renders a cell value as plain text. Nil (including typed nil
// pointers) renders as the empty string, timestamps use constants.TimestampLayout
// and nested objects/arrays are JSON encoded.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(constants.TimestampLayout)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(constants.TimestampLayout)
	case Date:
		return val.String()
	case map[string]any, []any:
		s, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(s)
	case fmt.Stringer:
		if isNilPointer(v) {
			return ""
		}
		return val.String()
	}

	if isNilPointer(v) {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return Stringify(rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
