package typeutils

import (
	"math"
	"reflect"
	"strings"
	"time"
)

// return 0 for equal, -1 if a < b else 1 if a>b
// nil sorts before every value; values of unrelated types are compared by their
// stringified form.
func Compare(a, b any) int {
	// Handle nil cases first
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	// a timestamp on either side makes the other side parse as one, so the
	// order does not depend on argument position
	if bTime, ok := b.(time.Time); ok {
		if _, isTime := a.(time.Time); !isTime {
			if aTime, err := ReformatDate(a); err == nil {
				return aTime.Compare(bTime)
			}
			return strings.Compare(Stringify(a), Stringify(b))
		}
	}

	switch aVal := a.(type) {
	case uint, uint8, uint16, uint32, uint64:
		if !isKind(b, reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64) {
			break
		}
		aUint := reflect.ValueOf(a).Convert(reflect.TypeFor[uint64]()).Uint()
		bUint := reflect.ValueOf(b).Convert(reflect.TypeFor[uint64]()).Uint()
		if aUint < bUint {
			return -1
		} else if aUint > bUint {
			return 1
		}
		return 0
	case int, int8, int16, int32, int64:
		if !isKind(b, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64) {
			break
		}
		aInt := reflect.ValueOf(a).Convert(reflect.TypeFor[int64]()).Int()
		bInt := reflect.ValueOf(b).Convert(reflect.TypeFor[int64]()).Int()
		if aInt < bInt {
			return -1
		} else if aInt > bInt {
			return 1
		}
		return 0
	case float32, float64:
		if !isKind(b, reflect.Float32, reflect.Float64) {
			break
		}
		aFloat := reflect.ValueOf(a).Convert(reflect.TypeFor[float64]()).Float()
		bFloat := reflect.ValueOf(b).Convert(reflect.TypeFor[float64]()).Float()

		if math.IsNaN(aFloat) {
			if math.IsNaN(bFloat) {
				return 0
			}
			return -1
		}
		if math.IsNaN(bFloat) {
			return 1
		}

		const eps = 1e-6
		diff := aFloat - bFloat
		if math.Abs(diff) < eps {
			return 0
		} else if diff < 0 {
			return -1
		}
		return 1
	case time.Time:
		bTime, err := ReformatDate(b)
		if err != nil {
			break
		}
		return aVal.Compare(bTime)
	case Date:
		if bDate, ok := b.(Date); ok {
			return aVal.Compare(bDate)
		}
	case bool:
		bBool, ok := b.(bool)
		if !ok {
			break
		}
		// false < true
		if !aVal && bBool {
			return -1
		} else if aVal && !bBool {
			return 1
		}
		return 0
	case string:
		if bStr, ok := b.(string); ok {
			return strings.Compare(aVal, bStr)
		}
	}

	// For any other types, convert to string for comparison
	return strings.Compare(Stringify(a), Stringify(b))
}

func isKind(v any, kinds ...reflect.Kind) bool {
	k := reflect.TypeOf(v).Kind()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
