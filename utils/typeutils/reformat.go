package typeutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrNullValue            = errors.New("null value")
	ErrUnparseableTimestamp = errors.New("unparseable timestamp")
)

// layouts tried in order for string timestamps; a fractional second after the
// seconds field is accepted by every layout that carries seconds.
var dateTimeFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
}

// epoch values above this are taken as milliseconds
const epochMillisThreshold = 1e12

// ReformatDate converts v into a time.Time. Strings are parsed against the known
// layouts; numbers are unix epochs (seconds, or milliseconds when large enough).
func ReformatDate(v any) (time.Time, error) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, ErrNullValue
	case time.Time:
		return val, nil
	case *time.Time:
		if val == nil {
			return time.Time{}, ErrNullValue
		}
		return *val, nil
	case Date:
		return val.Midnight(time.UTC), nil
	case *Date:
		if val == nil {
			return time.Time{}, ErrNullValue
		}
		return val.Midnight(time.UTC), nil
	case string:
		return parseStringTimestamp(val)
	case *string:
		if val == nil {
			return time.Time{}, ErrNullValue
		}
		return parseStringTimestamp(*val)
	case []byte:
		return parseStringTimestamp(string(val))
	case int:
		return fromEpoch(float64(val))
	case int32:
		return fromEpoch(float64(val))
	case int64:
		return fromEpoch(float64(val))
	case float64:
		return fromEpoch(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: [%s]", ErrUnparseableTimestamp, val)
		}
		return fromEpoch(f)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrUnparseableTimestamp, v)
	}
}

func parseStringTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrUnparseableTimestamp)
	}

	for _, layout := range dateTimeFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: [%s]", ErrUnparseableTimestamp, value)
}

func fromEpoch(f float64) (time.Time, error) {
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return time.Time{}, fmt.Errorf("%w: [%v]", ErrUnparseableTimestamp, f)
	}
	if math.Abs(f) >= epochMillisThreshold {
		return time.UnixMilli(int64(f)).UTC(), nil
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
}
