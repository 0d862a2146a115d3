package typeutils

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/songminj/logtrack/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReformatDate(t *testing.T) {
	want := time.Date(2025, 11, 24, 23, 59, 0, 0, time.UTC)
	tests := []struct {
		name      string
		value     any
		expected  time.Time
		expectErr error
	}{
		{name: "time value", value: want, expected: want},
		{name: "time pointer", value: &want, expected: want},
		{name: "rfc3339", value: "2025-11-24T23:59:00Z", expected: want},
		{name: "space separated", value: "2025-11-24 23:59:00", expected: want},
		{name: "fractional seconds", value: "2025-11-24 23:59:00.123456", expected: want.Add(123456 * time.Microsecond)},
		{name: "without seconds", value: "2025-11-24 23:59", expected: want},
		{name: "date only", value: "2025-11-24", expected: time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC)},
		{name: "slashed date", value: "2025/11/24", expected: time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC)},
		{name: "calendar date", value: Date{2025, 11, 24}, expected: time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC)},
		{name: "epoch seconds", value: int64(1764028740), expected: want},
		{name: "epoch millis", value: int64(1764028740000), expected: want},
		{name: "json number", value: json.Number("1764028740"), expected: want},
		{name: "nil", value: nil, expectErr: ErrNullValue},
		{name: "nil time pointer", value: (*time.Time)(nil), expectErr: ErrNullValue},
		{name: "garbage", value: "not-a-date", expectErr: ErrUnparseableTimestamp},
		{name: "empty string", value: "   ", expectErr: ErrUnparseableTimestamp},
		{name: "impossible day", value: "2025-02-30", expectErr: ErrUnparseableTimestamp},
		{name: "unsupported type", value: struct{}{}, expectErr: ErrUnparseableTimestamp},
		{name: "huge float", value: 1e300, expectErr: ErrUnparseableTimestamp},
		{name: "huge negative float", value: -1e19, expectErr: ErrUnparseableTimestamp},
		{name: "int64 max", value: int64(math.MaxInt64), expectErr: ErrUnparseableTimestamp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReformatDate(tc.value)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestDate(t *testing.T) {
	kst := time.FixedZone("KST", 9*3600)
	late := time.Date(2025, 11, 24, 23, 59, 0, 0, kst)

	d := DateOf(late)
	assert.Equal(t, Date{2025, 11, 24}, d, "date is taken in the timestamp's own location")
	assert.Equal(t, Date{2025, 11, 24}, DateOf(late.UTC()), "14:59 UTC is still the 24th")
	assert.Equal(t, "2025-11-24", d.String())
	assert.Equal(t, Date{2025, 12, 1}, d.AddDays(7))
	assert.Equal(t, Date{2025, 11, 23}, d.AddDays(-1))
	assert.True(t, d.Before(Date{2025, 11, 25}))
	assert.True(t, d.After(Date{2024, 12, 31}))
	assert.True(t, d.Equal(Date{2025, 11, 24}))
	assert.False(t, d.IsZero())
	assert.True(t, Date{}.IsZero())

	parsed, err := ParseDate(" 2025-11-24 ")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	parsed, err = ParseDate("2025-11-24T08:00:00+09:00")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDate("24.11.2025")
	assert.ErrorIs(t, err, ErrUnparseableTimestamp)
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		On Date `json:"on"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"on":"2025-11-20"}`), &payload))
	assert.Equal(t, Date{2025, 11, 20}, payload.On)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":"2025-11-20"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"on":"someday"}`), &payload))
}

func TestTypeFromValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected types.DataType
	}{
		{name: "nil input", input: nil, expected: types.Null},
		{name: "nil pointer", input: (*int)(nil), expected: types.Null},
		{name: "pointer to int", input: func() *int { i := 10; return &i }(), expected: types.Int64},
		{name: "bool", input: true, expected: types.Bool},
		{name: "int32", input: int32(10), expected: types.Int64},
		{name: "float64", input: 10.5, expected: types.Float64},
		{name: "json integer", input: json.Number("42"), expected: types.Int64},
		{name: "json float", input: json.Number("4.2"), expected: types.Float64},
		{name: "plain string", input: "send-report-email", expected: types.String},
		{name: "date string", input: "2025-11-24", expected: types.Date},
		{name: "timestamp string", input: "2025-11-24T10:00:00Z", expected: types.Timestamp},
		{name: "time", input: time.Now(), expected: types.Timestamp},
		{name: "calendar date", input: Date{2025, 1, 1}, expected: types.Date},
		{name: "array", input: []any{1, "a"}, expected: types.Array},
		{name: "object", input: map[string]any{"a": 1}, expected: types.Object},
		{name: "typed slice", input: []string{"a"}, expected: types.Array},
		{name: "struct", input: struct{}{}, expected: types.Unknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TypeFromValue(tc.input))
		})
	}
}

func TestInferSchema(t *testing.T) {
	rows := []types.Record{
		{"at": "2025-11-24 10:00:00", "service": "billing", "latency": 12, "note": nil, "zeta": true},
		{"at": "2025-11-23", "service": "auth", "latency": 3.5, "note": nil, "alpha": "x"},
		{"at": nil, "service": 7, "latency": nil, "note": nil},
	}

	schema := InferSchema([]string{"service", "at"}, rows)

	assert.Equal(t, []string{"service", "at", "alpha", "latency", "note", "zeta"}, schema.Names())
	expected := map[string]types.DataType{
		"service": types.String,    // string then int degrades to string
		"at":      types.Timestamp, // timestamp and date widen to timestamp
		"alpha":   types.String,
		"latency": types.Float64,
		"note":    types.Null,
		"zeta":    types.Bool,
	}
	for name, typ := range expected {
		got, err := schema.Type(name)
		require.NoError(t, err)
		assert.Equal(t, typ, got, name)
	}
	assert.Equal(t, []string{"service", "alpha"}, schema.TextualColumns())
}

func TestStringify(t *testing.T) {
	at := time.Date(2025, 11, 24, 9, 5, 7, 0, time.UTC)
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"nil pointer", (*string)(nil), ""},
		{"string", "Order Processing", "Order Processing"},
		{"string pointer", func() *string { s := "x"; return &s }(), "x"},
		{"int", 42, "42"},
		{"float", 8.5, "8.5"},
		{"bool", true, "true"},
		{"time", at, "2025-11-24 09:05:07"},
		{"time pointer", &at, "2025-11-24 09:05:07"},
		{"date", Date{2025, 11, 24}, "2025-11-24"},
		{"object", map[string]any{"level": "high"}, `{"level":"high"}`},
		{"array", []any{"a", 1}, `["a",1]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Stringify(tc.input))
		})
	}
}
