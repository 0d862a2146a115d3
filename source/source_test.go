package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songminj/logtrack/types"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// ─────────────────────────────────────────────────────────────────────────────
// Test: Registered feeds
// ─────────────────────────────────────────────────────────────────────────────

func TestRegisteredFeeds(t *testing.T) {
	tests := []struct {
		kind   types.Kind
		schema types.Schema
		rows   int
	}{
		{types.LambdaLog, types.LambdaLogSchema, 4},
		{types.SESEvent, types.SESEventSchema, 4},
		{types.Report, types.ReportSchema, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			src, err := New(tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, src.Kind())

			ds, err := src.Fetch(context.Background(), now)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, ds.Kind())
			assert.Equal(t, tc.schema, ds.Schema())
			assert.Equal(t, tc.rows, ds.Len())

			for _, row := range ds.Rows() {
				for _, name := range tc.schema.Names() {
					_, ok := row.Get(name)
					assert.True(t, ok, "row is missing column %s", name)
				}
			}
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(types.LegalReport)
	assert.ErrorIs(t, err, types.ErrUnknownKind)
}

func TestMockTimestampsRelativeToNow(t *testing.T) {
	ds, err := (&SESEvents{}).Fetch(context.Background(), now)
	require.NoError(t, err)

	first, err := ds.Row(0)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-3*time.Minute), first["timestamp"])

	last, err := ds.Row(3)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -1), last["timestamp"])
}

func TestFetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&LambdaLogs{}).Fetch(ctx, now)
	assert.ErrorIs(t, err, context.Canceled)
}

// ─────────────────────────────────────────────────────────────────────────────
// Test: File source
// ─────────────────────────────────────────────────────────────────────────────

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFile_JSONArray(t *testing.T) {
	path := writeFile(t, "events.json", `[
		{"ts": "2025-03-13 10:00:00", "service": "billing", "latency": 12},
		{"ts": "2025-03-14 11:00:00", "service": "auth", "latency": 48.5, "tags": ["a"]}
	]`)

	ds, err := NewFile(path, "ts").Fetch(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, types.Adhoc, ds.Kind())
	assert.Equal(t, []string{"ts", "latency", "service", "tags"}, ds.Schema().Names())
	assert.Equal(t, []string{"service"}, ds.Schema().TextualColumns())

	typ, err := ds.Schema().Type("ts")
	require.NoError(t, err)
	assert.Equal(t, types.Timestamp, typ)

	typ, err = ds.Schema().Type("latency")
	require.NoError(t, err)
	assert.Equal(t, types.Float64, typ)
}

func TestFile_JSONLines(t *testing.T) {
	path := writeFile(t, "events.jsonl", "{\"id\": \"a\"}\n\n{\"id\": \"b\", \"note\": null}\n")

	ds, err := NewFile(path).Fetch(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, ds.Column("id"))
	assert.Equal(t, []string{"id", "note"}, ds.Schema().Names())
}

func TestFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFile(filepath.Join(t.TempDir(), "nope.json")).Fetch(context.Background(), now)
		assert.ErrorContains(t, err, "failed to read input file")
	})

	t.Run("malformed line", func(t *testing.T) {
		path := writeFile(t, "bad.jsonl", "{\"id\": 1}\n{oops\n")
		_, err := NewFile(path).Fetch(context.Background(), now)
		assert.ErrorContains(t, err, "line 2")
	})
}

func TestDecode_Empty(t *testing.T) {
	rows, err := Decode([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
