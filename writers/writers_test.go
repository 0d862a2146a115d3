package writers_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/writers"
	_ "github.com/songminj/logtrack/writers/json"
	_ "github.com/songminj/logtrack/writers/parquet"
	"github.com/songminj/logtrack/writers/table"
)

func lambdaDataset() types.Dataset {
	ts := time.Date(2025, 3, 14, 9, 25, 0, 0, time.UTC)
	return types.NewDataset(types.LambdaLog, types.LambdaLogSchema, []types.Record{
		{"timestamp": ts, "function_name": "process-orders", "level": "INFO", "message": "done", "request_id": "req-1"},
		{"timestamp": ts.Add(-time.Hour), "function_name": "sync-users", "level": "WARN", "message": nil, "request_id": "req-2", "extra": "dropped"},
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Test: Registry
// ─────────────────────────────────────────────────────────────────────────────

func TestFormats(t *testing.T) {
	assert.Equal(t, []writers.Format{writers.JSON, writers.JSONL, writers.Parquet, writers.Table}, writers.Formats())

	_, err := writers.New("csv")
	assert.ErrorContains(t, err, "invalid output format has been passed [csv]")
}

// ─────────────────────────────────────────────────────────────────────────────
// Test: JSON writers
// ─────────────────────────────────────────────────────────────────────────────

func TestJSONWriter(t *testing.T) {
	writer, err := writers.New(writers.JSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writer.Write(context.Background(), &buf, lambdaDataset()))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-03-14 09:25:00", rows[0]["timestamp"])
	assert.Nil(t, rows[1]["message"])
	assert.NotContains(t, rows[1], "extra")
}

func TestJSONLinesWriter(t *testing.T) {
	writer, err := writers.New(writers.JSONL)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writer.Write(context.Background(), &buf, lambdaDataset()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"request_id":"req-2"`)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	writer, err := writers.New(writers.JSON)
	require.NoError(t, err)

	require.NoError(t, writers.WriteFile(context.Background(), writer, path, lambdaDataset()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "process-orders")
}

// ─────────────────────────────────────────────────────────────────────────────
// Test: Table writer
// ─────────────────────────────────────────────────────────────────────────────

func TestTableWriter(t *testing.T) {
	writer, err := writers.New(writers.Table)
	require.NoError(t, err)
	cfg := writer.GetConfigRef().(*table.Config)
	cfg.Title = "Lambda"
	cfg.Columns = []string{"timestamp", "level", "request_id"}

	var buf bytes.Buffer
	require.NoError(t, writer.Write(context.Background(), &buf, lambdaDataset()))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Lambda\n"))
	assert.Contains(t, out, "2025-03-14 09:25")
	assert.NotContains(t, out, "process-orders")

	buf.Reset()
	cfg.EmptyMessage = "no lambda logs match"
	require.NoError(t, writer.Write(context.Background(), &buf, lambdaDataset().WithRows(nil)))
	assert.Equal(t, "ℹ no lambda logs match\n", buf.String())
}
