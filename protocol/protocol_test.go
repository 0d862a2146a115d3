package protocol

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songminj/logtrack/types"
)

var fixedNow = time.Date(2025, 11, 24, 12, 0, 0, 0, time.UTC)

// execute runs the command tree with args against a fixed clock.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	previous := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = previous })

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color", "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeLines(t *testing.T, text string) []map[string]any {
	t.Helper()
	rows := []map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line == "" {
			continue
		}
		row := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &row), line)
		rows = append(rows, row)
	}
	return rows
}

func column(rows []map[string]any, name string) []any {
	values := make([]any, 0, len(rows))
	for _, row := range rows {
		values = append(values, row[name])
	}
	return values
}

// ───────────────────────────── logs ─────────────────────────────

func TestLogsLambda(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []any
	}{
		{
			name: "default levels drop DEBUG",
			args: nil,
			want: []any{"req-12345", "req-23456", "req-34567"},
		},
		{
			name: "explicit level",
			args: []string{"--level", "DEBUG"},
			want: []any{"req-45678"},
		},
		{
			name: "keyword over function and message",
			args: []string{"--keyword", "SYNC"},
			want: []any{"req-34567"},
		},
		{
			name: "range outside the feed",
			args: []string{"--from", "2025-01-01", "--to", "2025-01-02"},
			want: []any{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"logs", "lambda", "-f", "jsonl"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, column(decodeLines(t, out), "request_id"))
		})
	}
}

func TestLogsSESErrorHeuristic(t *testing.T) {
	out, err := execute(t, "logs", "ses", "-f", "jsonl")
	require.NoError(t, err)
	assert.Len(t, decodeLines(t, out), 4)

	out, err = execute(t, "logs", "ses", "-f", "jsonl", "--level", "ERROR")
	require.NoError(t, err)
	assert.Equal(t, []any{"BOUNCE", "COMPLAINT"}, column(decodeLines(t, out), "status"))
}

func TestLogsLookbackFromEnv(t *testing.T) {
	t.Setenv("LOGTRACK_LOOKBACK_DAYS", "0")

	out, err := execute(t, "logs", "ses", "-f", "jsonl")
	require.NoError(t, err)
	assert.Equal(t, []any{"msg-111", "msg-222", "msg-333"}, column(decodeLines(t, out), "message_id"))
}

func TestLogsTable(t *testing.T) {
	out, err := execute(t, "logs", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "period: 2025-11-23 ~ 2025-11-24")
	assert.Contains(t, out, "Lambda logs")
	assert.Contains(t, out, "SES mail logs")
	assert.Contains(t, out, "process-orders")
	assert.Contains(t, out, "user2@example.com")
}

func TestLogsDetail(t *testing.T) {
	out, err := execute(t, "logs", "lambda", "--detail", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"request_id": "req-12345"`)

	out, err = execute(t, "logs", "lambda", "--detail", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"request_id": "req-34567"`)

	out, err = execute(t, "logs", "lambda")
	require.NoError(t, err)
	assert.NotContains(t, out, `"request_id":`)

	_, err = execute(t, "logs", "lambda", "--detail", "9")
	assert.Error(t, err)

	_, err = execute(t, "logs", "lambda", "--detail", "-1")
	assert.ErrorContains(t, err, "--detail starts at 1")

	_, err = execute(t, "logs", "all", "--detail", "1")
	assert.ErrorContains(t, err, "--detail needs a single source")
}

func TestLogsInvalidInput(t *testing.T) {
	_, err := execute(t, "logs", "lambda", "--from", "yesterday")
	assert.ErrorContains(t, err, "invalid --from")

	_, err = execute(t, "logs", "lambda", "--from", "yesterday", "--to", "11/24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --from")
	assert.Contains(t, err.Error(), "invalid --to")

	_, err = execute(t, "logs", "lambda", "--from", "2025-11-24", "--to", "2025-11-01")
	assert.ErrorIs(t, err, types.ErrInvalidRange)

	_, err = execute(t, "logs", "lambda", "--level", "FATAL")
	assert.ErrorContains(t, err, "invalid log query")

	_, err = execute(t, "logs", "cloudtrail")
	assert.Error(t, err)
}

// ───────────────────────────── output ─────────────────────────────

func TestOutputFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "logs", "all", "-f", "json", "-o", filepath.Join(dir, "logs.json"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "logs.lambda.json"))
	assert.FileExists(t, filepath.Join(dir, "logs.ses.json"))

	_, err = execute(t, "logs", "lambda", "-f", "parquet")
	assert.ErrorContains(t, err, "parquet output needs --out")

	_, err = execute(t, "logs", "lambda", "-f", "parquet", "-o", filepath.Join(dir, "lambda.parquet"))
	require.NoError(t, err)
	info, err := os.Stat(filepath.Join(dir, "lambda.parquet"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = execute(t, "logs", "lambda", "-f", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}

// ───────────────────────────── reports ─────────────────────────────

func TestReports(t *testing.T) {
	out, err := execute(t, "reports", "-f", "jsonl")
	require.NoError(t, err)
	assert.Len(t, decodeLines(t, out), 3)

	out, err = execute(t, "reports", "-f", "jsonl", "--keyword", "bounce")
	require.NoError(t, err)
	assert.Equal(t, []any{"SES Bounce Report (이번 주)"}, column(decodeLines(t, out), "report_name"))

	out, err = execute(t, "reports", "-f", "jsonl", "--date", "2025-11-22")
	require.NoError(t, err)
	assert.Equal(t, []any{"주간 시스템 리포트"}, column(decodeLines(t, out), "report_name"))
}

func TestReportsResend(t *testing.T) {
	out, err := execute(t, "reports", "resend", "--select", "1,3", "--emails", "a@example.com, b@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Lambda Error Summary (오늘), 주간 시스템 리포트 -> a@example.com, b@example.com")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "nothing selected", args: []string{"--emails", "a@example.com"}, want: "select at least one report"},
		{name: "position out of range", args: []string{"--select", "9", "--emails", "a@example.com"}, want: "resend failed"},
		{name: "not a number", args: []string{"--select", "one"}, want: "invalid --select entry"},
		{name: "bad address", args: []string{"--select", "1", "--emails", "not-an-address"}, want: "invalid email address"},
		{name: "no recipients", args: []string{"--select", "1"}, want: "resend failed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"reports", "resend"}, tc.args...)...)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

// ───────────────────────────── legal ─────────────────────────────

func TestLegal(t *testing.T) {
	out, err := execute(t, "legal", "-f", "json")
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []any{"1", "2"}, column(rows, "id"))

	out, err = execute(t, "legal", "-f", "jsonl", "--date", "2025-11-20")
	require.NoError(t, err)
	assert.Equal(t, []any{"3"}, column(decodeLines(t, out), "id"))

	out, err = execute(t, "legal", "-f", "jsonl", "--keyword", "고압가스")
	require.NoError(t, err)
	assert.Equal(t, []any{"3"}, column(decodeLines(t, out), "id"))

	out, err = execute(t, "legal", "--keyword", "고압가스")
	require.NoError(t, err)
	assert.Contains(t, out, "selected date: all dates")
	assert.Contains(t, out, "고압가스안전관리법 일부 개정")

	out, err = execute(t, "legal", "--keyword", "고압가스", "--date", "2025-11-24")
	require.NoError(t, err)
	assert.NotContains(t, out, "고압가스안전관리법 일부 개정")

	out, err = execute(t, "legal")
	require.NoError(t, err)
	assert.Contains(t, out, "Today's reports")
	assert.Contains(t, out, "2025-11-20, 2025-11-24")
}

func TestLegalReportView(t *testing.T) {
	out, err := execute(t, "legal", "--id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "산업안전보건법 시행령 개정에 따른 안전관리 규정 강화")
	assert.Contains(t, out, "8.5/10")

	out, err = execute(t, "legal", "--id", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "report not found: 99")

	_, err = execute(t, "legal", "--id", "99", "-f", "json")
	assert.ErrorContains(t, err, "report not found")
}

// ───────────────────────────── filter ─────────────────────────────

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	data := strings.Join([]string{
		`{"timestamp":"2025-01-10T08:00:00Z","level":"ERROR","message":"Disk full"}`,
		`{"timestamp":"2025-01-12T23:30:00Z","level":"INFO","message":"disk cleanup"}`,
		`{"timestamp":"not a date","level":"ERROR","message":"disk"}`,
		`{"timestamp":"2025-01-13T00:10:00Z","level":"WARN","message":"cpu"}`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestFilter(t *testing.T) {
	input := writeInput(t)

	tests := []struct {
		name string
		args []string
		want []any
	}{
		{
			name: "no filters",
			args: nil,
			want: []any{"Disk full", "disk cleanup", "disk", "cpu"},
		},
		{
			name: "range is inclusive and drops unreadable timestamps",
			args: []string{"--from", "2025-01-10", "--to", "2025-01-12"},
			want: []any{"Disk full", "disk cleanup"},
		},
		{
			name: "keyword folds case",
			args: []string{"--keyword", "DISK"},
			want: []any{"Disk full", "disk cleanup", "disk"},
		},
		{
			name: "values",
			args: []string{"--value-field", "level", "--values", "ERROR"},
			want: []any{"Disk full", "disk"},
		},
		{
			name: "unknown fields fail open",
			args: []string{"--keyword", "nothing", "--fields", "missing"},
			want: []any{"Disk full", "disk cleanup", "disk", "cpu"},
		},
		{
			name: "all together",
			args: []string{"--from", "2025-01-10", "--keyword", "disk", "--value-field", "level", "--values", "INFO"},
			want: []any{"disk cleanup"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"filter", "--input", input, "-f", "jsonl"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, column(decodeLines(t, out), "message"))
		})
	}
}

func TestFilterErrors(t *testing.T) {
	_, err := execute(t, "filter")
	assert.ErrorContains(t, err, "input")

	_, err = execute(t, "filter", "--input", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read input file")

	_, err = execute(t, "filter", "--input", writeInput(t), "--from", "2025-13-01", "--to", "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --from")
	assert.Contains(t, err.Error(), "invalid --to")

	_, err = execute(t, "filter", "--input", writeInput(t), "--values", "ERROR")
	assert.ErrorContains(t, err, "--values needs --value-field")
}

// ───────────────────────────── schema ─────────────────────────────

func TestSchema(t *testing.T) {
	out, err := execute(t, "schema", "lambda")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, `"timestamp"`), strings.Index(out, `"function_name"`))
	assert.Less(t, strings.Index(out, `"function_name"`), strings.Index(out, `"request_id"`))

	out, err = execute(t, "schema")
	require.NoError(t, err)
	all := map[string]map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, len(types.DeclaredKinds()))
	assert.Equal(t, "timestamp", all["ses"]["timestamp"])

	_, err = execute(t, "schema", "adhoc")
	assert.Error(t, err)
}

func TestFilterFlatten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mail.json")
	data := `[
  {"timestamp": "2025-01-12T10:00:00Z", "mail": {"destination": "ops@example.com", "subject": "Bounce"}},
  {"timestamp": "2025-01-12T11:00:00Z", "mail": {"destination": "dev@example.org", "subject": "Daily"}}
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out, err := execute(t, "filter", "--input", path, "--flatten", "--keyword", "EXAMPLE.COM", "--fields", "mail_destination", "-f", "jsonl")
	require.NoError(t, err)
	assert.Equal(t, []any{"Bounce"}, column(decodeLines(t, out), "mail_subject"))
}

func TestParseRange(t *testing.T) {
	start, end, err := parseRange("", "")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)

	start, end, err = parseRange("2025-11-01", "")
	require.NoError(t, err)
	require.NotNil(t, start)
	assert.Equal(t, "2025-11-01", start.String())
	assert.Nil(t, end)

	_, _, err = parseRange("2025-11-31", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --from")
	assert.Contains(t, err.Error(), "invalid --to")

	_, end, err = parseRange("bad", "2025-11-24")
	assert.ErrorContains(t, err, "invalid --from")
	assert.NotContains(t, err.Error(), "invalid --to")
	require.NotNil(t, end)
}
