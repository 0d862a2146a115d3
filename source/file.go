package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/flatten"
	"github.com/songminj/logtrack/utils/logger"
	"github.com/songminj/logtrack/utils/typeutils"
)

// lines longer than this in a JSON-lines file are rejected
const maxLineSize = 4 * 1024 * 1024

// File reads flat JSON objects from a local file, either a single JSON array or
// one object per line. The schema is inferred from the values.
type File struct {
	Path string
	// Columns fixes the leading column order; other keys follow alphabetically.
	Columns []string
	// Flatten joins nested object keys into top level columns, see flatten.Object.
	Flatten bool
}

func NewFile(path string, columns ...string) *File {
	return &File{Path: path, Columns: columns}
}

func (f *File) Kind() types.Kind {
	return types.Adhoc
}

func (f *File) Fetch(ctx context.Context, _ time.Time) (types.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return types.Dataset{}, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("failed to read input file: %s", err)
	}

	rows, err := Decode(data)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("failed to decode %s: %w", f.Path, err)
	}

	if f.Flatten {
		for idx, row := range rows {
			rows[idx] = flatten.Object(row)
		}
	}

	schema := typeutils.InferSchema(f.Columns, rows)
	logger.Debugf("[File] loaded %d rows from %s with columns %v", len(rows), f.Path, schema.Names())
	return types.NewDataset(types.Adhoc, schema, rows), nil
}

// Decode parses a JSON array of objects or JSON lines into records. Numbers
// decode as float64.
func Decode(data []byte) ([]types.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []types.Record{}, nil
	}

	if trimmed[0] == '[' {
		var objects []map[string]any
		if err := json.Unmarshal(trimmed, &objects); err != nil {
			return nil, err
		}
		rows := make([]types.Record, 0, len(objects))
		for _, object := range objects {
			rows = append(rows, types.Record(object))
		}
		return rows, nil
	}

	rows := []types.Record{}
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var object map[string]any
		if err := json.Unmarshal(text, &object); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, types.Record(object))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
