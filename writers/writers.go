/*
 * Copyright 2025 Olake By Datazip
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package writers exports filtered datasets. Each format registers itself in
// RegisteredWriters from its own package.
package writers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/logger"
)

type Format string

const (
	Table   Format = "table"
	JSON    Format = "json"
	JSONL   Format = "jsonl"
	Parquet Format = "parquet"
)

type Config interface {
	Validate() error
}

type Writer interface {
	// GetConfigRef returns a pointer the caller can decode settings into
	GetConfigRef() Config
	Type() Format
	Write(ctx context.Context, w io.Writer, ds types.Dataset) error
}

type NewFunc func() Writer

var RegisteredWriters = map[Format]NewFunc{}

// New returns a fresh writer for format.
func New(format Format) (Writer, error) {
	newfunc, found := RegisteredWriters[format]
	if !found {
		return nil, fmt.Errorf("invalid output format has been passed [%s], available: %v", format, Formats())
	}
	return newfunc(), nil
}

// Formats lists the registered formats, sorted.
func Formats() []Format {
	formats := make([]Format, 0, len(RegisteredWriters))
	for format := range RegisteredWriters {
		formats = append(formats, format)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// WriteFile validates the writer config and writes ds to path. An empty path
// or "-" writes to stdout.
func WriteFile(ctx context.Context, writer Writer, path string, ds types.Dataset) (err error) {
	if err := writer.GetConfigRef().Validate(); err != nil {
		return fmt.Errorf("invalid %s writer config: %s", writer.Type(), err)
	}

	if path == "" || path == "-" {
		return writer.Write(ctx, os.Stdout, ds)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %s", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %s", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %s", cerr)
		}
	}()

	if err := writer.Write(ctx, file, ds); err != nil {
		return err
	}
	logger.Infof("wrote %d %s rows to %s as %s", ds.Len(), ds.Kind(), path, writer.Type())
	return nil
}
