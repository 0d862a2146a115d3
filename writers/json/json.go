package json

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils"
	"github.com/songminj/logtrack/utils/typeutils"
	"github.com/songminj/logtrack/writers"
)

type Config struct {
	Lines  bool `mapstructure:"lines" json:"lines"`
	Indent bool `mapstructure:"indent" json:"indent"`
}

func (c *Config) Validate() error {
	return utils.Validate(c)
}

// JSON writes rows as one JSON array, or as JSON lines. Keys follow the
// encoder's sorted order; timestamps use the dashboard layout.
type JSON struct {
	config *Config
	format writers.Format
}

func (j *JSON) GetConfigRef() writers.Config {
	return j.config
}

func (j *JSON) Type() writers.Format {
	return j.format
}

func (j *JSON) Write(ctx context.Context, w io.Writer, ds types.Dataset) error {
	buffered := bufio.NewWriter(w)

	if j.config.Lines {
		encoder := json.NewEncoder(buffered)
		for idx, row := range ds.Rows() {
			if idx%1000 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if err := encoder.Encode(normalize(ds.Schema(), row)); err != nil {
				return fmt.Errorf("failed to encode row %d: %s", idx, err)
			}
		}
		return buffered.Flush()
	}

	rows := make([]map[string]any, 0, ds.Len())
	for _, row := range ds.Rows() {
		rows = append(rows, normalize(ds.Schema(), row))
	}

	var (
		data []byte
		err  error
	)
	if j.config.Indent {
		data, err = json.MarshalIndent(rows, "", "  ")
	} else {
		data, err = json.Marshal(rows)
	}
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %s", err)
	}
	if _, err := buffered.Write(append(data, '\n')); err != nil {
		return err
	}
	return buffered.Flush()
}

// normalize keeps schema columns only, absent ones as null.
func normalize(schema types.Schema, row types.Record) map[string]any {
	out := make(map[string]any, len(schema.Columns))
	for _, column := range schema.Columns {
		switch val := row[column.Name].(type) {
		case time.Time:
			out[column.Name] = val.Format(constants.TimestampLayout)
		case typeutils.Date:
			out[column.Name] = val.String()
		default:
			out[column.Name] = val
		}
	}
	return out
}

func init() {
	writers.RegisteredWriters[writers.JSON] = func() writers.Writer {
		return &JSON{config: &Config{Indent: true}, format: writers.JSON}
	}
	writers.RegisteredWriters[writers.JSONL] = func() writers.Writer {
		return &JSON{config: &Config{Lines: true}, format: writers.JSONL}
	}
}
