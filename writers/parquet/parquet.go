package parquet

import (
	"context"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"time"

	pqgo "github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"

	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/logger"
	"github.com/songminj/logtrack/utils/typeutils"
	"github.com/songminj/logtrack/writers"
)

const secondsPerDay = 24 * 60 * 60

// Parquet writes a dataset as a single parquet file. Every column is optional;
// timestamps are stored in milliseconds and dates as days since the epoch.
type Parquet struct {
	config *Config
}

func (p *Parquet) GetConfigRef() writers.Config {
	return p.config
}

func (p *Parquet) Type() writers.Format {
	return writers.Parquet
}

type leafColumn struct {
	name  string
	typ   types.DataType
	index int
}

func (p *Parquet) Write(ctx context.Context, w io.Writer, ds types.Dataset) error {
	if err := p.config.Validate(); err != nil {
		return err
	}

	schema := ToParquet(ds.Schema())
	columns, err := leafColumns(schema, ds.Schema())
	if err != nil {
		return err
	}

	writer := pqgo.NewGenericWriter[any](w, schema, pqgo.Compression(codec(p.config.Compression)))

	batch := make([]pqgo.Row, 0, p.config.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := writer.WriteRows(batch); err != nil {
			return fmt.Errorf("failed to write rows: %s", err)
		}
		batch = batch[:0]
		return nil
	}

	for _, record := range ds.Rows() {
		batch = append(batch, toRow(columns, record))
		if len(batch) >= p.config.BatchSize {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %s", err)
	}
	logger.Debugf("[Parquet] wrote %d rows with %s compression", ds.Len(), p.config.Compression)
	return nil
}

// ToParquet maps a dataset schema onto a parquet schema.
func ToParquet(schema types.Schema) *pqgo.Schema {
	group := pqgo.Group{}
	for _, column := range schema.Columns {
		group[column.Name] = pqgo.Optional(node(column.Type))
	}
	return pqgo.NewSchema("logtrack", group)
}

func node(typ types.DataType) pqgo.Node {
	switch typ {
	case types.Int64:
		return pqgo.Int(64)
	case types.Float64:
		return pqgo.Leaf(pqgo.DoubleType)
	case types.Bool:
		return pqgo.Leaf(pqgo.BooleanType)
	case types.Timestamp:
		return pqgo.Timestamp(pqgo.Millisecond)
	case types.Date:
		return pqgo.Date()
	case types.Object, types.Array:
		return pqgo.JSON()
	default:
		return pqgo.String()
	}
}

// leafColumns orders the dataset columns by their parquet column index, which
// is the order values must appear in a row.
func leafColumns(schema *pqgo.Schema, source types.Schema) ([]leafColumn, error) {
	columns := make([]leafColumn, 0, len(source.Columns))
	for _, column := range source.Columns {
		leaf, ok := schema.Lookup(column.Name)
		if !ok {
			return nil, fmt.Errorf("column [%s] missing from parquet schema", column.Name)
		}
		columns = append(columns, leafColumn{name: column.Name, typ: column.Type, index: leaf.ColumnIndex})
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].index < columns[j].index })
	return columns, nil
}

func toRow(columns []leafColumn, record types.Record) pqgo.Row {
	row := make(pqgo.Row, 0, len(columns))
	for _, column := range columns {
		value, ok := convert(column.typ, record[column.name])
		if !ok {
			row = append(row, pqgo.NullValue().Level(0, 0, column.index))
			continue
		}
		row = append(row, pqgo.ValueOf(value).Level(0, 1, column.index))
	}
	return row
}

// convert returns the physical value for typ; false stores a null.
func convert(typ types.DataType, v any) (any, bool) {
	if v == nil {
		return nil, false
	}

	switch typ {
	case types.Timestamp:
		ts, err := typeutils.ReformatDate(v)
		if err != nil {
			return nil, false
		}
		return ts.UnixMilli(), true
	case types.Date:
		ts, err := typeutils.ReformatDate(v)
		if err != nil {
			return nil, false
		}
		midnight := typeutils.DateOf(ts).Midnight(time.UTC)
		return int32(midnight.Unix() / secondsPerDay), true
	case types.Int64:
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanInt():
			return rv.Int(), true
		case rv.CanUint():
			return int64(rv.Uint()), true
		case rv.CanFloat():
			return int64(math.Round(rv.Float())), true
		}
		return nil, false
	case types.Float64:
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanFloat():
			return rv.Float(), true
		case rv.CanInt():
			return float64(rv.Int()), true
		case rv.CanUint():
			return float64(rv.Uint()), true
		}
		return nil, false
	case types.Bool:
		b, ok := v.(bool)
		return b, ok
	default:
		return typeutils.Stringify(v), true
	}
}

func codec(name string) compress.Codec {
	switch name {
	case "zstd":
		return &pqgo.Zstd
	case "gzip":
		return &pqgo.Gzip
	case "none":
		return &pqgo.Uncompressed
	default:
		return &pqgo.Snappy
	}
}

func init() {
	writers.RegisteredWriters[writers.Parquet] = func() writers.Writer {
		return &Parquet{config: &Config{}}
	}
}
