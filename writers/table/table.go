// Package table writes datasets as terminal tables.
package table

import (
	"context"
	"io"

	"github.com/songminj/logtrack/render"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/writers"
)

type Config struct {
	Title   string   `mapstructure:"title"`
	Columns []string `mapstructure:"columns"`
	Color   bool     `mapstructure:"color"`
	// EmptyMessage replaces the table when there are no rows
	EmptyMessage string `mapstructure:"empty_message"`
}

func (c *Config) Validate() error {
	return nil
}

type Table struct {
	config *Config
}

func (t *Table) GetConfigRef() writers.Config {
	return t.config
}

func (t *Table) Type() writers.Format {
	return writers.Table
}

func (t *Table) Write(_ context.Context, w io.Writer, ds types.Dataset) error {
	styles := render.NewStyles(t.config.Color)
	if ds.Empty() {
		msg := t.config.EmptyMessage
		if msg == "" {
			msg = "no rows match the current filter"
		}
		_, err := io.WriteString(w, styles.Empty(msg)+"\n")
		return err
	}

	_, err := io.WriteString(w, render.Table(styles, t.config.Title, ds, t.config.Columns...))
	return err
}

func init() {
	writers.RegisteredWriters[writers.Table] = func() writers.Writer {
		return &Table{config: &Config{}}
	}
}
