package protocol

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/songminj/logtrack/render"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/writers"
	_ "github.com/songminj/logtrack/writers/json"
	_ "github.com/songminj/logtrack/writers/parquet"
	"github.com/songminj/logtrack/writers/table"
)

// view describes how one dataset is shown in table form.
type view struct {
	title   string
	columns []string
	empty   string
}

func styles() render.Styles {
	return render.NewStyles(!config.NoColor)
}

func isTable() bool {
	return writers.Format(config.Format) == writers.Table
}

// emit writes ds in the configured format. With several datasets going to one
// --out path, each gets the dataset kind inserted before the extension.
func emit(cmd *cobra.Command, ds types.Dataset, v view, multiple bool) error {
	format := writers.Format(config.Format)
	writer, err := writers.New(format)
	if err != nil {
		return err
	}

	// format specific settings live under their own key, e.g. parquet.compression
	if viper.IsSet(string(format)) {
		if err := viper.UnmarshalKey(string(format), writer.GetConfigRef()); err != nil {
			return fmt.Errorf("failed to read %s settings: %s", format, err)
		}
	}
	if cfg, ok := writer.GetConfigRef().(*table.Config); ok {
		cfg.Title = v.title
		cfg.Columns = v.columns
		cfg.EmptyMessage = v.empty
		cfg.Color = !config.NoColor
	}

	out := config.Out
	if out == "" {
		if format == writers.Parquet {
			return fmt.Errorf("parquet output needs --out")
		}
		if err := writer.GetConfigRef().Validate(); err != nil {
			return fmt.Errorf("invalid %s writer config: %s", format, err)
		}
		return writer.Write(cmd.Context(), cmd.OutOrStdout(), ds)
	}

	if multiple {
		out = withKind(out, ds.Kind())
	}
	return writers.WriteFile(cmd.Context(), writer, out, ds)
}

func withKind(path string, kind types.Kind) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + string(kind) + ext
}

func writeLine(cmd *cobra.Command, text string) {
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(text, "\n"))
}
