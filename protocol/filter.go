package protocol

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/filter"
	"github.com/songminj/logtrack/source"
)

type filterOptions struct {
	input      string
	from       string
	to         string
	field      string
	keyword    string
	fields     []string
	valueField string
	values     []string
	columns    []string
	flatten    bool
}

func newFilterCmd() *cobra.Command {
	opts := &filterOptions{}
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Run the date, value and keyword filters over a JSON or JSON lines file",
		Example: `  logtrack filter --input events.jsonl --from 2025-01-10 --to 2025-01-12 --keyword timeout
  logtrack filter --input events.json --value-field level --values ERROR,WARN -f jsonl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := opts.spec(cmd)
			if err != nil {
				return err
			}

			file := source.NewFile(opts.input, opts.columns...)
			file.Flatten = opts.flatten
			ds, err := file.Fetch(cmd.Context(), now())
			if err != nil {
				return err
			}

			out, _ := filter.Apply(ds, spec)

			return emit(cmd, out, view{
				title:   opts.input,
				columns: opts.columns,
				empty:   "no rows match the current filter",
			}, false)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "JSON array or JSON lines file to filter")
	cmd.Flags().StringVar(&opts.from, "from", "", "(Optional) First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.to, "to", "", "(Optional) Last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.field, "field", constants.TimestampField, "(Optional) Column holding the row timestamp")
	cmd.Flags().StringVar(&opts.keyword, "keyword", "", "(Optional) Case-insensitive keyword")
	cmd.Flags().StringSliceVar(&opts.fields, "fields", nil, "(Optional) Columns searched for the keyword; defaults to every text column")
	cmd.Flags().StringVar(&opts.valueField, "value-field", "", "(Optional) Column compared against --values")
	cmd.Flags().StringSliceVar(&opts.values, "values", nil, "(Optional) Accepted values of --value-field")
	cmd.Flags().StringSliceVar(&opts.columns, "columns", nil, "(Optional) Leading column order of the output")
	cmd.Flags().BoolVar(&opts.flatten, "flatten", false, "(Optional) Turn nested objects into top level columns joined with '_'")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func (o *filterOptions) spec(cmd *cobra.Command) (filter.Spec, error) {
	spec := filter.Spec{
		TimestampField: o.field,
		Keyword:        o.keyword,
		ValueField:     o.valueField,
		Values:         o.values,
	}
	// an explicit but empty --fields keeps its meaning: search nothing
	if cmd.Flags().Changed("fields") {
		spec.Fields = append([]string{}, o.fields...)
	}
	if len(o.values) > 0 && o.valueField == "" {
		return spec, fmt.Errorf("--values needs --value-field")
	}

	start, end, err := parseRange(o.from, o.to)
	if err != nil {
		return spec, err
	}
	spec.Range = filter.DateRange{Start: start, End: end}
	return spec, nil
}
