package protocol

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/songminj/logtrack/types"
)

// orderedColumns marshals a schema as a JSON object that keeps column order.
type orderedColumns types.Schema

func (o orderedColumns) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("{")
	for idx, column := range o.Columns {
		if idx > 0 {
			b.WriteString(",")
		}

		keyBytes, err := json.Marshal(column.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal column name %s: %w", column.Name, err)
		}
		b.Write(keyBytes)
		b.WriteString(":")

		valBytes, err := json.Marshal(column.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal type of column %s: %w", column.Name, err)
		}
		b.Write(valBytes)
	}
	b.WriteString("}")
	return b.Bytes(), nil
}

func newSchemaCmd() *cobra.Command {
	validArgs := []string{}
	for _, kind := range types.DeclaredKinds() {
		validArgs = append(validArgs, string(kind))
	}

	return &cobra.Command{
		Use:       "schema [kind]",
		Short:     "Print the declared column schema of each dataset kind",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := types.DeclaredKinds()
			if len(args) == 1 {
				kinds = []types.Kind{types.Kind(args[0])}
			}

			schemas := make(map[types.Kind]orderedColumns, len(kinds))
			for _, kind := range kinds {
				schema, err := types.SchemaOf(kind)
				if err != nil {
					return err
				}
				schemas[kind] = orderedColumns(schema)
			}

			var out any = schemas
			if len(args) == 1 {
				out = schemas[kinds[0]]
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %s", err)
			}
			writeLine(cmd, string(data))
			return nil
		},
	}
}
