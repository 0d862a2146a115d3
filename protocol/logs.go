package protocol

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/songminj/logtrack/query"
	"github.com/songminj/logtrack/render"
	"github.com/songminj/logtrack/source"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils"
)

var (
	lambdaView = view{
		title:   "Lambda logs",
		columns: []string{"timestamp", "function_name", "level", "message", "request_id"},
		empty:   "no Lambda logs match the filter",
	}
	sesView = view{
		title:   "SES mail logs",
		columns: []string{"timestamp", "mail_to", "subject", "status", "event_type", "message_id"},
		empty:   "no SES logs match the filter",
	}
)

type logsOptions struct {
	from    string
	to      string
	levels  []string
	keyword string
	detail  int // 1-based, 0 for none
}

func newLogsCmd() *cobra.Command {
	opts := &logsOptions{}
	cmd := &cobra.Command{
		Use:       "logs [lambda|ses|all]",
		Short:     "Show Lambda and SES logs filtered by period, level and keyword",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"lambda", "ses", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "all"
			if len(args) == 1 {
				target = args[0]
			}

			q, err := opts.query(cmd)
			if err != nil {
				return err
			}
			if opts.detail < 0 {
				return fmt.Errorf("--detail starts at 1, got %d", opts.detail)
			}
			if opts.detail > 0 && target == "all" {
				return fmt.Errorf("--detail needs a single source, pick lambda or ses")
			}

			datasets, err := loadLogs(cmd.Context(), target, q)
			if err != nil {
				return err
			}

			if isTable() {
				writeLine(cmd, render.Summary(styles(), query.Summarize(q)))
			}
			for _, ds := range datasets {
				v := utils.Ternary(ds.Kind() == types.LambdaLog, lambdaView, sesView)
				if err := emit(cmd, ds, v, len(datasets) > 1); err != nil {
					return err
				}
			}

			if opts.detail > 0 {
				detail, err := render.Detail(datasets[0], opts.detail-1)
				if err != nil {
					return err
				}
				writeLine(cmd, detail)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "(Optional) First day, YYYY-MM-DD; defaults to lookback_days before today")
	cmd.Flags().StringVar(&opts.to, "to", "", "(Optional) Last day, YYYY-MM-DD; defaults to today")
	cmd.Flags().StringSliceVar(&opts.levels, "level", nil, "(Optional) Levels to keep, repeatable; defaults to the configured levels")
	cmd.Flags().StringVar(&opts.keyword, "keyword", "", "(Optional) Case-insensitive keyword")
	cmd.Flags().IntVar(&opts.detail, "detail", 0, "(Optional) Print the row at this position as JSON, starting at 1")
	return cmd
}

func (o *logsOptions) query(cmd *cobra.Command) (query.LogQuery, error) {
	q := query.DefaultLogQuery(now(), config.LookbackDays, config.Levels)
	q.Keyword = o.keyword

	start, end, err := parseRange(o.from, o.to)
	if err != nil {
		return q, err
	}
	if start != nil {
		q.Start = start
	}
	if end != nil {
		q.End = end
	}
	if cmd.Flags().Changed("level") {
		q.Levels = o.levels
	}

	return q, q.Validate()
}

// loadLogs runs the requested pipelines; "all" fetches both sources concurrently.
func loadLogs(ctx context.Context, target string, q query.LogQuery) ([]types.Dataset, error) {
	at := now()
	lambda := func(ctx context.Context) (types.Dataset, error) {
		src, err := source.New(types.LambdaLog)
		if err != nil {
			return types.Dataset{}, err
		}
		return query.Lambda(ctx, src, at, q)
	}
	ses := func(ctx context.Context) (types.Dataset, error) {
		src, err := source.New(types.SESEvent)
		if err != nil {
			return types.Dataset{}, err
		}
		return query.SES(ctx, src, at, q)
	}

	switch target {
	case "lambda":
		ds, err := lambda(ctx)
		return []types.Dataset{ds}, err
	case "ses":
		ds, err := ses(ctx)
		return []types.Dataset{ds}, err
	}

	var lambdaLogs, sesLogs types.Dataset
	err := utils.ErrExec(ctx,
		func(ctx context.Context) (err error) {
			lambdaLogs, err = lambda(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			sesLogs, err = ses(ctx)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return []types.Dataset{lambdaLogs, sesLogs}, nil
}
