package protocol

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/songminj/logtrack/query"
	"github.com/songminj/logtrack/resend"
	"github.com/songminj/logtrack/source"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils"
	"github.com/songminj/logtrack/utils/typeutils"
)

var reportView = view{
	title:   "Generated reports",
	columns: []string{"report_name", "created_at", "description", "file_url"},
	empty:   "no reports match the filter",
}

type reportsOptions struct {
	keyword string
	date    string
}

func (o *reportsOptions) query() (query.ReportQuery, error) {
	q := query.ReportQuery{Keyword: o.keyword}
	if o.date != "" {
		d, err := typeutils.ParseDate(o.date)
		if err != nil {
			return q, fmt.Errorf("invalid --date: %s", err)
		}
		q.Date = &d
	}
	return q, nil
}

func (o *reportsOptions) load(cmd *cobra.Command) (types.Dataset, error) {
	q, err := o.query()
	if err != nil {
		return types.Dataset{}, err
	}
	src, err := source.New(types.Report)
	if err != nil {
		return types.Dataset{}, err
	}
	return query.Reports(cmd.Context(), src, now(), q)
}

func newReportsCmd() *cobra.Command {
	opts := &reportsOptions{}
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List generated reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, ds, reportView, false)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.keyword, "keyword", "", "(Optional) Search report name and description")
	cmd.PersistentFlags().StringVar(&opts.date, "date", "", "(Optional) Only reports created on this day, YYYY-MM-DD")

	cmd.AddCommand(newResendCmd(opts))
	return cmd
}

type resendOptions struct {
	selection   string
	emails      string
	interactive bool
}

func newResendCmd(reports *reportsOptions) *cobra.Command {
	opts := &resendOptions{}
	cmd := &cobra.Command{
		Use:   "resend",
		Short: "Request a resend of generated reports to a list of recipients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := reports.load(cmd)
			if err != nil {
				return err
			}

			var state resend.State
			if opts.interactive {
				state, err = runInteractive(cmd, resend.NewState(ds))
			} else {
				state, err = opts.run(resend.NewState(ds))
			}
			if err != nil {
				return err
			}

			for _, line := range resend.Summary(state.Requests) {
				writeLine(cmd, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.selection, "select", "", "Positions of the reports to resend as listed by `reports`, starting at 1 (e.g. 1,3)")
	cmd.Flags().StringVar(&opts.emails, "emails", "", "Comma separated recipient addresses")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "(Optional) Pick reports and recipients in a terminal UI")
	cmd.MarkFlagsMutuallyExclusive("interactive", "select")
	cmd.MarkFlagsMutuallyExclusive("interactive", "emails")
	return cmd
}

// run drives the reducer with the same messages the interactive view would send.
func (o *resendOptions) run(state resend.State) (resend.State, error) {
	msgs := []resend.Msg{resend.ToggleMode{}}
	for _, field := range utils.SplitAndTrim(o.selection, ",") {
		pos, err := strconv.Atoi(field)
		if err != nil {
			return state, fmt.Errorf("invalid --select entry %q: %s", field, err)
		}
		msgs = append(msgs, resend.ToggleSelect{Index: pos - 1})
	}
	msgs = append(msgs, resend.Submit{}, resend.SetEmails{Text: o.emails}, resend.NewConfirm(now()))

	for _, msg := range msgs {
		state = resend.Reduce(state, msg)
		switch state.Notice.Level {
		case resend.NoticeError, resend.NoticeWarning:
			return state, fmt.Errorf("resend failed: %s", state.Notice.Text)
		}
	}
	return state, nil
}

func runInteractive(cmd *cobra.Command, state resend.State) (resend.State, error) {
	program := tea.NewProgram(
		resend.NewModel(state, styles()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(cmd.Context()),
	)
	final, err := program.Run()
	if err != nil {
		return state, fmt.Errorf("resend view failed: %s", err)
	}
	return final.(resend.Model).State(), nil
}
