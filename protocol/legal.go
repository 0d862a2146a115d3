package protocol

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/songminj/logtrack/filter"
	"github.com/songminj/logtrack/legal"
	"github.com/songminj/logtrack/render"
	"github.com/songminj/logtrack/utils/typeutils"
)

var legalView = view{
	title:   "Legal change reports",
	columns: []string{"date", "id", "law_name", "title", "risk_level", "impact_score"},
	empty:   "no reports match the filter",
}

type legalOptions struct {
	id      string
	date    string
	keyword string
}

func newLegalCmd() *cobra.Command {
	opts := &legalOptions{}
	cmd := &cobra.Command{
		Use:   "legal",
		Short: "Browse legal change reports and their risk analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := legal.Default()
			if err != nil {
				return err
			}

			date := typeutils.DateOf(now())
			if opts.date != "" {
				date, err = typeutils.ParseDate(opts.date)
				if err != nil {
					return fmt.Errorf("invalid --date: %s", err)
				}
			}

			switch route := legal.ResolveRoute(opts.id, date).(type) {
			case legal.ReportView:
				return showReport(cmd, catalog, route.ID)
			case legal.MainView:
				return opts.showMain(cmd, catalog, route.Date)
			default:
				return fmt.Errorf("unsupported view %T", route)
			}
		},
	}
	cmd.Flags().StringVar(&opts.id, "id", "", "(Optional) Show the full analysis of one report")
	cmd.Flags().StringVar(&opts.date, "date", "", "(Optional) Publish date to list, YYYY-MM-DD; defaults to today")
	cmd.Flags().StringVar(&opts.keyword, "keyword", "", "(Optional) Search law name, title and summary")
	return cmd
}

func showReport(cmd *cobra.Command, catalog *legal.Catalog, id string) error {
	report, found := catalog.ByID(id)
	if !isTable() {
		if !found {
			return fmt.Errorf("report not found: %s", id)
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		writeLine(cmd, string(data))
		return nil
	}

	if !found {
		writeLine(cmd, render.NotFound(styles(), id))
		return nil
	}
	writeLine(cmd, render.LegalReport(styles(), report))
	return nil
}

// showMain lists the reports of one day. A keyword searches the whole catalog
// unless --date narrows it.
func (o *legalOptions) showMain(cmd *cobra.Command, catalog *legal.Catalog, date typeutils.Date) error {
	spec := filter.Spec{Keyword: o.keyword}
	if o.keyword == "" || o.date != "" {
		spec.Range = filter.Day(date)
	}

	if !isTable() {
		return emit(cmd, catalog.Filter(spec), legalView, false)
	}

	dates := []string{}
	for _, d := range catalog.Dates() {
		dates = append(dates, d.String())
	}
	selected := "all dates"
	if spec.Range.Start != nil {
		selected = date.String()
	}
	if o.keyword != "" {
		selected += fmt.Sprintf(" (keyword %q)", o.keyword)
	}
	var reports []legal.Report
	if spec.Range.Start == nil {
		reports = catalog.Search(o.keyword)
	} else {
		reports = catalog.Find(spec)
	}
	writeLine(cmd, render.LegalMain(styles(), catalog.Today(now()), dates, selected, reports))
	return nil
}
