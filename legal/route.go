package legal

import (
	"github.com/songminj/logtrack/utils/typeutils"
)

// Route selects one of the two legal views. The set of implementations is closed.
type Route interface {
	route()
}

// MainView lists today's reports and the reports published on Date.
type MainView struct {
	Date typeutils.Date
}

// ReportView shows the full analysis of one report.
type ReportView struct {
	ID string
}

func (MainView) route()   {}
func (ReportView) route() {}

// ResolveRoute picks the view for a request. A report id wins over a date.
func ResolveRoute(id string, date typeutils.Date) Route {
	if id != "" {
		return ReportView{ID: id}
	}
	return MainView{Date: date}
}
