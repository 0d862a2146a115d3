// Package query assembles the filter engine into the dashboard's log and
// report views.
package query

import (
	"fmt"
	"time"

	"github.com/songminj/logtrack/filter"
	"github.com/songminj/logtrack/utils"
	"github.com/songminj/logtrack/utils/typeutils"
)

// LogQuery is the sidebar filter shared by the Lambda and SES log views.
type LogQuery struct {
	Start   *typeutils.Date `json:"start,omitempty"`
	End     *typeutils.Date `json:"end,omitempty"`
	Levels  []string        `json:"levels" validate:"dive,oneof=ERROR WARN INFO DEBUG"`
	Keyword string          `json:"keyword"`
}

// DefaultLogQuery covers lookbackDays before today through today.
func DefaultLogQuery(now time.Time, lookbackDays int, levels []string) LogQuery {
	today := typeutils.DateOf(now)
	return LogQuery{
		Start:  typeutils.DatePtr(today.AddDays(-lookbackDays)),
		End:    typeutils.DatePtr(today),
		Levels: append([]string(nil), levels...),
	}
}

func (q LogQuery) Range() filter.DateRange {
	return filter.DateRange{Start: q.Start, End: q.End}
}

func (q LogQuery) Validate() error {
	if err := utils.Validate(q); err != nil {
		return fmt.Errorf("invalid log query: %s", err)
	}
	return q.Range().Validate()
}

// ReportQuery filters the generated report list; Date selects a single day.
type ReportQuery struct {
	Keyword string          `json:"keyword"`
	Date    *typeutils.Date `json:"date,omitempty"`
}
