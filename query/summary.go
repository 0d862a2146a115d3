package query

import (
	"fmt"
	"strings"

	"github.com/songminj/logtrack/utils/typeutils"
)

// Summary describes an active log query in three lines.
type Summary struct {
	Period  string
	Levels  string
	Keyword string
}

func Summarize(q LogQuery) Summary {
	summary := Summary{
		Period:  fmt.Sprintf("%s ~ %s", bound(q.Start), bound(q.End)),
		Levels:  "all",
		Keyword: "all",
	}
	if len(q.Levels) > 0 {
		summary.Levels = strings.Join(q.Levels, ", ")
	}
	if q.Keyword != "" {
		summary.Keyword = "`" + q.Keyword + "`"
	}
	return summary
}

func (s Summary) Lines() []string {
	return []string{
		"period: " + s.Period,
		"levels: " + s.Levels,
		"keyword: " + s.Keyword,
	}
}

func bound(d *typeutils.Date) string {
	if d == nil {
		return "*"
	}
	return d.String()
}
