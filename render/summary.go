package render

import (
	"strings"

	"github.com/songminj/logtrack/query"
)

// Summary renders the active filter of a log view.
func Summary(s Styles, summary query.Summary) string {
	return s.Bold.Render("Filter") + "\n" + s.Muted.Render(strings.Join(summary.Lines(), "\n")) + "\n"
}
