package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/typeutils"
)

// cells wider than this are cut with an ellipsis
const maxCellWidth = 60

// Table renders ds with the columns listed in preferred, in that order. When
// none of them exist the schema order is used.
func Table(styles Styles, title string, ds types.Dataset, preferred ...string) string {
	columns := ds.Schema().Select(preferred...)
	if len(columns) == 0 {
		columns = ds.Schema().Names()
	}

	rows := make([][]string, 0, ds.Len())
	for _, record := range ds.Rows() {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = truncate(Cell(record[column]), maxCellWidth)
		}
		rows = append(rows, row)
	}

	return table(styles, title, columns, rows)
}

// Cell formats one value for display.
func Cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.Format(constants.TimestampShortLayout)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return strings.ReplaceAll(typeutils.Stringify(v), "\n", " ")
	}
}

func table(styles Styles, title string, headers []string, rows [][]string) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(styles.Title.Render(title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	// padding on both sides
	for i := range widths {
		widths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sep := styles.Divider.Render("|")

	for i, h := range headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(headers)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := len(headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Divider.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(rowStyle.Width(widths[i]).Render(cell))
			if i < len(row)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, limit int) string {
	if lipgloss.Width(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
