package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/songminj/logtrack/legal"
)

const impactBarWidth = 20

// RiskBadge renders the risk level in its badge colors.
func (s Styles) RiskBadge(level legal.RiskLevel) string {
	text := "리스크: " + level.Label()
	if !s.Color {
		return "[" + text + "]"
	}
	colors := level.Colors()
	return lipgloss.NewStyle().
		Background(lipgloss.Color(colors.Background)).
		Foreground(lipgloss.Color(colors.Text)).
		Padding(0, 1).
		Render(text)
}

// ImpactBar draws score out of 10 as a fixed width bar.
func ImpactBar(score float64) string {
	score = math.Max(0, math.Min(10, score))
	filled := int(math.Round(score / 10 * impactBarWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", impactBarWidth-filled) + fmt.Sprintf(" %.1f/10", score)
}

// LegalCard is the compact list entry for a report.
func LegalCard(s Styles, report legal.Report) string {
	lines := []string{
		s.Bold.Render(report.Title) + "  " + s.RiskBadge(report.RiskAnalysis.Level),
		s.Muted.Render(report.LawName + " · " + report.PublishDate.String()),
		report.Summary,
	}
	if report.Link != "" {
		lines = append(lines, s.Info.Render(report.Link))
	}
	return s.Card.Render(strings.Join(lines, "\n"))
}

// LegalMain renders the landing view: today's reports, the publish calendar
// and the reports of the selected day.
func LegalMain(s Styles, today []legal.Report, dates []string, selected string, onDate []legal.Report) string {
	var sb strings.Builder

	sb.WriteString(s.Section.Render("Today's reports"))
	sb.WriteString("\n")
	if len(today) == 0 {
		sb.WriteString(s.Empty("no reports were published today"))
		sb.WriteString("\n")
	}
	for _, report := range today {
		sb.WriteString(LegalCard(s, report))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.Section.Render("Report calendar"))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render("publish dates: " + strings.Join(dates, ", ")))
	sb.WriteString("\n\n")

	sb.WriteString(s.Bold.Render("selected date: " + selected))
	sb.WriteString("\n")
	if len(onDate) == 0 {
		sb.WriteString(s.Empty("no reports were published on this date"))
		sb.WriteString("\n")
	}
	for _, report := range onDate {
		sb.WriteString(LegalCard(s, report))
		sb.WriteString("\n")
	}
	return sb.String()
}

// LegalReport renders the full analysis of one report.
func LegalReport(s Styles, report legal.Report) string {
	var sb strings.Builder
	level := report.RiskAnalysis.Level

	sb.WriteString(s.Muted.Render("📑 " + report.LawName))
	sb.WriteString("\n")
	sb.WriteString(s.Title.Render(report.Title) + "  " + s.RiskBadge(level))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render("📅 " + report.PublishDate.String()))
	sb.WriteString("\n\n")

	meta := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Card.Render("Risk Level\n"+s.Bold.Render(level.Label())),
		" ",
		s.Card.Render("Impact Score\n"+s.Bold.Render(fmt.Sprintf("%.1f/10", report.ImpactScore))),
	)
	sb.WriteString(meta)
	sb.WriteString("\n\n")

	section := func(title string, body ...string) {
		sb.WriteString(s.Section.Render(title))
		sb.WriteString("\n")
		for _, line := range body {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	section("Summary", report.Summary)

	if report.HasComparison() {
		half := lipgloss.NewStyle().Width(48)
		before := s.Card.Render(half.Render(s.Error.Render("Before") + "\n" + report.BeforeChange))
		after := s.Card.Render(half.Render(s.Success.Render("After") + "\n" + report.AfterChange))
		section("Changes", lipgloss.JoinHorizontal(lipgloss.Top, before, " ", after))
	}

	impact := []string{ImpactBar(report.ImpactScore)}
	if report.ImpactReason != "" {
		impact = append(impact, report.ImpactReason)
	}
	section("Impact", impact...)

	risk := []string{}
	if report.RiskAnalysis.Description != "" {
		risk = append(risk, report.RiskAnalysis.Description)
	}
	risk = append(risk, bullets(report.RiskAnalysis.Concerns)...)
	if len(risk) > 0 {
		section("Risk analysis", risk...)
	}

	strategy := report.ResponseStrategy
	if len(strategy.ShortTerm) > 0 {
		section("Short-term response", bullets(strategy.ShortTerm)...)
	}
	if len(strategy.LongTerm) > 0 {
		section("Long-term response", bullets(strategy.LongTerm)...)
	}

	if report.Link != "" {
		sb.WriteString(s.Info.Render(report.Link))
		sb.WriteString("\n")
	}
	return sb.String()
}

// NotFound is shown for an unknown report id.
func NotFound(s Styles, id string) string {
	return s.Error.Render(fmt.Sprintf("report not found: %s", id)) + "\n" +
		s.Muted.Render("check that the report id is correct") + "\n"
}

func bullets(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, "  • "+item)
	}
	return out
}
