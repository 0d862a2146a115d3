package legal

// RiskLevel grades how likely a law change is to cause violations or complaints.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// BadgeColors is a background/foreground pair in hex.
type BadgeColors struct {
	Background string
	Text       string
}

var (
	riskLabels = map[RiskLevel]string{
		RiskHigh:   "높음",
		RiskMedium: "보통",
		RiskLow:    "낮음",
	}

	riskColors = map[RiskLevel]BadgeColors{
		RiskHigh:   {Background: "#fee2e2", Text: "#b91c1c"},
		RiskMedium: {Background: "#ffedd5", Text: "#c2410c"},
		RiskLow:    {Background: "#dcfce7", Text: "#15803d"},
	}

	neutralColors = BadgeColors{Background: "#f9fafb", Text: "#4b5563"}
)

func (r RiskLevel) Known() bool {
	_, ok := riskLabels[r]
	return ok
}

// Label is the display name of the level; unknown levels show as written.
func (r RiskLevel) Label() string {
	if label, ok := riskLabels[r]; ok {
		return label
	}
	return string(r)
}

func (r RiskLevel) Colors() BadgeColors {
	if colors, ok := riskColors[r]; ok {
		return colors
	}
	return neutralColors
}
