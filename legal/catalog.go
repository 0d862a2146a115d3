// Package legal serves the law change report catalog: the daily list, the
// calendar of publish dates and the per-report analysis.
package legal

import (
	_ "embed"
	"fmt"
	"sort"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/filter"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils"
	"github.com/songminj/logtrack/utils/logger"
	"github.com/songminj/logtrack/utils/typeutils"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type RiskAnalysis struct {
	Level       RiskLevel `json:"level" validate:"required"`
	Description string    `json:"description,omitempty"`
	Concerns    []string  `json:"concerns,omitempty"`
}

type ResponseStrategy struct {
	ShortTerm []string `json:"shortTerm,omitempty"`
	LongTerm  []string `json:"longTerm,omitempty"`
}

// Report is one analysed law change.
type Report struct {
	ID               string           `json:"id" validate:"required"`
	LawName          string           `json:"lawName"`
	Title            string           `json:"title" validate:"required"`
	PublishDate      typeutils.Date   `json:"publishDate"`
	Summary          string           `json:"summary"`
	Link             string           `json:"link,omitempty" validate:"omitempty,url"`
	BeforeChange     string           `json:"beforeChange,omitempty"`
	AfterChange      string           `json:"afterChange,omitempty"`
	ImpactScore      float64          `json:"impactScore" validate:"gte=0,lte=10"`
	ImpactReason     string           `json:"impactReason,omitempty"`
	RiskAnalysis     RiskAnalysis     `json:"riskAnalysis"`
	ResponseStrategy ResponseStrategy `json:"responseStrategy"`
}

// HasComparison reports whether the before/after texts are available.
func (r Report) HasComparison() bool {
	return r.BeforeChange != "" || r.AfterChange != ""
}

type Catalog struct {
	reports []Report
	byID    map[string]int
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(embeddedCatalog)
}

// Load parses a YAML list of reports. Every report is validated and ids must be unique.
func Load(data []byte) (*Catalog, error) {
	var reports []Report
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to parse report catalog: %s", err)
	}

	catalog := &Catalog{reports: reports, byID: make(map[string]int, len(reports))}
	for idx, report := range reports {
		if err := utils.Validate(report); err != nil {
			return nil, fmt.Errorf("invalid report at position %d: %s", idx, err)
		}
		if report.PublishDate.IsZero() {
			return nil, fmt.Errorf("report [%s] has no publish date", report.ID)
		}
		if _, exists := catalog.byID[report.ID]; exists {
			return nil, fmt.Errorf("duplicate report id [%s]", report.ID)
		}
		if level := report.RiskAnalysis.Level; level != "" && !level.Known() {
			logger.Warnf("report [%s] has unknown risk level [%s], shown without a grade", report.ID, level)
		}
		catalog.byID[report.ID] = idx
	}
	return catalog, nil
}

func (c *Catalog) Len() int {
	return len(c.reports)
}

// Reports returns every report in catalog order.
func (c *Catalog) Reports() []Report {
	return append([]Report(nil), c.reports...)
}

func (c *Catalog) ByID(id string) (Report, bool) {
	idx, found := c.byID[id]
	if !found {
		return Report{}, false
	}
	return c.reports[idx], true
}

// Dataset lays the catalog out as a table with the legal report schema.
func (c *Catalog) Dataset() types.Dataset {
	rows := make([]types.Record, 0, len(c.reports))
	for _, report := range c.reports {
		rows = append(rows, types.Record{
			"id":           report.ID,
			"law_name":     report.LawName,
			"title":        report.Title,
			"summary":      report.Summary,
			"date":         report.PublishDate,
			"link":         report.Link,
			"impact_score": report.ImpactScore,
			"risk_level":   string(report.RiskAnalysis.Level),
		})
	}
	return types.NewDataset(types.LegalReport, types.LegalReportSchema, rows)
}

// OnDate returns the reports published on d, in catalog order.
func (c *Catalog) OnDate(d typeutils.Date) []Report {
	return c.fromDataset(filter.ByDate(c.Dataset(), filter.Day(d), constants.DateField))
}

// Today returns the reports published on the calendar day of now.
func (c *Catalog) Today(now time.Time) []Report {
	return c.OnDate(typeutils.DateOf(now))
}

// Search runs a keyword search over the textual columns of the catalog.
func (c *Catalog) Search(keyword string) []Report {
	return c.fromDataset(filter.ByKeyword(c.Dataset(), keyword, nil))
}

// Filter runs spec over Dataset with the publish date as the date column.
func (c *Catalog) Filter(spec filter.Spec) types.Dataset {
	spec.TimestampField = constants.DateField
	ds, _ := filter.Apply(c.Dataset(), spec)
	return ds
}

// Find returns the reports that pass spec, in catalog order.
func (c *Catalog) Find(spec filter.Spec) []Report {
	return c.fromDataset(c.Filter(spec))
}

// Dates lists the distinct publish dates in ascending order.
func (c *Catalog) Dates() []typeutils.Date {
	seen := map[typeutils.Date]bool{}
	dates := []typeutils.Date{}
	for _, report := range c.reports {
		if !seen[report.PublishDate] {
			seen[report.PublishDate] = true
			dates = append(dates, report.PublishDate)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (c *Catalog) fromDataset(ds types.Dataset) []Report {
	reports := make([]Report, 0, ds.Len())
	for _, id := range ds.Column("id") {
		if report, found := c.ByID(typeutils.Stringify(id)); found {
			reports = append(reports, report)
		}
	}
	return reports
}
