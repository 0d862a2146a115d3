package filter

import (
	"fmt"

	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/logger"
	"github.com/songminj/logtrack/utils/typeutils"
)

// DateRange holds optional inclusive calendar-day bounds.
type DateRange struct {
	Start *typeutils.Date
	End   *typeutils.Date
}

// Day is the range covering exactly one calendar day.
func Day(d typeutils.Date) DateRange {
	return DateRange{Start: typeutils.DatePtr(d), End: typeutils.DatePtr(d)}
}

// Between is the inclusive range start..end.
func Between(start, end typeutils.Date) DateRange {
	return DateRange{Start: typeutils.DatePtr(start), End: typeutils.DatePtr(end)}
}

func (r DateRange) Unbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether d satisfies every present bound.
func (r DateRange) Contains(d typeutils.Date) bool {
	if r.Start != nil && d.Before(*r.Start) {
		return false
	}
	if r.End != nil && d.After(*r.End) {
		return false
	}
	return true
}

// Validate rejects a range whose start falls after its end. The filters accept
// such a range and simply match nothing; callers validate user input with this.
func (r DateRange) Validate() error {
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return fmt.Errorf("%w: start %s is after end %s", types.ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

func (r DateRange) String() string {
	bound := func(d *typeutils.Date) string {
		if d == nil {
			return "*"
		}
		return d.String()
	}
	return bound(r.Start) + " ~ " + bound(r.End)
}

// ByDate keeps rows whose field value falls on a calendar day inside r.
// See ByDateWithDiagnostics.
func ByDate(ds types.Dataset, r DateRange, field string) types.Dataset {
	out, _ := ByDateWithDiagnostics(ds, r, field)
	return out
}

// ByDateWithDiagnostics compares calendar days, not instants: a timestamp is
// truncated to its date in its own location before the bounds are applied.
// Rows whose value is null or cannot be parsed are excluded and counted.
// An unbounded range, an empty dataset or a schema without field returns ds.
func ByDateWithDiagnostics(ds types.Dataset, r DateRange, field string) (types.Dataset, Diagnostics) {
	var diag Diagnostics
	if r.Unbounded() || ds.Empty() || !ds.Schema().Has(field) {
		return ds, diag
	}

	out := ds.Where(func(row types.Record) bool {
		ts, err := typeutils.ReformatDate(row[field])
		if err != nil {
			diag.Unparseable++
			logger.Debugf("[ByDate] skipping row with %s=%v: %s", field, row[field], err)
			return false
		}
		return r.Contains(typeutils.DateOf(ts))
	})

	if diag.Unparseable > 0 {
		logger.Warnf("date filter on [%s] skipped %d row(s) without a readable timestamp", field, diag.Unparseable)
	}
	return out, diag
}
