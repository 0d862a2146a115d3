// Package filter narrows tabular datasets by calendar date range, keyword and value set.
//
// Every function is a pure row predicate over a types.Dataset: inputs are never
// modified, survivors keep their relative order, and filters that cannot apply
// (no rows, missing column, nothing to match) return the input dataset as is.
package filter

import (
	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/logger"
)

// Spec is one complete filter request; zero values disable each part.
type Spec struct {
	Range          DateRange
	TimestampField string // defaults to constants.TimestampField

	Keyword string
	// Fields searched by Keyword. nil searches every textual column, an empty
	// non-nil slice searches nothing.
	Fields []string

	ValueField string
	Values     []string
}

// Diagnostics counts rows the date filter could not place on a calendar day.
type Diagnostics struct {
	Unparseable int
}

// Apply runs the date, value-set and keyword filters of spec in sequence. The
// filters are independent predicates, so their order does not change the result.
func Apply(ds types.Dataset, spec Spec) (types.Dataset, Diagnostics) {
	field := spec.TimestampField
	if field == "" {
		field = constants.TimestampField
	}

	out, diag := ByDateWithDiagnostics(ds, spec.Range, field)
	if spec.ValueField != "" {
		out = ByValues(out, spec.ValueField, spec.Values)
	}
	out = ByKeyword(out, spec.Keyword, spec.Fields)

	logger.Debugf("[filter.Apply] kind=%s input=%d output=%d unparseable=%d", ds.Kind(), ds.Len(), out.Len(), diag.Unparseable)
	return out, diag
}
