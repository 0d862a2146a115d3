package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/logger"
	"github.com/songminj/logtrack/utils/typeutils"
)

// ByKeyword keeps rows where at least one candidate field contains keyword,
// ignoring case. Matching is a plain substring test on Unicode case-folded text.
//
// A nil fields slice searches every textual column of the schema. A non-nil
// slice is used as given, minus names the schema does not have; if nothing is
// left to search the dataset is returned unchanged.
func ByKeyword(ds types.Dataset, keyword string, fields []string) types.Dataset {
	if keyword == "" || ds.Empty() {
		return ds
	}

	candidates := resolveFields(ds.Schema(), fields)
	if len(candidates) == 0 {
		logger.Debugf("[ByKeyword] no searchable columns in %s dataset, keyword %q ignored", ds.Kind(), keyword)
		return ds
	}

	// a Caser carries state and must not be shared between goroutines
	folder := cases.Fold()
	needle := folder.String(keyword)

	return ds.Where(func(row types.Record) bool {
		for _, field := range candidates {
			value, ok := row.Get(field)
			if !ok || value == nil {
				continue
			}
			if strings.Contains(folder.String(typeutils.Stringify(value)), needle) {
				return true
			}
		}
		return false
	})
}

func resolveFields(schema types.Schema, fields []string) []string {
	if fields == nil {
		return schema.TextualColumns()
	}

	resolved := make([]string, 0, len(fields))
	for _, field := range fields {
		if !schema.Has(field) {
			logger.Debugf("[ByKeyword] dropping unknown field [%s]", field)
			continue
		}
		resolved = append(resolved, field)
	}
	return resolved
}
