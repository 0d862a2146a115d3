package filter

import (
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/typeutils"
)

// ByValues keeps rows whose field, stringified, equals one of values exactly.
// No values, no rows or a missing column return ds unchanged.
func ByValues(ds types.Dataset, field string, values []string) types.Dataset {
	if len(values) == 0 || ds.Empty() || !ds.Schema().Has(field) {
		return ds
	}

	allowed := make(map[string]struct{}, len(values))
	for _, value := range values {
		allowed[value] = struct{}{}
	}

	return ds.Where(func(row types.Record) bool {
		_, ok := allowed[typeutils.Stringify(row[field])]
		return ok
	})
}
