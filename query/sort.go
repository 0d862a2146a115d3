package query

import (
	"sort"

	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/typeutils"
)

// SortBy orders rows by field, keeping ties in their original order. Null
// values sort last in both directions. A field missing from the schema leaves
// the dataset as is.
func SortBy(ds types.Dataset, field string, desc bool) types.Dataset {
	if ds.Len() < 2 || !ds.Schema().Has(field) {
		return ds
	}

	rows := ds.Rows()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][field], rows[j][field]
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}

		cmp := typeutils.Compare(a, b)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return ds.WithRows(rows)
}
