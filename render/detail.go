package render

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/typeutils"
)

// Detail pretty prints row idx of ds as JSON.
func Detail(ds types.Dataset, idx int) (string, error) {
	row, err := ds.Row(idx)
	if err != nil {
		return "", err
	}

	out := make(map[string]any, len(row))
	for key, value := range row {
		switch val := value.(type) {
		case time.Time:
			out[key] = val.Format(constants.TimestampLayout)
		case typeutils.Date:
			out[key] = val.String()
		default:
			out[key] = val
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
