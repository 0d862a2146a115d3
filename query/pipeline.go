package query

import (
	"context"
	"fmt"
	"time"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/filter"
	"github.com/songminj/logtrack/source"
	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/logger"
)

var (
	lambdaSearchFields = []string{"function_name", "message", "request_id"}
	sesSearchFields    = []string{"mail_to", "subject", "message_id"}
	reportSearchFields = []string{"report_name", "description"}
)

// Lambda loads Lambda logs and applies date range, level and keyword filters,
// newest first.
func Lambda(ctx context.Context, src source.Source, now time.Time, q LogQuery) (types.Dataset, error) {
	ds, err := fetch(ctx, src, now, types.LambdaLog)
	if err != nil {
		return types.Dataset{}, err
	}

	out, _ := filter.Apply(ds, filter.Spec{
		Range:      q.Range(),
		Keyword:    q.Keyword,
		Fields:     lambdaSearchFields,
		ValueField: constants.LevelField,
		Values:     q.Levels,
	})
	return SortBy(out, constants.TimestampField, true), nil
}

// SES loads mail events. Events carry a delivery status rather than a level, so
// the level selection only narrows the result when ERROR is the sole level
// picked: then just bounced and complained mail is shown.
func SES(ctx context.Context, src source.Source, now time.Time, q LogQuery) (types.Dataset, error) {
	ds, err := fetch(ctx, src, now, types.SESEvent)
	if err != nil {
		return types.Dataset{}, err
	}

	spec := filter.Spec{
		Range:   q.Range(),
		Keyword: q.Keyword,
		Fields:  sesSearchFields,
	}
	if errorsOnly(q.Levels) {
		spec.ValueField = constants.StatusField
		spec.Values = constants.FailureStatuses
	}

	out, _ := filter.Apply(ds, spec)
	return SortBy(out, constants.TimestampField, true), nil
}

// Reports loads the report list, filtered by keyword and creation day, newest first.
func Reports(ctx context.Context, src source.Source, now time.Time, q ReportQuery) (types.Dataset, error) {
	ds, err := fetch(ctx, src, now, types.Report)
	if err != nil {
		return types.Dataset{}, err
	}

	spec := filter.Spec{
		TimestampField: constants.CreatedAtField,
		Keyword:        q.Keyword,
		Fields:         reportSearchFields,
	}
	if q.Date != nil {
		spec.Range = filter.Day(*q.Date)
	}

	out, _ := filter.Apply(ds, spec)
	return SortBy(out, constants.CreatedAtField, true), nil
}

func fetch(ctx context.Context, src source.Source, now time.Time, expected types.Kind) (types.Dataset, error) {
	if src.Kind() != expected {
		return types.Dataset{}, fmt.Errorf("%w: expected a %s source, got %s", types.ErrUnknownKind, expected, src.Kind())
	}

	ds, err := src.Fetch(ctx, now)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("failed to fetch %s dataset: %s", expected, err)
	}
	logger.Debugf("[query] fetched %d %s rows", ds.Len(), expected)
	return ds, nil
}

func errorsOnly(levels []string) bool {
	hasError := false
	for _, level := range levels {
		if level != "ERROR" {
			return false
		}
		hasError = true
	}
	return hasError
}
