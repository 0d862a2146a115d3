// Package source produces the datasets the dashboard views filter: the mock
// Lambda, SES and report feeds, and ad-hoc JSON files.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/songminj/logtrack/types"
)

// Source loads one dataset. now anchors the relative timestamps of mock feeds.
type Source interface {
	Kind() types.Kind
	Fetch(ctx context.Context, now time.Time) (types.Dataset, error)
}

type NewFunc func() Source

// Registered holds the built-in feeds by kind. File sources are built with NewFile.
var Registered = map[types.Kind]NewFunc{
	types.LambdaLog: func() Source { return &LambdaLogs{} },
	types.SESEvent:  func() Source { return &SESEvents{} },
	types.Report:    func() Source { return &Reports{} },
}

// New returns the registered source for kind.
func New(kind types.Kind) (Source, error) {
	newfunc, found := Registered[kind]
	if !found {
		return nil, fmt.Errorf("%w: no source registered for [%s]", types.ErrUnknownKind, kind)
	}
	return newfunc(), nil
}
