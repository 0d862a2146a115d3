package utils

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ErrExec executes a list of functions concurrently and returns the first error.
// The context passed to each function is cancelled as soon as one of them fails.
func ErrExec(ctx context.Context, functions ...func(ctx context.Context) error) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for _, one := range functions {
		group.Go(func() error {
			select {
			case <-groupCtx.Done(): // Check if the context is canceled
				return groupCtx.Err()
			default:
				return one(groupCtx)
			}
		})
	}

	return group.Wait()
}

// ErrExecSequential executes a list of functions sequentially, accumulating every error.
func ErrExecSequential(functions ...func() error) error {
	var multErr error

	for _, one := range functions {
		if err := one(); err != nil {
			multErr = multierror.Append(multErr, err)
		}
	}

	return multErr
}

// ErrExecFormat formats the error returned from a function according to the provided format string.
func ErrExecFormat(format string, function func() error) func() error {
	return func() error {
		if err := function(); err != nil {
			return fmt.Errorf(format, err)
		}
		return nil
	}
}
