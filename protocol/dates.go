package protocol

import (
	"github.com/songminj/logtrack/utils"
	"github.com/songminj/logtrack/utils/typeutils"
)

// parseRange reads the --from and --to flags. Empty values stay unbounded and
// every bad value is reported, not only the first.
func parseRange(from, to string) (start, end *typeutils.Date, err error) {
	parse := func(value string, dst **typeutils.Date) func() error {
		return func() error {
			if value == "" {
				return nil
			}
			d, err := typeutils.ParseDate(value)
			if err != nil {
				return err
			}
			*dst = &d
			return nil
		}
	}

	err = utils.ErrExecSequential(
		utils.ErrExecFormat("invalid --from: %w", parse(from, &start)),
		utils.ErrExecFormat("invalid --to: %w", parse(to, &end)),
	)
	return start, end, err
}
