// Package zaphandler reports failed assertions to a zap logger instead of
// terminating, for hosted programs that prefer to keep running.
package zaphandler

import (
	"go.uber.org/zap"

	"github.com/clktmr/estd/debug"
)

// New returns a debug.HandlerFunc logging every failure at error level. The
// operation that failed its precondition is skipped by the caller.
func New(logger *zap.Logger) debug.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(file string, line int, test string) {
		fields := make([]zap.Field, 0, 3)
		if file != "" {
			fields = append(fields, zap.String("file", file))
		}
		if line != 0 {
			fields = append(fields, zap.Int("line", line))
		}
		if test != "" {
			fields = append(fields, zap.String("test", test))
		}
		logger.Error(debug.ErrAssertion.Error(), fields...)
	}
}
