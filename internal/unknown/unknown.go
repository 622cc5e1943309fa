// Package unknown is the default arm of every component update.
package unknown

import (
	"fmt"

	"shell/internal/logging"
	"shell/internal/reflex"
)

// Update leaves model untouched and records that action had no handler.
func Update[M, A any](model M, action A) (M, reflex.Effects[A]) {
	logger := logging.Default()
	if logger.Enabled(logging.Debug) {
		logger.Debug("unknown action", logging.F("action", fmt.Sprintf("%T", action)), logging.F("model", fmt.Sprintf("%T", model)))
	}
	return model, reflex.None[A]()
}
