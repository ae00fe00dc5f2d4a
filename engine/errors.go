package engine

import "github.com/pkg/errors"

// Programmer-contract violations: an invalid action parameter, a
// redaction violation, or a request with nothing to choose from is a bug
// in the caller, not a recoverable runtime condition. PerformAction
// records the detail on the state (GameState.ContractViolation) alongside
// ResultInvalid, wrapped with github.com/pkg/errors so a stack trace
// survives into the runner's failure log.
var (
	ErrInvalidAction      = errors.New("engine: invalid action parameter")
	ErrRedactionViolation = errors.New("engine: redaction violation")
	ErrNoLegalChoices     = errors.New("engine: no legal choices available")
)

// InvalidActionf wraps ErrInvalidAction with context.
func InvalidActionf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidAction, format, args...)
}
