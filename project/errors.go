package project

import (
	"errors"
	"fmt"

	goerrors "github.com/gruntwork-io/go-commons/errors"
)

// InvariantError reports a show description the engine refuses to render, such
// as a ramp without its end state or a palette without the referenced colour.
type InvariantError struct {
	Reason string
}

func (e InvariantError) Error() string {
	return "invariant violation: " + e.Reason
}

// Invariantf builds an InvariantError carrying a stack trace.
func Invariantf(format string, args ...interface{}) error {
	return goerrors.WithStackTrace(InvariantError{Reason: fmt.Sprintf(format, args...)})
}

// IsInvariantViolation reports whether err, or anything it wraps, is an InvariantError.
func IsInvariantViolation(err error) bool {
	var target InvariantError
	return errors.As(goerrors.Unwrap(err), &target) || errors.As(err, &target)
}
