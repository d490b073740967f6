package variant

import (
	"errors"
)

// Ensure converts any error to an *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - otherwise wrap it as an instance of fallback with err as the cause
func Ensure(err error, fallback *Variant) *Error {
	if err == nil {
		return nil
	}

	var e *Error

	if errors.As(err, &e) {
		return e
	}

	return fallback.Wrap(err)
}
