// Package contract exposes the minimal error interface used by other packages.
//
// Implementations must ensure Payload returns a defensive copy and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Keep Discriminant() fixed for the lifetime of the value.
//   - Ensure Payload() returns a defensive copy (never the internal map).
//   - Support errors.Unwrap via Unwrap().
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal and transport-agnostic.
type Error interface {
	error
	// Discriminant returns the variant label the value was minted with.
	Discriminant() string
	// Payload returns a defensive copy; NEVER return the internal map directly.
	Payload() map[string]any
	// Field reports a single payload value and whether its key was supplied
	// at construction.
	Field(key string) (any, bool)
	Unwrap() error
}
