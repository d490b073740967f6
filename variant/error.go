package variant

import (
	"fmt"

	"github.com/next-trace/scg-variant/contract"
)

// Error is an instance of a variant: the discriminant label of the variant
// that minted it, plus the payload fields supplied at construction.
//
// All fields are fixed at construction. The discriminant always equals the
// minting variant's label, and payload reads go through defensive clones, so
// neither can be changed through the standard assignment path.
type Error struct {
	variant *Variant
	label   string
	payload map[string]any
	cause   error
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	// Compact, dev-friendly string. Clients should read fields via getters.
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.label, e.cause)
	}

	return e.label
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the exact *Variant that minted e. Labels are
// never compared: an instance from one variant does not match another
// variant minted with an equal label.
func (e *Error) Is(target error) bool {
	v, ok := target.(*Variant)

	return ok && v == e.variant
}

// ------ contract.Error getters

// Discriminant returns the minting variant's label.
func (e *Error) Discriminant() string { return e.label }

// Payload returns a fresh top-level clone of the payload fields, exactly the
// keys supplied at construction. Mutating the returned map never reaches the
// stored payload. A payload-less instance returns nil.
func (e *Error) Payload() map[string]any { return clonePayload(e.payload) }

// Field returns one payload value and whether its key was supplied at
// construction.
func (e *Error) Field(key string) (any, bool) {
	v, ok := e.payload[key]

	return v, ok
}

// Variant returns the variant that minted e.
func (e *Error) Variant() *Variant { return e.variant }
