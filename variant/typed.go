package variant

import "fmt"

// Typed is a variant whose payload is a concrete type P instead of a field
// map. It mirrors Variant: the label is fixed at mint time, identity is
// pointer-scoped, and a *Typed[P] serves as an errors.Is target for the
// instances it minted.
type Typed[P any] struct {
	label string
}

// NewTyped mints a typed variant for label. Like New, it never fails and
// performs no validation; two calls with the same label yield independent
// variants.
func NewTyped[P any](label string) *Typed[P] {
	return &Typed[P]{label: label}
}

// Label returns the discriminant label the variant was minted with.
func (t *Typed[P]) Label() string { return t.label }

// Error implements the error interface so a *Typed can serve as an
// errors.Is target. The message is the label itself.
func (t *Typed[P]) Error() string { return t.label }

// New constructs an instance carrying payload. P is copied by value; shared
// mutable state reachable through P remains externally mutable.
func (t *Typed[P]) New(payload P) *TypedError[P] {
	return &TypedError[P]{variant: t, label: t.label, payload: payload}
}

// Wrap constructs an instance carrying payload and cause, the cause
// preserved for errors.Is / errors.As via Unwrap().
func (t *Typed[P]) Wrap(cause error, payload P) *TypedError[P] {
	e := t.New(payload)
	e.cause = cause

	return e
}

// TypedError is an instance of a typed variant. All fields are fixed at
// construction.
type TypedError[P any] struct {
	variant *Typed[P]
	label   string
	payload P
	cause   error
}

func (e *TypedError[P]) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.label, e.cause)
	}

	return e.label
}

func (e *TypedError[P]) Unwrap() error { return e.cause }

// Is reports whether target is the exact *Typed that minted e.
func (e *TypedError[P]) Is(target error) bool {
	t, ok := target.(*Typed[P])

	return ok && t == e.variant
}

// Discriminant returns the minting variant's label.
func (e *TypedError[P]) Discriminant() string { return e.label }

// Payload returns the payload by value.
func (e *TypedError[P]) Payload() P { return e.payload }

// Variant returns the typed variant that minted e.
func (e *TypedError[P]) Variant() *Typed[P] { return e.variant }
