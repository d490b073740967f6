package variant

import "maps"

// Variant is one error kind: a discriminant label fixed at mint time, bound
// to a constructor for instances carrying that label.
//
// A *Variant doubles as an errors.Is target for the instances it minted.
// Identity is pointer-scoped: two variants minted with equal labels are
// independent, and instances of one never match the other.
type Variant struct {
	label string
}

// New mints a variant for label. It never fails and performs no validation;
// callers are responsible for choosing labels meaningful within their own
// discrimination scheme. Calling New twice with the same label yields two
// independent variants whose labels merely print identically.
func New(label string) *Variant {
	return &Variant{label: label}
}

// Label returns the discriminant label the variant was minted with.
func (v *Variant) Label() string { return v.label }

// Error implements the error interface so a *Variant can serve as an
// errors.Is target. The message is the label itself.
func (v *Variant) Error() string { return v.label }

// New constructs an instance of the variant. The optional payload mapping is
// copied shallowly: the top-level map is cloned, values pass through
// unmodified. Pass nothing for a payload-less instance.
func (v *Variant) New(payload ...map[string]any) *Error {
	e := &Error{variant: v, label: v.label}
	if len(payload) > 0 {
		e.payload = clonePayload(payload[0])
	}

	return e
}

// Wrap constructs an instance carrying cause, preserved for
// errors.Is / errors.As via Unwrap().
func (v *Variant) Wrap(cause error, payload ...map[string]any) *Error {
	e := v.New(payload...)
	e.cause = cause

	return e
}

// clonePayload copies the top level of in. Empty input normalizes to nil so
// a payload-less instance carries no extraneous map. Values are not
// deep-cloned; shared mutable values remain externally mutable.
func clonePayload(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	return maps.Clone(in)
}
