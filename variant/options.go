package variant

// Option configures an Error during construction via (*Variant).E.
type Option func(*Error)

// WithPayload sets the payload mapping for the instance during E()
// construction. The top level of the provided map is defensively cloned.
func WithPayload(payload map[string]any) Option {
	return func(e *Error) { e.payload = clonePayload(payload) }
}

// WithField sets a single payload field during E() construction.
// The internal payload map is created on first use.
func WithField(key string, value any) Option {
	return func(e *Error) {
		if e.payload == nil {
			e.payload = map[string]any{}
		}

		e.payload[key] = value
	}
}

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option {
	return func(e *Error) { e.cause = cause }
}

// E is a minimal builder when you don’t want the map literal of New.
// With no options it is equivalent to a payload-less New().
func (v *Variant) E(opts ...Option) *Error {
	e := v.New()
	for _, o := range opts {
		o(e)
	}

	return e
}
