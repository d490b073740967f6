// Package variant provides a factory for discriminated error variants.
//
// New mints a Variant: a fixed discriminant label bound to a constructor.
// Instances built by that constructor carry the label plus any payload
// fields supplied at construction, implement contract.Error, and integrate
// with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Discriminant fixed at mint time, immutable on every instance
//   - Payload held in its own map, so payload keys can never overwrite the
//     discriminant or message
//   - Defensive top-level cloning of the payload on write and read
//   - Pointer-scoped identity: errors.Is(err, v) matches only instances v
//     minted, never instances of another variant with an equal label
//   - Optional underlying cause preserved for errors.Is / errors.As
//
// Construction options are available via E and With* helpers, Wrap attaches
// a cause, and Ensure adapts arbitrary errors into a variant scheme. Typed
// offers the same surface with a concrete payload type instead of a map.
package variant
