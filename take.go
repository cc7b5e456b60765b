// Package take slices an ordered sequence into a consumed prefix and a
// remaining suffix, driven by pluggable match conditions.
//
// A parser is a plain function value from an input slice to an outcome.
// The four primitives (TakeN, TakeWhile, TakeUntil, TakeInclude) scan the
// input with a Condition; the choice combinators (OneOf, AllOf,
// PermutationOf) compose parsers into larger ones; TakeBetween and
// TakeAround extract delimited spans using only the primitives.
//
// Parsers never mutate their input and hold no per-call state, so a
// constructed parser can be shared and invoked concurrently. Calling the
// same parser twice on the same input yields the same outcome.
package take

import "fmt"

// Parser consumes a prefix of its input and returns the remainder together
// with the consumed value.
//
// For every parser in this package taken is a []E subslice of the input,
// except for the choice combinators, which return a []any of their child
// parsers' taken values. A caller-supplied Parser used inside a combinator
// may produce any taken value, but rest must always be a suffix of the
// input so the next parser can pick up where it left off.
//
// On failure rest and taken are nil and err carries the diagnostic. The
// error message text is stable and safe to surface verbatim.
type Parser[E comparable] func(input []E) (rest []E, taken any, err error)

// Runes converts a string into parser input.
func Runes(s string) []rune { return []rune(s) }

// Str renders a rest or taken value back into a string. Values that are
// not rune or byte sequences render with fmt.Sprint.
func Str(v any) string {
	switch x := v.(type) {
	case []rune:
		return string(x)
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}
