package take

// TakeInclude returns a parser that consumes everything through and
// including the first window satisfying the condition; the remainder
// starts just after that window.
//
// The parser fails when the condition is never found. Unlike TakeUntil
// there is no consume-to-end variant.
func TakeInclude[E comparable](cond Condition[E]) Parser[E] {
	return func(input []E) ([]E, any, error) {
		i, ok := cond.find(input)
		if !ok {
			return nil, nil, cond.errNotFound()
		}
		cut := i + cond.window()
		return input[cut:], input[:cut], nil
	}
}
