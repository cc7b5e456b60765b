package take

// TakeUntil returns a parser that consumes everything strictly before the
// first window satisfying the condition. The satisfying window itself
// stays at the front of the remainder; TakeInclude is the variant that
// consumes through it.
//
// The parser fails when the condition is never found.
func TakeUntil[E comparable](cond Condition[E]) Parser[E] {
	return takeUntil(cond, true)
}

// TakeUntilOrEnd behaves like TakeUntil but never fails: when the
// condition is not found it consumes the entire input.
func TakeUntilOrEnd[E comparable](cond Condition[E]) Parser[E] {
	return takeUntil(cond, false)
}

func takeUntil[E comparable](cond Condition[E], failOnNoMatch bool) Parser[E] {
	return func(input []E) ([]E, any, error) {
		if i, ok := cond.find(input); ok {
			return input[i:], input[:i], nil
		}
		if failOnNoMatch {
			return nil, nil, cond.errNotFound()
		}
		return input[len(input):], input, nil
	}
}
