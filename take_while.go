package take

// TakeWhile returns a parser that consumes the longest prefix over which
// the condition keeps holding. It never fails: when the condition does not
// hold at the start, it succeeds consuming nothing.
//
// Element and sequence conditions are tested in steps of the window
// length, so the consumed prefix is a whole number of windows. Predicate
// conditions slide one position at a time; when the predicate first
// reports false after at least one true window, the consumed prefix keeps
// the window's overlap (window length minus one extra elements), matching
// the windowed scan.
func TakeWhile[E comparable](cond Condition[E]) Parser[E] {
	return func(input []E) ([]E, any, error) {
		if cond.kind == condPredicate {
			return takeWhilePredicate(input, cond)
		}
		return takeWhileMatch(input, cond)
	}
}

func takeWhileMatch[E comparable](input []E, cond Condition[E]) ([]E, any, error) {
	size := cond.window()
	for i := 0; i < len(input); i += size {
		if !cond.matchAt(input, i) {
			return input[i:], input[:i], nil
		}
	}
	return input[len(input):], input, nil
}

func takeWhilePredicate[E comparable](input []E, cond Condition[E]) ([]E, any, error) {
	stop := len(input) - cond.arity + 1
	for i := 0; i < stop; i++ {
		if !cond.matchAt(input, i) {
			if i == 0 {
				return input, input[:0], nil
			}
			cut := i + cond.arity - 1
			return input[cut:], input[:cut], nil
		}
	}
	// No window ever failed; inputs shorter than the window also land
	// here and are consumed whole.
	return input[len(input):], input, nil
}
