package take

// AllOf returns a parser that threads the remainder through each child
// parser in fixed order. On success taken is a []any holding every
// child's taken value in invocation order. A child consuming nothing is
// legal and does not stop the chain.
//
// On the first child failure the chain stops and the error reports the
// failing parser's zero-based index and its diagnostic; the child error
// is also reachable through errors.Is / errors.As.
func AllOf[E comparable](parsers ...Parser[E]) Parser[E] {
	return func(input []E) ([]E, any, error) {
		rest := input
		taken := make([]any, 0, len(parsers))
		for i, p := range parsers {
			next, t, err := p(rest)
			if err != nil {
				return nil, nil, combinatorWrap(err, "AllOf failed because parser %d failed with error: %s", i, err)
			}
			rest = next
			taken = append(taken, t)
		}
		return rest, taken, nil
	}
}
