package take

// TakeBetween returns a parser that extracts the first span found between
// a start and an end delimiter, excluding both delimiters from taken. The
// end delimiter is also removed from the remainder; TakeBetweenKeepEnd
// leaves it in place.
//
// Everything before and including the start delimiter is consumed and
// discarded, so taken and rest together do not reproduce the full input;
// only the span and what follows it survive.
//
// The parser fails when the start delimiter is absent, when the end
// delimiter never occurs after it, or when the end delimiter cannot be
// removed from the remainder, each with a distinct diagnostic.
func TakeBetween[E comparable](start, end Condition[E]) Parser[E] {
	return takeBetween(start, end, true)
}

// TakeBetweenKeepEnd behaves like TakeBetween but keeps the end delimiter
// at the front of the remainder.
func TakeBetweenKeepEnd[E comparable](start, end Condition[E]) Parser[E] {
	return takeBetween(start, end, false)
}

func takeBetween[E comparable](start, end Condition[E], discardEnd bool) Parser[E] {
	return func(input []E) ([]E, any, error) {
		afterStart, _, err := TakeInclude(start)(input)
		if err != nil {
			return nil, nil, noMatchf("Could not find start_delimiter=`%s` in input.", start.describe())
		}

		rest, between, err := TakeUntil(end)(afterStart)
		if err != nil {
			return nil, nil, noMatchf(
				"Could not find end_delimiter=`%s` in input after start_delimiter=`%s`.",
				end.describe(), start.describe())
		}
		if !discardEnd {
			return rest, between, nil
		}

		rest, _, err = TakeInclude(end)(rest)
		if err != nil {
			return nil, nil, noMatchf("Could not remove end_delimiter=`%s` from the input.", end.describe())
		}
		return rest, between, nil
	}
}
