package take

// TakeAround returns a parser like TakeBetween whose taken span includes
// both delimiters.
//
// The scan positions itself at the first start-delimiter occurrence, then
// searches for the end delimiter strictly after the start delimiter's
// window ends, so identical start and end delimiters cannot satisfy each
// other. The final span is re-sliced from the position of the start
// delimiter by total length rather than re-scanned. As with TakeBetween,
// the prefix before the start delimiter is discarded.
func TakeAround[E comparable](start, end Condition[E]) Parser[E] {
	return func(input []E) ([]E, any, error) {
		fromStart, _, err := TakeUntil(start)(input)
		if err != nil {
			return nil, nil, noMatchf("Could not find start_delimiter=`%s` in input.", start.describe())
		}

		// The start delimiter sits at position 0 of fromStart, so this
		// cannot fail; it yields the exact elements the delimiter matched.
		afterStart, startSpan, err := TakeInclude(start)(fromStart)
		if err != nil {
			return nil, nil, noMatchf("Could not find start_delimiter=`%s` in input.", start.describe())
		}

		_, throughEnd, err := TakeInclude(end)(afterStart)
		if err != nil {
			return nil, nil, noMatchf(
				"Could not find end_delimiter=`%s` in input after start_delimiter=`%s`.",
				end.describe(), start.describe())
		}

		span := len(startSpan.([]E)) + len(throughEnd.([]E))
		rest, around, err := TakeN[E](span)(fromStart)
		if err != nil {
			return nil, nil, err
		}
		return rest, around, nil
	}
}
