package take

// OneOf returns a parser that tries each child parser against the same
// input in listed order and returns the first successful outcome
// unmodified. Priority is by position, not longest match.
//
// OneOf panics when constructed with no parsers: that is a programming
// error, not a data condition.
func OneOf[E comparable](parsers ...Parser[E]) Parser[E] {
	if len(parsers) == 0 {
		panic("take: OneOf requires at least one parser")
	}
	return func(input []E) ([]E, any, error) {
		for _, p := range parsers {
			if rest, taken, err := p(input); err == nil {
				return rest, taken, nil
			}
		}
		return nil, nil, combinatorf("None or the parsers succeeded.")
	}
}
