package take

// TakeN returns a parser that consumes the first n input elements. A
// negative n consumes everything up to the final |n| elements, leaving
// those as the remainder.
//
// The parser fails when the input holds fewer than |n| elements. TakeN(0)
// always succeeds and consumes nothing.
func TakeN[E comparable](n int) Parser[E] {
	return func(input []E) ([]E, any, error) {
		size := n
		if size < 0 {
			size = -size
		}
		if len(input) < size {
			return nil, nil, noMatchf("Can't take N=%d from string of length=%d.", n, len(input))
		}
		cut := n
		if n < 0 {
			cut = len(input) + n
		}
		return input[cut:], input[:cut], nil
	}
}
