package take

import "fmt"

type conditionKind uint8

const (
	condElement conditionKind = iota
	condSequence
	condPredicate
)

// Condition is the match criterion a primitive tests against its input.
// It is one of three closed cases decided at construction:
//
//   - Element: a single value compared by equality at one input position.
//   - Sequence: an ordered run of values compared as a contiguous window.
//   - Predicate: a boolean function applied to a window of declared size.
//
// The comparison window length is 1 for an element, the sequence's own
// length, or the predicate's declared arity. A length-1 Sequence behaves
// exactly like the equivalent Element condition.
type Condition[E comparable] struct {
	kind     conditionKind
	element  E
	sequence []E
	pred     func(window []E) bool
	arity    int
	name     string
}

// Element matches a single input position by equality.
func Element[E comparable](v E) Condition[E] {
	return Condition[E]{kind: condElement, element: v}
}

// Sequence matches a contiguous window by elementwise equality. The
// sequence must hold at least one element.
func Sequence[E comparable](seq []E) Condition[E] {
	if len(seq) == 0 {
		panic("take: Sequence condition requires at least one element")
	}
	return Condition[E]{kind: condSequence, sequence: seq}
}

// Text is shorthand for Sequence over the runes of s, or Element for a
// single-rune s.
func Text(s string) Condition[rune] {
	rs := []rune(s)
	if len(rs) == 1 {
		return Element(rs[0])
	}
	return Sequence(rs)
}

// Predicate matches a window of exactly arity contiguous elements when fn
// reports true for it. The window size is declared here, never inferred:
// fn is only ever called with a slice of arity elements. The name appears
// in diagnostics when the predicate is never satisfied.
func Predicate[E comparable](name string, arity int, fn func(window []E) bool) Condition[E] {
	if arity < 1 {
		panic("take: Predicate condition requires arity >= 1")
	}
	if fn == nil {
		panic("take: Predicate condition requires a function")
	}
	return Condition[E]{kind: condPredicate, pred: fn, arity: arity, name: name}
}

// window is the number of contiguous elements the condition is tested
// against.
func (c Condition[E]) window() int {
	switch c.kind {
	case condSequence:
		return len(c.sequence)
	case condPredicate:
		return c.arity
	default:
		return 1
	}
}

// matchAt reports whether the window starting at i satisfies the
// condition. Windows that would read past the end of input never match.
func (c Condition[E]) matchAt(input []E, i int) bool {
	switch c.kind {
	case condElement:
		return input[i] == c.element
	case condSequence:
		if i+len(c.sequence) > len(input) {
			return false
		}
		for j, want := range c.sequence {
			if input[i+j] != want {
				return false
			}
		}
		return true
	default:
		return c.pred(input[i : i+c.arity])
	}
}

// find returns the start index of the first satisfying window. Predicate
// windows stop scanning at len(input)-arity+1 so window reads stay in
// bounds.
func (c Condition[E]) find(input []E) (int, bool) {
	limit := len(input)
	if c.kind == condPredicate {
		limit = len(input) - c.arity + 1
	}
	for i := 0; i < limit; i++ {
		if c.matchAt(input, i) {
			return i, true
		}
	}
	return -1, false
}

// errNotFound is the never-found diagnostic; its shape depends on whether
// the condition is a value match or a predicate.
func (c Condition[E]) errNotFound() error {
	if c.kind == condPredicate {
		return noMatchf("Could not find where condition=`%s` evaluated to True.", c.name)
	}
	return noMatchf("Could not find condition=`%s` in input.", c.describe())
}

// describe renders the condition for diagnostics. Rune and byte conditions
// render as text so string-domain messages stay readable.
func (c Condition[E]) describe() string {
	switch c.kind {
	case condElement:
		switch v := any(c.element).(type) {
		case rune:
			return string(v)
		case byte:
			return string([]byte{v})
		default:
			return fmt.Sprint(c.element)
		}
	case condSequence:
		switch v := any(c.sequence).(type) {
		case []rune:
			return string(v)
		case []byte:
			return string(v)
		default:
			return fmt.Sprint(c.sequence)
		}
	default:
		return c.name
	}
}
