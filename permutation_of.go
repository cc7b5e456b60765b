package take

import (
	"fmt"
	"strconv"
	"strings"
)

// PermutationOf returns a parser that applies every child parser exactly
// once, discovering the order by trial: each round it tries the
// not-yet-succeeded parsers in declared order against the current
// remainder and commits to the first that succeeds. Declared order is
// therefore a tie-break priority when several parsers could claim the
// same position.
//
// The search is greedy and committed: once a parser has claimed input,
// alternative orderings are never explored, so an early claim can
// foreclose a later parser and fail the whole combinator even though a
// backtracking search would have found an order that works. That is the
// intended behavior, not an oversight.
//
// On success taken is a []any of the children's taken values in the order
// they were claimed. All bookkeeping is local to the call, so a
// PermutationOf parser is safe for concurrent use.
func PermutationOf[E comparable](parsers ...Parser[E]) Parser[E] {
	return func(input []E) ([]E, any, error) {
		rest := input
		taken := make([]any, 0, len(parsers))
		claimed := make([]bool, len(parsers))

		for round := 0; round < len(parsers); round++ {
			for i, p := range parsers {
				if claimed[i] {
					continue
				}
				next, t, err := p(rest)
				if err != nil {
					continue
				}
				rest = next
				taken = append(taken, t)
				claimed[i] = true
				break
			}
		}

		var failed, succeeded []int
		for i, ok := range claimed {
			if ok {
				succeeded = append(succeeded, i)
			} else {
				failed = append(failed, i)
			}
		}

		if len(failed) == 0 {
			return rest, taken, nil
		}

		if len(failed) == 1 {
			return nil, nil, combinatorf(
				"PermutationOf failed because parser `%d` never succeeded. The parsers `%s` all succeeded",
				failed[0], formatIndices(succeeded))
		}

		msg := fmt.Sprintf("PermutationOf failed because parsers `%s` never succeeded.", formatIndices(failed))
		switch len(succeeded) {
		case 0:
			msg += " No parsers succeeded."
		case 1:
			msg += fmt.Sprintf(" The parser `%d` succeeded.", succeeded[0])
		default:
			msg += fmt.Sprintf(" The parsers `%s` all succeeded.", formatIndices(succeeded))
		}
		return nil, nil, combinatorf("%s", msg)
	}
}

// formatIndices renders parser indices as `[0, 2]` to keep the diagnostic
// shape stable.
func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, n := range indices {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
