package rules

import (
	"fmt"
	"unicode"

	"github.com/jacoelho/take"
)

// Built-in predicate names usable wherever a condition is expected.
const (
	predDigit  = "digit"
	predLetter = "letter"
	predSpace  = "space"
	predUpper  = "upper"
	predLower  = "lower"
)

var builtins = map[string]take.Condition[rune]{
	predDigit:  take.Predicate(predDigit, 1, func(w []rune) bool { return unicode.IsDigit(w[0]) }),
	predLetter: take.Predicate(predLetter, 1, func(w []rune) bool { return unicode.IsLetter(w[0]) }),
	predSpace:  take.Predicate(predSpace, 1, func(w []rune) bool { return unicode.IsSpace(w[0]) }),
	predUpper:  take.Predicate(predUpper, 1, func(w []rune) bool { return unicode.IsUpper(w[0]) }),
	predLower:  take.Predicate(predLower, 1, func(w []rune) bool { return unicode.IsLower(w[0]) }),
}

// Condition resolves a YAML condition string. Built-in predicate names
// map to character-class predicates; anything else matches literally.
func Condition(s string) (take.Condition[rune], error) {
	if s == "" {
		return take.Condition[rune]{}, fmt.Errorf("%w: empty condition", ErrRules)
	}
	if cond, ok := builtins[s]; ok {
		return cond, nil
	}
	return take.Text(s), nil
}

// Compile turns a pipeline into a single parser. Pipelines with more
// than one step run them in order the way AllOf does.
func (p Pipeline) Compile() (take.Parser[rune], error) {
	parsers, err := compileSteps(p.Steps)
	if err != nil {
		return nil, fmt.Errorf("%w: pipeline %q: %v", ErrRules, p.Name, err)
	}
	if len(parsers) == 1 {
		return parsers[0], nil
	}
	return take.AllOf(parsers...), nil
}

func compileSteps(steps []Step) ([]take.Parser[rune], error) {
	parsers := make([]take.Parser[rune], 0, len(steps))
	for i, step := range steps {
		parser, err := step.compile()
		if err != nil {
			return nil, fmt.Errorf("step %d: %v", i, err)
		}
		parsers = append(parsers, parser)
	}
	return parsers, nil
}

func (s Step) compile() (take.Parser[rune], error) {
	switch {
	case s.N != nil:
		return take.TakeN[rune](*s.N), nil
	case s.While != nil:
		cond, err := Condition(s.While.Condition)
		if err != nil {
			return nil, err
		}
		return take.TakeWhile(cond), nil
	case s.Until != nil:
		cond, err := Condition(s.Until.Condition)
		if err != nil {
			return nil, err
		}
		if s.Until.OrEnd {
			return take.TakeUntilOrEnd(cond), nil
		}
		return take.TakeUntil(cond), nil
	case s.Include != nil:
		cond, err := Condition(s.Include.Condition)
		if err != nil {
			return nil, err
		}
		return take.TakeInclude(cond), nil
	case s.Between != nil:
		start, err := Condition(s.Between.Start)
		if err != nil {
			return nil, err
		}
		end, err := Condition(s.Between.End)
		if err != nil {
			return nil, err
		}
		if s.Between.KeepEnd {
			return take.TakeBetweenKeepEnd(start, end), nil
		}
		return take.TakeBetween(start, end), nil
	case s.Around != nil:
		start, err := Condition(s.Around.Start)
		if err != nil {
			return nil, err
		}
		end, err := Condition(s.Around.End)
		if err != nil {
			return nil, err
		}
		return take.TakeAround(start, end), nil
	case s.OneOf != nil:
		nested, err := compileSteps(s.OneOf)
		if err != nil {
			return nil, err
		}
		return take.OneOf(nested...), nil
	case s.AllOf != nil:
		nested, err := compileSteps(s.AllOf)
		if err != nil {
			return nil, err
		}
		return take.AllOf(nested...), nil
	case s.PermutationOf != nil:
		nested, err := compileSteps(s.PermutationOf)
		if err != nil {
			return nil, err
		}
		return take.PermutationOf(nested...), nil
	default:
		return nil, fmt.Errorf("step sets no kind")
	}
}
