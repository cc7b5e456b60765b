package take

import (
	"errors"
	"fmt"
)

// ErrNoMatch is the sentinel for primitive and delimiter failures: a
// condition or delimiter was never found, or a length constraint was
// violated. Check with errors.Is; the message text itself is part of the
// diagnostic contract and stays stable.
var ErrNoMatch = errors.New("take: no match")

// ErrCombinator is the sentinel for aggregate combinator failures. The
// wrapped message carries the child diagnostics.
var ErrCombinator = errors.New("take: combinator failed")

// parseError keeps the surfaced message verbatim while still unwrapping to
// a sentinel (and, for combinators, to the failing child's error).
type parseError struct {
	msg   string
	kind  error
	cause error
}

func (e *parseError) Error() string { return e.msg }

func (e *parseError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func noMatchf(format string, args ...any) error {
	return &parseError{msg: fmt.Sprintf(format, args...), kind: ErrNoMatch}
}

func combinatorf(format string, args ...any) error {
	return &parseError{msg: fmt.Sprintf(format, args...), kind: ErrCombinator}
}

func combinatorWrap(cause error, format string, args ...any) error {
	return &parseError{msg: fmt.Sprintf(format, args...), kind: ErrCombinator, cause: cause}
}
