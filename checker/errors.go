package checker

import (
	"fmt"

	"github.com/amp-labs/typecheck/errors"
)

// Mismatch is the chained type-check failure. Each recursion level that
// catches a child failure wraps it with a positional context message; the
// innermost Mismatch states the concrete incompatibility. The full chain is
// rendered top-to-bottom by Error, one context per line, and the cause chain
// stays intact for errors.Is / errors.As.
type Mismatch struct {
	msg   string
	cause error
}

// newLeaf builds the innermost mismatch for a value that failed a shape or
// membership test, in the canonical form:
//
//	Expect: "<expected>". Actual "<runtime type>(<value>)".
func newLeaf(expected string, value any) *Mismatch {
	return &Mismatch{
		msg: fmt.Sprintf("Expect: %q. Actual %q.",
			expected, fmt.Sprintf("%T(%v)", value, value)),
	}
}

// newMismatch builds a mismatch with a custom leaf message, for failures
// that are not plain membership failures (e.g. tuple arity).
func newMismatch(msg string) *Mismatch {
	return &Mismatch{msg: msg}
}

// wrap adds one level of positional context around a child failure.
func wrap(msg string, cause error) *Mismatch {
	return &Mismatch{msg: msg, cause: cause}
}

// Message returns this level's context message without the rest of the chain.
func (e *Mismatch) Message() string {
	return e.msg
}

// Error renders the chain top-to-bottom, one context message per line, the
// concrete mismatch last.
func (e *Mismatch) Error() string {
	if e.cause == nil {
		return e.msg
	}

	return e.msg + "\n" + e.cause.Error()
}

// Unwrap exposes the child failure so the chain can be walked with the
// standard errors helpers.
func (e *Mismatch) Unwrap() error {
	return e.cause
}

// Is reports true for the ErrMismatch sentinel, so any chained failure
// satisfies errors.Is(err, errors.ErrMismatch) at every level.
func (e *Mismatch) Is(target error) bool {
	return target == errors.ErrMismatch
}
