package checker

// Checker tests runtime values against exactly one type description.
// Implementations are stateless and safe for concurrent use; checking the
// same value twice always yields the same outcome.
type Checker interface {
	// Check tests the value. On success the original value is returned
	// unchanged (checks never transform). On failure the returned error is
	// a *Mismatch chain describing where and how the value fell short.
	Check(value any) (any, error)
}

// Run checks a value and, on failure, wraps the error with one level of
// positional context. This is how container checkers (and the call-boundary
// layer) build the failure trace: each caller contributes the line that
// locates the failure at its own level.
func Run(c Checker, value any, contextMsg string) (any, error) {
	out, err := c.Check(value)
	if err != nil {
		return nil, wrap(contextMsg, err)
	}

	return out, nil
}
