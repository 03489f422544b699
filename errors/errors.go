// Package errors defines the sentinel errors shared across the typecheck
// module, plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrMismatch is the sentinel for every runtime type-check failure.
	// Errors produced by the checker package satisfy errors.Is(err, ErrMismatch)
	// regardless of how deeply the failure is nested.
	ErrMismatch = errors.New("type mismatch")

	// ErrMissingAnnotation is returned at binding-construction time when
	// annotations are forced and a parameter or return has no type description.
	ErrMissingAnnotation = errors.New("missing type annotation")

	// ErrBadDefault is returned at binding-construction time when a declared
	// default value does not satisfy its parameter's type description.
	ErrBadDefault = errors.New("incompatible default value")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a
// single combined error. Use this when you need to collect errors from
// multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
