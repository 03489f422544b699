package envutil

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/amp-labs/typecheck/optional"
)

// Reader holds the outcome of reading a single environment variable,
// possibly transformed into a typed value. Readers are immutable; options
// and Map produce new Readers.
type Reader[T any] struct {
	key     string
	present bool
	value   T
	err     error
}

// NewReader returns a Reader for the given raw data. If you feel like
// you want to branch out from using the environment variables directly,
// this will provide the same functionality - except you need to provide
// the initial values yourself.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

// Key returns the environment variable name this Reader was built from.
func (r Reader[T]) Key() string {
	return r.key
}

// Present returns true if the environment variable was set (or a default
// was applied).
func (r Reader[T]) Present() bool {
	return r.present
}

// Value returns the typed value, or an error if the variable was missing
// or could not be parsed.
func (r Reader[T]) Value() (T, error) { //nolint:ireturn
	var zero T

	if r.err != nil {
		return zero, fmt.Errorf("env %q: %w", r.key, r.err)
	}

	if !r.present {
		return zero, fmt.Errorf("env %q: %w", r.key, errMissing)
	}

	return r.value, nil
}

// ValueOrElse returns the typed value, or the given fallback if the variable
// was missing or could not be parsed.
func (r Reader[T]) ValueOrElse(fallback T) T { //nolint:ireturn
	if r.err != nil || !r.present {
		return fallback
	}

	return r.value
}

// ValueOrFatal returns the typed value, or logs the problem and exits the
// process. Use this only during startup configuration, where a malformed
// environment is unrecoverable.
func (r Reader[T]) ValueOrFatal() T { //nolint:ireturn
	value, err := r.Value()
	if err != nil {
		slog.Error("invalid environment configuration", "error", err)

		os.Exit(1)
	}

	return value
}

// Optional returns the value as an optional.Value: Some if the variable was
// present and parsed, None otherwise.
func (r Reader[T]) Optional() optional.Value[T] {
	if r.err != nil || !r.present {
		return optional.None[T]()
	}

	return optional.Some(r.value)
}

// Map transforms a Reader's value with the given function, propagating
// missing values and parse errors unchanged.
func Map[T any, U any](r Reader[T], f func(T) (U, error)) Reader[U] {
	out := Reader[U]{
		key:     r.key,
		present: r.present,
		err:     r.err,
	}

	if r.err != nil || !r.present {
		return out
	}

	value, err := f(r.value)
	if err != nil {
		out.err = err

		return out
	}

	out.value = value

	return out
}
