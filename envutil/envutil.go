// Package envutil provides typed readers for environment variables with
// functional-option defaults. It backs the logging and settings packages,
// which read their process-wide configuration from the environment.
package envutil

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var (
	errMissing      = errors.New("environment variable is not set")
	errBadLogLevel  = errors.New("unrecognized log level")
	errNotANumber   = errors.New("value is not an integer")
	errNotAFlag     = errors.New("value is not a boolean")
	errEmptyEnvelop = errors.New("value is empty")
)

// Option adjusts a freshly-read Reader, e.g. by supplying a default.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a fallback value used when the environment variable
// is not set. Parse errors are not masked by a default.
func Default[T any](value T) Option[T] {
	return func(r Reader[T]) Reader[T] {
		if r.err == nil && !r.present {
			r.present = true
			r.value = value
		}

		return r
	}
}

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	rdr := get(key)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Bool returns a Reader that parses the variable as a boolean
// (the forms accepted by strconv.ParseBool).
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	rdr := Map(get(key), func(s string) (bool, error) {
		v, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return false, errNotAFlag
		}

		return v, nil
	})

	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Int returns a Reader that parses the variable as a decimal integer.
func Int(key string, opts ...Option[int]) Reader[int] {
	rdr := Map(get(key), func(s string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, errNotANumber
		}

		return v, nil
	})

	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// SlogLevel returns a Reader that parses the variable as a slog level
// ("debug", "info", "warn", "error", case-insensitive).
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(key), func(s string) (slog.Level, error) {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "":
			return 0, errEmptyEnvelop
		case "debug":
			return slog.LevelDebug, nil
		case "info":
			return slog.LevelInfo, nil
		case "warn", "warning":
			return slog.LevelWarn, nil
		case "error":
			return slog.LevelError, nil
		default:
			return 0, errBadLogLevel
		}
	})

	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}
