// Package tests provides utilities for managing test context with unique
// identifiers and test metadata. It allows tests to carry test-specific
// information (test name, unique ID) through context.Context, making it
// easier to correlate test execution with logs or external resources.
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/amp-labs/typecheck/contexts"
)

// contextKey is a private type used for storing test metadata in context.Context.
// Using a custom type instead of string prevents collisions with other packages
// that might use the same key names.
type contextKey string

const (
	// testIdKey is the context key for storing the unique test identifier.
	// The test ID is a UUID prefixed with "test-".
	testIdKey contextKey = "testId"

	// testNameKey is the context key for storing the test name, as reported
	// by testing.T.Name() (including the subtest path).
	testNameKey contextKey = "testName"
)

// GetUniqueContext creates a new context derived from t.Context() that
// includes a unique test identifier (UUID with "test-" prefix) and the test
// name from t.Name(). Use it wherever a test needs a context whose log
// output can be traced back to the test run.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	return contexts.WithMultipleValues[contextKey](context.Background(), map[contextKey]any{
		testIdKey:   "test-" + uuid.New().String(),
		testNameKey: t.Name(),
	})
}

// GetTestId retrieves the unique test identifier from the context.
func GetTestId(ctx context.Context) (string, bool) {
	return contexts.GetValue[contextKey, string](ctx, testIdKey)
}

// GetTestName retrieves the test name from the context.
func GetTestName(ctx context.Context) (string, bool) {
	return contexts.GetValue[contextKey, string](ctx, testNameKey)
}
