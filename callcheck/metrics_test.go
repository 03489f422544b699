package callcheck

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/typecheck/checker"
	"github.com/amp-labs/typecheck/tests"
	"github.com/amp-labs/typecheck/typedesc"
)

// TestWarnOnlyMismatchIsNotCountedAsSuccess verifies that a warn-only call
// whose arguments mismatched counts only toward the error series, so the
// args-stage metric stays a faithful mismatch rate even though the call
// proceeds.
//
// Note: Cannot use t.Parallel() because this test reads global Prometheus
// metrics and swaps the default logger.
//
//nolint:paralleltest // Test reads global Prometheus metric state
func TestWarnOnlyMismatchIsNotCountedAsSuccess(t *testing.T) {
	previous := slog.Default()
	slog.SetDefault(slogt.New(t))

	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int},
		},
	}, WithCheckArgs(true), WithWarnOnly(true))
	require.NoError(t, err)

	successBefore := testutil.ToFloat64(callChecksTotal.WithLabelValues(stageArgs, "false"))
	errorBefore := testutil.ToFloat64(callChecksTotal.WithLabelValues(stageArgs, "true"))

	require.NoError(t, binding.CheckCallArgs(tests.GetUniqueContext(t), []any{"not an int"}, nil))

	successAfter := testutil.ToFloat64(callChecksTotal.WithLabelValues(stageArgs, "false"))
	errorAfter := testutil.ToFloat64(callChecksTotal.WithLabelValues(stageArgs, "true"))

	assert.InDelta(t, errorBefore+1, errorAfter, 0, "the mismatch counts as an error")
	assert.InDelta(t, successBefore, successAfter, 0, "the same call must not also count as a success")
}

// TestCleanCallCountsAsSuccess pins the complementary case: a call with no
// mismatches increments the success series exactly once.
//
//nolint:paralleltest // Test reads global Prometheus metric state
func TestCleanCallCountsAsSuccess(t *testing.T) {
	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int},
		},
	}, WithCheckArgs(true))
	require.NoError(t, err)

	successBefore := testutil.ToFloat64(callChecksTotal.WithLabelValues(stageArgs, "false"))

	require.NoError(t, binding.CheckCallArgs(tests.GetUniqueContext(t), []any{7}, nil))

	successAfter := testutil.ToFloat64(callChecksTotal.WithLabelValues(stageArgs, "false"))

	assert.InDelta(t, successBefore+1, successAfter, 0)
}
