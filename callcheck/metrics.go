package callcheck

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	stageDefaults = "defaults"
	stageArgs     = "args"
	stageReturn   = "return"
)

// callChecksTotal counts call-boundary checks by stage and outcome.
//
// Labels:
//   - stage: "defaults" (eager default validation at binding construction),
//     "args" (argument validation before the callable runs), or "return"
//     (result validation after it runs).
//   - has_error: "true" if the stage found a mismatch, "false" otherwise.
//
// Under the warn-only policy failed stages still count as errors here even
// though the call proceeds, which keeps the metric a faithful mismatch rate.
var callChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "typecheck_call_checks_total",
	Help: "The total number of call-boundary type checks, by stage and outcome",
}, []string{"stage", "has_error"})

// observeStage records one call-boundary check.
func observeStage(stage string, err error) {
	callChecksTotal.WithLabelValues(stage, strconv.FormatBool(err != nil)).Inc()
}

// init pre-initializes every label combination so dashboards and rate()
// queries see consistent time series from process start.
func init() {
	for _, stage := range []string{stageDefaults, stageArgs, stageReturn} {
		callChecksTotal.WithLabelValues(stage, "true").Add(0)
		callChecksTotal.WithLabelValues(stage, "false").Add(0)
	}
}
