package checker

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/amp-labs/typecheck/typedesc"
)

const (
	cacheHit  = "hit"
	cacheMiss = "miss"
)

var (
	// checksTotal counts individual checker executions.
	//
	// Labels:
	//   - kind: the description kind being checked (primitive, tuple,
	//     sequence, mapping, set, variadic_tuple, accept_all).
	//   - has_error: "true" if the check found a mismatch, "false" otherwise.
	//
	// Container checks increment once per container plus once per visited
	// element, so this also reflects how deep typical values nest.
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "typecheck_checks_total",
		Help: "The total number of runtime type checks, by description kind and outcome",
	}, []string{"kind", "has_error"})

	// cacheLookups counts registry cache lookups.
	//
	// Labels:
	//   - outcome: "hit" if a cached checker was reused, "miss" if a new
	//     checker had to be built.
	//
	// A miss rate that keeps climbing after warm-up usually means
	// descriptions are being re-constructed instead of shared; see the
	// typedesc package notes on identity-based caching.
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "typecheck_checker_cache_lookups_total",
		Help: "The total number of checker registry cache lookups, by outcome",
	}, []string{"outcome"})
)

// observe records one checker execution.
func observe(kind typedesc.Kind, err error) {
	checksTotal.WithLabelValues(kind.String(), strconv.FormatBool(err != nil)).Inc()
}

// init pre-initializes every label combination so dashboards and rate()
// queries see consistent time series from process start, instead of series
// that appear only after the first check of each kind.
func init() {
	kinds := []typedesc.Kind{
		typedesc.KindPrimitive,
		typedesc.KindTuple,
		typedesc.KindSequence,
		typedesc.KindMapping,
		typedesc.KindSet,
		typedesc.KindVariadicTuple,
		typedesc.KindAcceptAll,
	}

	for _, kind := range kinds {
		checksTotal.WithLabelValues(kind.String(), "true").Add(0)
		checksTotal.WithLabelValues(kind.String(), "false").Add(0)
	}

	cacheLookups.WithLabelValues(cacheHit).Add(0)
	cacheLookups.WithLabelValues(cacheMiss).Add(0)
}
