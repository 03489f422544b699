package checker

import "github.com/amp-labs/typecheck/typedesc"

// acceptAllChecker succeeds for every input, including nil, containers, and
// functions. It backs unannotated parameters and returns, explicit accept-all
// declarations, and "no value expected".
type acceptAllChecker struct{}

// acceptAll is the process-wide singleton; the checker is stateless, so one
// instance serves everyone.
var acceptAll = &acceptAllChecker{} //nolint:gochecknoglobals

// AcceptAll returns the checker that imposes no constraint.
func AcceptAll() Checker { //nolint:ireturn
	return acceptAll
}

func (c *acceptAllChecker) Check(value any) (any, error) {
	observe(typedesc.KindAcceptAll, nil)

	return value, nil
}
