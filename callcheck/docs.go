// Package callcheck applies runtime type checking at call boundaries. A
// Signature describes a callable's declared parameters and return (extracted
// by the caller; this package performs no reflection over functions), a
// Binding resolves every declaration to a checker once and validates default
// values eagerly, and a Checked pairs the binding with the callable behind a
// single invoke entry point.
//
// Attachment is explicit composition rather than invisible decoration:
//
//	binding, err := callcheck.NewBinding(nil, sig)
//	if err != nil { ... }
//
//	scaled := callcheck.Wrap(func(args []any, _ map[string]any) (any, error) {
//		return float64(args[0].(int)) * args[1].(float64), nil
//	}, binding)
//
//	out, err := scaled.Call(ctx, []any{2, 1.5}, nil)
//
// Argument failures abort the call before the callable runs. Return failures
// surface after it runs, so its side effects stand; this is documented
// behavior, not a transaction. Missing/extra-argument arity is deliberately
// not this package's concern; that stays with the callable's own invocation
// mechanics.
package callcheck
