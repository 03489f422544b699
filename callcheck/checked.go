package callcheck

import "context"

// Func is the uniform callable shape this package wraps: positional
// arguments plus keyword arguments in, a single result (and the callable's
// own error) out. Adapting a concrete Go function to this shape is the
// caller's one-time job.
type Func func(args []any, kwargs map[string]any) (any, error)

// Checked holds a callable together with its binding and exposes a single
// invoke entry point. This replaces invisible decorator-style attachment
// with explicit composition; the runtime behavior is identical.
type Checked struct {
	fn      Func
	binding *Binding
}

// Wrap pairs a callable with its binding.
func Wrap(fn Func, binding *Binding) *Checked {
	return &Checked{
		fn:      fn,
		binding: binding,
	}
}

// Binding returns the binding backing this wrapper.
func (c *Checked) Binding() *Binding {
	return c.binding
}

// Call validates the arguments, invokes the callable, and validates the
// returned value. An argument failure aborts before the callable runs. A
// return failure surfaces after it runs, so side effects stand. The
// callable's own error passes through unchanged, and its result is not
// checked in that case.
func (c *Checked) Call(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
	if err := c.binding.CheckCallArgs(ctx, args, kwargs); err != nil {
		return nil, err
	}

	ret, err := c.fn(args, kwargs)
	if err != nil {
		return nil, err
	}

	if err := c.binding.CheckReturnValue(ctx, ret); err != nil {
		return nil, err
	}

	return ret, nil
}
