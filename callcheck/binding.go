package callcheck

import (
	"context"
	"fmt"

	"github.com/amp-labs/typecheck/checker"
	"github.com/amp-labs/typecheck/errors"
	"github.com/amp-labs/typecheck/logger"
	"github.com/amp-labs/typecheck/settings"
)

// options collects the per-binding policy flags. Unset flags fall back to
// the process-wide defaults in the settings package.
type options struct {
	checkArgs        bool
	checkReturn      bool
	warnOnly         bool
	forceAnnotations bool
}

// Option is a functional option for NewBinding.
type Option func(*options)

// WithCheckArgs overrides whether argument values are checked at call time.
func WithCheckArgs(enabled bool) Option {
	return func(o *options) {
		o.checkArgs = enabled
	}
}

// WithCheckReturn overrides whether the return value is checked.
func WithCheckReturn(enabled bool) Option {
	return func(o *options) {
		o.checkReturn = enabled
	}
}

// WithWarnOnly overrides the failure policy: when enabled, call-time check
// failures are logged as warnings and the call proceeds.
func WithWarnOnly(enabled bool) Option {
	return func(o *options) {
		o.warnOnly = enabled
	}
}

// WithForceAnnotations requires every parameter, variadic slot, and the
// return to carry a type description; construction fails otherwise.
func WithForceAnnotations(enabled bool) Option {
	return func(o *options) {
		o.forceAnnotations = enabled
	}
}

// namedChecker pairs a positional parameter's name with its checker, keeping
// declaration order for left-to-right argument matching.
type namedChecker struct {
	name  string
	check checker.Checker
}

// Binding is the precomputed association between a callable's declaration
// and its checkers. It is built once, is immutable afterwards, and is safe
// for concurrent reuse across calls.
type Binding struct {
	name        string
	checkArgs   bool
	checkReturn bool
	warnOnly    bool

	positional []namedChecker
	byName     map[string]checker.Checker
	varArgs    checker.Checker
	varKw      checker.Checker
	ret        checker.Checker
}

// NewBinding resolves every declaration in the signature to a checker via
// the registry (the process default registry when reg is nil) and validates
// all declared default values eagerly: a bad default is a construction-time
// failure, reported before the callable can ever be invoked. All
// construction problems are collected and reported together.
func NewBinding(reg *checker.Registry, sig Signature, opts ...Option) (*Binding, error) {
	if reg == nil {
		reg = checker.Default()
	}

	conf := options{
		checkArgs:   settings.CheckArgs(),
		checkReturn: settings.CheckReturn(),
		warnOnly:    settings.WarnOnly(),
	}

	for _, opt := range opts {
		opt(&conf)
	}

	binding := &Binding{
		name:        sig.Name,
		checkArgs:   conf.checkArgs,
		checkReturn: conf.checkReturn,
		warnOnly:    conf.warnOnly,
		positional:  make([]namedChecker, 0, len(sig.Positional)),
		byName:      make(map[string]checker.Checker, len(sig.Positional)+len(sig.KeywordOnly)),
	}

	var errs errors.Collection

	requireAnnotation := func(missing bool, what, name string) {
		if conf.forceAnnotations && missing {
			errs.Add(fmt.Errorf("%w: %s %q of %q",
				errors.ErrMissingAnnotation, what, name, sig.Name))
		}
	}

	for _, param := range sig.Positional {
		requireAnnotation(param.Type == nil, "positional parameter", param.Name)

		check := reg.Get(param.Type)
		binding.positional = append(binding.positional, namedChecker{
			name:  param.Name,
			check: check,
		})
		binding.byName[param.Name] = check

		binding.checkDefault(&errs, check, param, "positional")
	}

	for _, param := range sig.KeywordOnly {
		requireAnnotation(param.Type == nil, "keyword-only parameter", param.Name)

		check := reg.Get(param.Type)
		// Positional names take precedence for keyword matching, so a
		// duplicate name must not shadow the positional checker.
		if _, taken := binding.byName[param.Name]; !taken {
			binding.byName[param.Name] = check
		}

		binding.checkDefault(&errs, check, param, "keyword-only")
	}

	if sig.VariadicPositional.Declared {
		requireAnnotation(sig.VariadicPositional.Type == nil,
			"variadic positional parameter", sig.VariadicPositional.Name)
	}

	if sig.VariadicKeyword.Declared {
		requireAnnotation(sig.VariadicKeyword.Type == nil,
			"variadic keyword parameter", sig.VariadicKeyword.Name)
	}

	requireAnnotation(sig.Return == nil, "return", "return")

	binding.varArgs = reg.Get(sig.VariadicPositional.Type)
	binding.varKw = reg.Get(sig.VariadicKeyword.Type)
	binding.ret = reg.Get(sig.Return)

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return binding, nil
}

// checkDefault validates one declared default value against its parameter's
// checker, recording a construction failure if it doesn't conform.
func (b *Binding) checkDefault(errs *errors.Collection, check checker.Checker, param Param, role string) {
	def, ok := param.Default.Get()
	if !ok {
		return
	}

	_, err := checker.Run(check, def, fmt.Sprintf(
		"%s argument %q has an incompatible default value", role, param.Name))

	observeStage(stageDefaults, err)

	if err != nil {
		errs.Add(fmt.Errorf("%w: %w", errors.ErrBadDefault, err))
	}
}

// fail applies the failure policy: under warn-only the failure is logged and
// swallowed so the call proceeds; otherwise it aborts the check.
func (b *Binding) fail(ctx context.Context, err error) error {
	if b.warnOnly {
		logger.Get(ctx).Warn("type check failed",
			"callable", b.name,
			"error", err)

		return nil
	}

	return err
}

// CheckCallArgs validates the actual arguments of one invocation.
//
// Positional arguments are matched left-to-right against the declared
// positional parameters; any extras are checked one by one against the
// variadic-positional checker (accept-all if no such slot is declared, i.e.
// excess positionals pass silently). Keyword arguments match positional
// names first, then keyword-only names, then fall back to the
// variadic-keyword checker.
//
// Arity problems (missing or surplus arguments) are not detected here.
func (b *Binding) CheckCallArgs(ctx context.Context, args []any, kwargs map[string]any) error {
	if !b.checkArgs {
		return nil
	}

	next := 0
	mismatched := false

	for _, param := range b.positional {
		if next == len(args) {
			break
		}

		_, err := checker.Run(param.check, args[next], fmt.Sprintf(
			"positional argument %q takes an incompatible value", param.name))
		if err != nil {
			mismatched = true

			observeStage(stageArgs, err)

			if err = b.fail(ctx, err); err != nil {
				return err
			}
		}

		next++
	}

	for ; next < len(args); next++ {
		_, err := checker.Run(b.varArgs, args[next], fmt.Sprintf(
			"positional argument #%d takes an incompatible value", next))
		if err != nil {
			mismatched = true

			observeStage(stageArgs, err)

			if err = b.fail(ctx, err); err != nil {
				return err
			}
		}
	}

	for name, value := range kwargs {
		check, ok := b.byName[name]
		if !ok {
			check = b.varKw
		}

		_, err := checker.Run(check, value, fmt.Sprintf(
			"keyword argument %q takes an incompatible value", name))
		if err != nil {
			mismatched = true

			observeStage(stageArgs, err)

			if err = b.fail(ctx, err); err != nil {
				return err
			}
		}
	}

	// Mismatches already counted above; a warn-only call that had any
	// mismatch must not also count as a success.
	if !mismatched {
		observeStage(stageArgs, nil)
	}

	return nil
}

// CheckReturnValue validates the value the callable returned.
func (b *Binding) CheckReturnValue(ctx context.Context, value any) error {
	if !b.checkReturn {
		return nil
	}

	_, err := checker.Run(b.ret, value, "return value has an incompatible type")

	observeStage(stageReturn, err)

	if err != nil {
		return b.fail(ctx, err)
	}

	return nil
}
