// Package settings holds the process-wide defaults for call-boundary type
// checking: whether argument and return checks run, and whether failures are
// fatal or merely logged. Bindings read these defaults at construction time
// when no explicit option overrides them.
//
// Defaults can be flipped programmatically, seeded from the environment
// (Configure), or loaded from a YAML policy file (LoadFile).
package settings

import (
	"fmt"
	"os"

	"go.uber.org/atomic"
	"gopkg.in/yaml.v3"

	"github.com/amp-labs/typecheck/envutil"
)

// The three policy switches. Atomics rather than a mutex-guarded struct:
// each switch is read independently on every binding construction, and there
// is no invariant tying them together.
//
//nolint:gochecknoglobals
var (
	checkArgs   = atomic.NewBool(true)
	checkReturn = atomic.NewBool(true)
	warnOnly    = atomic.NewBool(false)
)

// CheckArgs returns whether bindings check argument values by default.
func CheckArgs() bool {
	return checkArgs.Load()
}

// SetCheckArgs sets the default for argument checking.
func SetCheckArgs(enabled bool) {
	checkArgs.Store(enabled)
}

// CheckReturn returns whether bindings check return values by default.
func CheckReturn() bool {
	return checkReturn.Load()
}

// SetCheckReturn sets the default for return checking.
func SetCheckReturn(enabled bool) {
	checkReturn.Store(enabled)
}

// WarnOnly returns whether check failures are logged as warnings instead of
// aborting the call, by default.
func WarnOnly() bool {
	return warnOnly.Load()
}

// SetWarnOnly sets the default failure policy.
func SetWarnOnly(enabled bool) {
	warnOnly.Store(enabled)
}

// Configure seeds the policy switches from the environment:
// TYPECHECK_CHECK_ARGS, TYPECHECK_CHECK_RETURN, and TYPECHECK_WARN_ONLY.
// Unset variables leave the current value in place; malformed values are a
// startup failure.
func Configure() {
	checkArgs.Store(envutil.Bool("TYPECHECK_CHECK_ARGS",
		envutil.Default(checkArgs.Load())).ValueOrFatal())

	checkReturn.Store(envutil.Bool("TYPECHECK_CHECK_RETURN",
		envutil.Default(checkReturn.Load())).ValueOrFatal())

	warnOnly.Store(envutil.Bool("TYPECHECK_WARN_ONLY",
		envutil.Default(warnOnly.Load())).ValueOrFatal())
}

// Policy is the YAML shape of a policy file. Pointer fields so that keys
// absent from the file leave the corresponding switch untouched.
type Policy struct {
	CheckArgs   *bool `yaml:"check_args"`
	CheckReturn *bool `yaml:"check_return"`
	WarnOnly    *bool `yaml:"warn_only"`
}

// Apply applies the non-nil fields of a policy to the process defaults.
func Apply(p Policy) {
	if p.CheckArgs != nil {
		checkArgs.Store(*p.CheckArgs)
	}

	if p.CheckReturn != nil {
		checkReturn.Store(*p.CheckReturn)
	}

	if p.WarnOnly != nil {
		warnOnly.Store(*p.WarnOnly)
	}
}

// LoadFile reads a YAML policy file and applies it to the process defaults.
// Keys absent from the file leave the corresponding switch untouched.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read policy file: %w", err)
	}

	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return fmt.Errorf("parse policy file %q: %w", path, err)
	}

	Apply(policy)

	return nil
}
