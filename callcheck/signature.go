package callcheck

import (
	"github.com/amp-labs/typecheck/optional"
	"github.com/amp-labs/typecheck/typedesc"
)

// Param is one declared named parameter.
type Param struct {
	// Name is the parameter name, used for keyword matching and diagnostics.
	Name string

	// Type is the declared type description. Nil means unannotated, which
	// yields the accept-all checker unless annotations are forced.
	Type *typedesc.Desc

	// Default is the declared default value, if any. Defaults are validated
	// eagerly when the binding is constructed, not at call time.
	Default optional.Value[any]
}

// Variadic describes a variadic slot (the *args / **kwargs analog). The
// Declared flag distinguishes "no slot exists" from "a slot exists but is
// unannotated": both check excess values against accept-all, but only the
// latter violates forced annotations.
type Variadic struct {
	Declared bool
	Name     string

	// Type constrains each individual excess value, not the collection.
	Type *typedesc.Desc
}

// Signature is the pre-extracted descriptor of a callable's declaration.
// It is supplied by the reflection/introspection layer that owns the
// callable; this package only consumes it.
type Signature struct {
	// Name identifies the callable in error messages and warn-mode logs.
	Name string

	// Positional are the named positional parameters, in declaration order.
	Positional []Param

	// KeywordOnly are parameters addressable only by name.
	KeywordOnly []Param

	// VariadicPositional receives positional arguments beyond the declared ones.
	VariadicPositional Variadic

	// VariadicKeyword receives keyword arguments matching no declared name.
	VariadicKeyword Variadic

	// Return is the declared return description. Nil means unconstrained.
	Return *typedesc.Desc
}
