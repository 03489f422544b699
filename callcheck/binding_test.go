package callcheck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/typecheck/checker"
	"github.com/amp-labs/typecheck/errors"
	"github.com/amp-labs/typecheck/optional"
	"github.com/amp-labs/typecheck/typedesc"
)

func TestNewBinding_NilRegistryUsesDefault(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(nil, Signature{
		Name: "noop",
	})
	require.NoError(t, err)
	assert.NotNil(t, binding)
}

func TestNewBinding_BadPositionalDefaultFailsEagerly(t *testing.T) {
	t.Parallel()

	_, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int, Default: optional.Some[any]("x")},
		},
	})

	// Construction fails before any invocation.
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrBadDefault)
	require.ErrorIs(t, err, errors.ErrMismatch)
	assert.Contains(t, err.Error(), `positional argument "a" has an incompatible default value`)
	assert.Contains(t, err.Error(), `Expect: "int". Actual "string(x)".`)
}

func TestNewBinding_BadKeywordOnlyDefaultFailsEagerly(t *testing.T) {
	t.Parallel()

	_, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		KeywordOnly: []Param{
			{Name: "k", Type: typedesc.Float64, Default: optional.Some[any](1)},
		},
	})

	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrBadDefault)
	assert.Contains(t, err.Error(), `keyword-only argument "k" has an incompatible default value`)
}

func TestNewBinding_AllBadDefaultsReportedTogether(t *testing.T) {
	t.Parallel()

	_, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int, Default: optional.Some[any]("x")},
			{Name: "b", Type: typedesc.String, Default: optional.Some[any](2)},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `positional argument "a"`)
	assert.Contains(t, err.Error(), `positional argument "b"`)
}

func TestNewBinding_GoodDefaultsPass(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int, Default: optional.Some[any](3)},
		},
		KeywordOnly: []Param{
			{Name: "k", Type: typedesc.String, Default: optional.Some[any]("ok")},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, binding)
}

func TestNewBinding_ForceAnnotations(t *testing.T) {
	t.Parallel()

	sig := Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a"}, // unannotated
		},
		VariadicPositional: Variadic{Declared: true, Name: "rest"},
	}

	// Without forcing, unannotated parameters get accept-all.
	_, err := NewBinding(checker.NewRegistry(), sig)
	require.NoError(t, err)

	// With forcing, every missing annotation is a construction failure.
	_, err = NewBinding(checker.NewRegistry(), sig, WithForceAnnotations(true))
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrMissingAnnotation)
	assert.Contains(t, err.Error(), `positional parameter "a"`)
	assert.Contains(t, err.Error(), `variadic positional parameter "rest"`)
	assert.Contains(t, err.Error(), "return")
}

func TestCheckCallArgs_PositionalLeftToRight(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int},
			{Name: "b", Type: typedesc.String},
		},
	}, WithCheckArgs(true), WithWarnOnly(false))
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, binding.CheckCallArgs(ctx, []any{1, "two"}, nil))

	// Fewer arguments than parameters is not an arity error here.
	require.NoError(t, binding.CheckCallArgs(ctx, []any{1}, nil))

	err = binding.CheckCallArgs(ctx, []any{1, 2}, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrMismatch)
	assert.Contains(t, err.Error(), `positional argument "b" takes an incompatible value`)
}

func TestCheckCallArgs_ExcessPositionalsPassWithoutVariadicSlot(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int},
		},
	}, WithCheckArgs(true), WithWarnOnly(false))
	require.NoError(t, err)

	// No variadic slot declared: extras pass silently.
	require.NoError(t, binding.CheckCallArgs(context.Background(),
		[]any{1, "anything", 3.5}, nil))
}

func TestCheckCallArgs_ExcessPositionalsAgainstVariadicSlot(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int},
		},
		VariadicPositional: Variadic{Declared: true, Name: "rest", Type: typedesc.Float64},
	}, WithCheckArgs(true), WithWarnOnly(false))
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, binding.CheckCallArgs(ctx, []any{1, 1.0, 1.1}, nil))

	err = binding.CheckCallArgs(ctx, []any{1, 1.0, "x"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positional argument #2 takes an incompatible value")
}

func TestCheckCallArgs_KeywordMatchingPrecedence(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int},
		},
		KeywordOnly: []Param{
			{Name: "k", Type: typedesc.String},
		},
		VariadicKeyword: Variadic{Declared: true, Name: "extra", Type: typedesc.SequenceOf(typedesc.Int)},
	}, WithCheckArgs(true), WithWarnOnly(false))
	require.NoError(t, err)

	ctx := context.Background()

	// Positional name by keyword.
	require.NoError(t, binding.CheckCallArgs(ctx, nil, map[string]any{"a": 1}))
	require.Error(t, binding.CheckCallArgs(ctx, nil, map[string]any{"a": "x"}))

	// Keyword-only name.
	require.NoError(t, binding.CheckCallArgs(ctx, nil, map[string]any{"k": "ok"}))
	require.Error(t, binding.CheckCallArgs(ctx, nil, map[string]any{"k": 1}))

	// Unknown names fall back to the variadic-keyword checker.
	require.NoError(t, binding.CheckCallArgs(ctx, nil, map[string]any{"other": []int{1, 2}}))

	err = binding.CheckCallArgs(ctx, nil, map[string]any{"other": "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `keyword argument "other" takes an incompatible value`)
}

func TestCheckCallArgs_UnknownKeywordsPassWithoutVariadicSlot(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int},
		},
	}, WithCheckArgs(true), WithWarnOnly(false))
	require.NoError(t, err)

	require.NoError(t, binding.CheckCallArgs(context.Background(), nil,
		map[string]any{"whatever": struct{ X int }{X: 1}}))
}

func TestCheckCallArgs_DisabledSkipsEverything(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
		Positional: []Param{
			{Name: "a", Type: typedesc.Int},
		},
	}, WithCheckArgs(false))
	require.NoError(t, err)

	require.NoError(t, binding.CheckCallArgs(context.Background(),
		[]any{"wrong"}, map[string]any{"a": "also wrong"}))
}

func TestCheckReturnValue_Basics(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name:   "f",
		Return: typedesc.Float64,
	}, WithCheckReturn(true), WithWarnOnly(false))
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, binding.CheckReturnValue(ctx, 1.5))

	err = binding.CheckReturnValue(ctx, "oops")
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrMismatch)
	assert.Contains(t, err.Error(), "return value has an incompatible type")
}

func TestCheckReturnValue_UnconstrainedReturnPasses(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name: "f",
	}, WithCheckReturn(true))
	require.NoError(t, err)

	require.NoError(t, binding.CheckReturnValue(context.Background(), struct{}{}))
	require.NoError(t, binding.CheckReturnValue(context.Background(), nil))
}

func TestCheckReturnValue_DisabledSkipsCheck(t *testing.T) {
	t.Parallel()

	binding, err := NewBinding(checker.NewRegistry(), Signature{
		Name:   "f",
		Return: typedesc.Float64,
	}, WithCheckReturn(false))
	require.NoError(t, err)

	require.NoError(t, binding.CheckReturnValue(context.Background(), "wrong type"))
}
