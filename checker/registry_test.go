package checker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/typecheck/typedesc"
)

func TestRegistry_IdentityStableMemoization(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	desc := typedesc.SequenceOf(typedesc.Int)

	first := reg.Get(desc)
	second := reg.Get(desc)

	assert.Same(t, first, second)
	assert.Equal(t, 2, reg.Size()) // the sequence and its element
}

func TestRegistry_StructurallyEqualDescsAreSeparateEntries(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	// Two separately-built descriptions are two cache keys, by contract.
	a := typedesc.SequenceOf(typedesc.Int)
	b := typedesc.SequenceOf(typedesc.Int)

	assert.NotSame(t, reg.Get(a), reg.Get(b))
}

func TestRegistry_NilDescriptionIsAcceptAll(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	assert.Same(t, AcceptAll(), reg.Get(nil))
	assert.Equal(t, 0, reg.Size())
}

func TestRegistry_AcceptAllDescriptionIsSingletonChecker(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	assert.Same(t, AcceptAll(), reg.Get(typedesc.Any()))
}

func TestRegistry_SharedChildCheckers(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	// Both containers reference the same element description, so they must
	// share the same child checker instance through the cache.
	seq := typedesc.SequenceOf(typedesc.Int)
	set := typedesc.SetOf(typedesc.Int)

	reg.Get(seq)
	reg.Get(set)

	assert.Same(t, reg.Get(typedesc.Int), reg.Get(typedesc.Int))
	assert.Equal(t, 3, reg.Size())
}

func TestRegistry_ConcurrentFirstLookupYieldsOneInstance(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	desc := typedesc.MappingOf(typedesc.String, typedesc.Int)

	const workers = 16

	results := make([]Checker, workers)

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i] = reg.Get(desc)
		}()
	}

	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestDefault_IsProcessWideSingleton(t *testing.T) {
	t.Parallel()

	require.NotNil(t, Default())
	assert.Same(t, Default(), Default())
}
