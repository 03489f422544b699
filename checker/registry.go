package checker

import (
	"sync"

	"github.com/amp-labs/typecheck/lazy"
	"github.com/amp-labs/typecheck/typedesc"
)

// Registry memoizes checkers by description identity. For a given *Desc,
// exactly one Checker instance exists for the registry's lifetime: Get is a
// pure function of its argument up to caching. The cache is append-only and
// never evicted.
//
// Unlike a bare map, the registry is safe for concurrent use; the cache is
// guarded so that concurrent first-time lookups of the same description still
// observe a single checker instance.
type Registry struct {
	mu    sync.Mutex
	cache map[*typedesc.Desc]Checker
}

// NewRegistry creates an empty registry. Most callers should prefer
// Default() and share the process-wide instance; separate registries are
// only needed to isolate cache lifetimes (e.g. in tests).
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[*typedesc.Desc]Checker),
	}
}

// defaultRegistry is the lazily-created process-wide registry returned by
// Default(). Checkers are pure, so sharing one registry across the process
// is always safe.
var defaultRegistry = lazy.New(NewRegistry) //nolint:gochecknoglobals

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	return defaultRegistry.Get()
}

// Get returns the checker for the given description, building and caching it
// on first request. A nil description means "no annotation" and yields the
// accept-all checker.
func (r *Registry) Get(desc *typedesc.Desc) Checker { //nolint:ireturn
	if desc == nil {
		return AcceptAll()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.getLocked(desc)
}

// Size returns the number of cached checkers.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.cache)
}

// getLocked is the recursive lookup used while the cache lock is held.
// Container checkers resolve their children through this path so that one
// Get call populates the whole subtree atomically.
func (r *Registry) getLocked(desc *typedesc.Desc) Checker { //nolint:ireturn
	if desc == nil {
		return AcceptAll()
	}

	if cached, ok := r.cache[desc]; ok {
		cacheLookups.WithLabelValues(cacheHit).Inc()

		return cached
	}

	cacheLookups.WithLabelValues(cacheMiss).Inc()

	built := r.build(desc)
	r.cache[desc] = built

	return built
}

// build dispatches on the description's kind. The switch is exhaustive over
// the typedesc sum; an out-of-range kind is a programming error.
func (r *Registry) build(desc *typedesc.Desc) Checker { //nolint:ireturn
	switch desc.Kind() {
	case typedesc.KindAcceptAll:
		return AcceptAll()

	case typedesc.KindPrimitive:
		return &primitiveChecker{
			typ:  desc.Type(),
			repr: desc.String(),
		}

	case typedesc.KindTuple:
		slots := desc.Slots()
		children := make([]Checker, len(slots))

		for i, slot := range slots {
			children[i] = r.getLocked(slot)
		}

		return &tupleChecker{
			repr:  desc.String(),
			slots: children,
		}

	case typedesc.KindSequence:
		return &sequenceChecker{
			repr: desc.String(),
			elem: r.getLocked(desc.Elem()),
		}

	case typedesc.KindMapping:
		return &mappingChecker{
			repr:  desc.String(),
			key:   r.getLocked(desc.Key()),
			value: r.getLocked(desc.Value()),
		}

	case typedesc.KindSet:
		return &setChecker{
			repr: desc.String(),
			elem: r.getLocked(desc.Elem()),
		}

	case typedesc.KindVariadicTuple:
		return &variadicTupleChecker{
			repr: desc.String(),
			elem: r.getLocked(desc.Elem()),
		}

	default:
		panic("checker: unhandled description kind " + desc.Kind().String())
	}
}
