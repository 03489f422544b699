// Package typedesc models declared types as an immutable tagged union: a
// primitive runtime type, a parametric container (sequence, mapping, set,
// fixed-arity tuple, variadic-length tuple), or the accept-all marker.
//
// Descriptions are compared by identity, not by structure. The checker
// registry memoizes per description instance, so declarations that want to
// share a cache entry should share the description object. The package-level
// singletons (Int, String, Any(), ...) exist for exactly that reason. Two
// structurally equal descriptions built separately are two cache entries,
// which is harmless.
package typedesc

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind discriminates the shapes a description can take.
type Kind int

const (
	// KindPrimitive is a direct runtime-type membership test. Unrecognized
	// or opaque declared types also land here: they degenerate to the same
	// membership test against their reflect.Type.
	KindPrimitive Kind = iota

	// KindTuple is a fixed-arity ordered container with one description per slot.
	KindTuple

	// KindSequence is a variable-length ordered container (a slice) with a
	// single element description.
	KindSequence

	// KindMapping is a key/value container (a map) with key and value descriptions.
	KindMapping

	// KindSet is an unordered unique-element container (a map with struct{}
	// values) with a single element description.
	KindSet

	// KindVariadicTuple is a tuple-shaped container of unconstrained arity
	// with a single element description applied to every slot.
	KindVariadicTuple

	// KindAcceptAll matches any value, including nil.
	KindAcceptAll
)

// String returns the kind's name, for diagnostics and metric labels.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindTuple:
		return "tuple"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindSet:
		return "set"
	case KindVariadicTuple:
		return "variadic_tuple"
	case KindAcceptAll:
		return "accept_all"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Desc is one declared-type description. Descriptions are immutable once
// constructed; they are safe to share between goroutines and to use as
// identity-based cache keys.
type Desc struct {
	kind  Kind
	prim  reflect.Type // KindPrimitive only
	elem  *Desc        // KindSequence, KindSet, KindVariadicTuple
	key   *Desc        // KindMapping
	value *Desc        // KindMapping
	slots []*Desc      // KindTuple
}

// anyDesc is the process-wide accept-all singleton, handed out by Any().
var anyDesc = &Desc{kind: KindAcceptAll} //nolint:gochecknoglobals

// Common primitive descriptions. Reusing these singletons keeps the checker
// cache small and makes separate declarations of the same primitive share
// one checker instance.
//
//nolint:gochecknoglobals
var (
	Int     = Primitive(reflect.TypeOf(int(0)))
	Int64   = Primitive(reflect.TypeOf(int64(0)))
	Float64 = Primitive(reflect.TypeOf(float64(0)))
	String  = Primitive(reflect.TypeOf(""))
	Bool    = Primitive(reflect.TypeOf(false))
)

// Any returns the accept-all description. It is a singleton: every call
// returns the same instance.
func Any() *Desc {
	return anyDesc
}

// Primitive creates a description that matches values whose runtime type is
// assignable to the given type (identical type, or an implementation when the
// type is an interface). Panics on a nil type; use Any() for "no constraint".
func Primitive(typ reflect.Type) *Desc {
	if typ == nil {
		panic("typedesc: Primitive called with nil type")
	}

	return &Desc{kind: KindPrimitive, prim: typ}
}

// Of is a convenience for Primitive on a statically-known type. It works for
// interface types as well: Of[io.Reader]() describes the interface, not a
// concrete implementation.
func Of[T any]() *Desc {
	return Primitive(reflect.TypeOf((*T)(nil)).Elem())
}

// TupleOf creates a fixed-arity tuple description with one slot per argument.
func TupleOf(slots ...*Desc) *Desc {
	copied := make([]*Desc, len(slots))
	copy(copied, slots)

	for i, slot := range copied {
		if slot == nil {
			copied[i] = anyDesc
		}
	}

	return &Desc{kind: KindTuple, slots: copied}
}

// SequenceOf creates a variable-length ordered container description.
// A nil element description means the elements are unconstrained.
func SequenceOf(elem *Desc) *Desc {
	return &Desc{kind: KindSequence, elem: orAny(elem)}
}

// MappingOf creates a key/value container description.
// Nil key or value descriptions mean that side is unconstrained.
func MappingOf(key, value *Desc) *Desc {
	return &Desc{kind: KindMapping, key: orAny(key), value: orAny(value)}
}

// SetOf creates an unordered unique-element container description.
// A nil element description means the elements are unconstrained.
func SetOf(elem *Desc) *Desc {
	return &Desc{kind: KindSet, elem: orAny(elem)}
}

// VariadicTupleOf creates a tuple description of unconstrained arity: the
// value must be tuple-shaped and every element must match elem, but any
// length (including zero) is accepted. This is the documented policy for
// ellipsis-style tuple declarations.
func VariadicTupleOf(elem *Desc) *Desc {
	return &Desc{kind: KindVariadicTuple, elem: orAny(elem)}
}

func orAny(d *Desc) *Desc {
	if d == nil {
		return anyDesc
	}

	return d
}

// Kind returns the description's shape discriminator.
func (d *Desc) Kind() Kind {
	return d.kind
}

// Type returns the runtime type of a primitive description, or nil for any
// other kind.
func (d *Desc) Type() reflect.Type {
	return d.prim
}

// Elem returns the element description of a sequence, set, or variadic-tuple
// description, or nil for any other kind.
func (d *Desc) Elem() *Desc {
	return d.elem
}

// Key returns the key description of a mapping, or nil for any other kind.
func (d *Desc) Key() *Desc {
	return d.key
}

// Value returns the value description of a mapping, or nil for any other kind.
func (d *Desc) Value() *Desc {
	return d.value
}

// Slots returns the per-slot descriptions of a fixed-arity tuple. The
// returned slice is a copy; mutating it does not affect the description.
func (d *Desc) Slots() []*Desc {
	copied := make([]*Desc, len(d.slots))
	copy(copied, d.slots)

	return copied
}

// Arity returns the number of slots in a fixed-arity tuple description,
// and zero for every other kind.
func (d *Desc) Arity() int {
	return len(d.slots)
}

// String renders the description in a Go-flavored notation, e.g. "int",
// "[]int", "map[string]int", "set[string]", "(int, float64)", "(int, ...)",
// or "any".
func (d *Desc) String() string {
	switch d.kind {
	case KindPrimitive:
		return d.prim.String()
	case KindTuple:
		parts := make([]string, len(d.slots))
		for i, slot := range d.slots {
			parts[i] = slot.String()
		}

		return "(" + strings.Join(parts, ", ") + ")"
	case KindSequence:
		return "[]" + d.elem.String()
	case KindMapping:
		return "map[" + d.key.String() + "]" + d.value.String()
	case KindSet:
		return "set[" + d.elem.String() + "]"
	case KindVariadicTuple:
		return "(" + d.elem.String() + ", ...)"
	case KindAcceptAll:
		return "any"
	default:
		return d.kind.String()
	}
}
