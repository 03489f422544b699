// Package tuple provides fixed-arity ordered value containers. A tuple is
// deliberately distinct from a slice: its length is part of its shape, which
// is what the checker package relies on when validating tuple-typed values.
//
//nolint:ireturn
package tuple

import (
	"fmt"
	"strings"
)

// Indexed is the read-only view of a tuple: a fixed number of slots,
// addressable by position. Every tuple type in this package implements it,
// and it is the shape the checker package tests for.
type Indexed interface {
	// Len returns the number of slots in the tuple.
	Len() int

	// At returns the value in the given slot. It panics if the index is
	// out of range, mirroring slice indexing.
	At(index int) any
}

// Tuple is a dynamically-sized fixed-arity tuple. Unlike the generic TupleN
// types, its arity is chosen at construction time, which makes it the right
// shape for values whose declared type is only known at runtime.
type Tuple struct {
	items []any
}

// Of creates a Tuple holding the given values, in order.
func Of(items ...any) Tuple {
	copied := make([]any, len(items))
	copy(copied, items)

	return Tuple{items: copied}
}

func (t Tuple) Len() int {
	return len(t.items)
}

func (t Tuple) At(index int) any {
	return t.items[index]
}

// Values returns a copy of the tuple's values as a slice.
func (t Tuple) Values() []any {
	copied := make([]any, len(t.items))
	copy(copied, t.items)

	return copied
}

// String returns a representation like (1, two, 3).
func (t Tuple) String() string {
	parts := make([]string, len(t.items))
	for i, item := range t.items {
		parts[i] = fmt.Sprintf("%v", item)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A {
	return t.first
}

func (t Tuple2[A, B]) Second() B {
	return t.second
}

func (t Tuple2[A, B]) Len() int {
	return 2
}

func (t Tuple2[A, B]) At(index int) any {
	switch index {
	case 0:
		return t.first
	case 1:
		return t.second
	default:
		panic(fmt.Sprintf("tuple index out of range [%d] with length 2", index))
	}
}

func NewTuple3[A, B, C any](first A, second B, third C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		first:  first,
		second: second,
		third:  third,
	}
}

// Tuple3 is a type that represents a triple of values.
type Tuple3[A any, B any, C any] struct {
	first  A
	second B
	third  C
}

func (t Tuple3[A, B, C]) First() A {
	return t.first
}

func (t Tuple3[A, B, C]) Second() B {
	return t.second
}

func (t Tuple3[A, B, C]) Third() C {
	return t.third
}

func (t Tuple3[A, B, C]) Len() int {
	return 3
}

func (t Tuple3[A, B, C]) At(index int) any {
	switch index {
	case 0:
		return t.first
	case 1:
		return t.second
	case 2:
		return t.third
	default:
		panic(fmt.Sprintf("tuple index out of range [%d] with length 3", index))
	}
}

func NewTuple4[A, B, C, D any](first A, second B, third C, fourth D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{
		first:  first,
		second: second,
		third:  third,
		fourth: fourth,
	}
}

// Tuple4 is a type that represents a quadruple of values.
type Tuple4[A any, B any, C any, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

func (t Tuple4[A, B, C, D]) First() A {
	return t.first
}

func (t Tuple4[A, B, C, D]) Second() B {
	return t.second
}

func (t Tuple4[A, B, C, D]) Third() C {
	return t.third
}

func (t Tuple4[A, B, C, D]) Fourth() D {
	return t.fourth
}

func (t Tuple4[A, B, C, D]) Len() int {
	return 4
}

func (t Tuple4[A, B, C, D]) At(index int) any {
	switch index {
	case 0:
		return t.first
	case 1:
		return t.second
	case 2:
		return t.third
	case 3:
		return t.fourth
	default:
		panic(fmt.Sprintf("tuple index out of range [%d] with length 4", index))
	}
}
