package checker

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/typecheck/tuple"
	"github.com/amp-labs/typecheck/typedesc"
)

// Tuple-shaped means a tuple.Indexed value or a Go array, both of which carry
// their arity as part of their shape. Slices are deliberately excluded: a
// slice is sequence-shaped, and the two shapes never overlap.

// tupleView adapts a tuple-shaped value to the Indexed interface, or reports
// that the value is not tuple-shaped.
func tupleView(value any) (tuple.Indexed, bool) { //nolint:ireturn
	if indexed, ok := value.(tuple.Indexed); ok {
		return indexed, true
	}

	rv := reflect.ValueOf(value)
	if rv.IsValid() && rv.Kind() == reflect.Array {
		return arrayView{rv: rv}, true
	}

	return nil, false
}

// arrayView exposes a Go array through the Indexed interface.
type arrayView struct {
	rv reflect.Value
}

func (a arrayView) Len() int {
	return a.rv.Len()
}

func (a arrayView) At(index int) any {
	return a.rv.Index(index).Interface()
}

// tupleChecker validates fixed-arity tuples: the value must be tuple-shaped,
// its length must equal the declared arity exactly (no partial or ellipsis
// matching), and each element must match its slot's description.
type tupleChecker struct {
	repr  string
	slots []Checker
}

func (c *tupleChecker) Check(value any) (any, error) {
	view, ok := tupleView(value)
	if !ok {
		err := newLeaf(c.repr, value)
		observe(typedesc.KindTuple, err)

		return nil, err
	}

	// Arity mismatch is a hard failure, regardless of element types.
	if view.Len() != len(c.slots) {
		err := newMismatch(fmt.Sprintf(
			"tuple length mismatch: expected %d elements, got %d",
			len(c.slots), view.Len()))
		observe(typedesc.KindTuple, err)

		return nil, err
	}

	for i, slot := range c.slots {
		if _, err := Run(slot, view.At(i), fmt.Sprintf("element #%d has an incompatible type", i)); err != nil {
			observe(typedesc.KindTuple, err)

			return nil, err
		}
	}

	observe(typedesc.KindTuple, nil)

	return value, nil
}

// variadicTupleChecker validates variadic-length tuples: the value must be
// tuple-shaped and every element must match the element description, but any
// arity (including zero) is accepted.
type variadicTupleChecker struct {
	repr string
	elem Checker
}

func (c *variadicTupleChecker) Check(value any) (any, error) {
	view, ok := tupleView(value)
	if !ok {
		err := newLeaf(c.repr, value)
		observe(typedesc.KindVariadicTuple, err)

		return nil, err
	}

	for i := 0; i < view.Len(); i++ {
		if _, err := Run(c.elem, view.At(i), fmt.Sprintf("element #%d has an incompatible type", i)); err != nil {
			observe(typedesc.KindVariadicTuple, err)

			return nil, err
		}
	}

	observe(typedesc.KindVariadicTuple, nil)

	return value, nil
}
