package checker

import (
	"reflect"

	"github.com/amp-labs/typecheck/typedesc"
)

// primitiveChecker performs a direct runtime-type membership test: the
// value's type must be assignable to the declared type, which covers exact
// identity and interface satisfaction. No coercion is attempted; an int is
// not a float64.
type primitiveChecker struct {
	typ  reflect.Type
	repr string
}

func (c *primitiveChecker) Check(value any) (any, error) {
	rt := reflect.TypeOf(value)
	if rt == nil || !rt.AssignableTo(c.typ) {
		err := newLeaf(c.repr, value)
		observe(typedesc.KindPrimitive, err)

		return nil, err
	}

	observe(typedesc.KindPrimitive, nil)

	return value, nil
}
