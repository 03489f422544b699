package checker

import (
	"reflect"

	"github.com/amp-labs/typecheck/typedesc"
)

// setChecker validates unordered unique-element containers. Set-shaped is
// the canonical Go set idiom: a map with struct{} values, where the keys are
// the elements. Iteration order is unspecified; the first failing element
// terminates the check.
type setChecker struct {
	repr string
	elem Checker
}

func (c *setChecker) Check(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Elem() != emptyStruct {
		err := newLeaf(c.repr, value)
		observe(typedesc.KindSet, err)

		return nil, err
	}

	iter := rv.MapRange()
	for iter.Next() {
		if _, err := Run(c.elem, iter.Key().Interface(), "found an element that has an incompatible type"); err != nil {
			observe(typedesc.KindSet, err)

			return nil, err
		}
	}

	observe(typedesc.KindSet, nil)

	return value, nil
}
