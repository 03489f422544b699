package checker

import (
	"reflect"

	"github.com/amp-labs/typecheck/typedesc"
)

// emptyStruct is the map value type that marks a map as set-shaped rather
// than mapping-shaped.
var emptyStruct = reflect.TypeOf(struct{}{}) //nolint:gochecknoglobals

// mappingChecker validates key/value containers. The value must be a map
// whose value type is not struct{} (those are set-shaped; see setChecker).
// Entries are visited in no particular order; the first failing key or value
// terminates the check.
type mappingChecker struct {
	repr  string
	key   Checker
	value Checker
}

func (c *mappingChecker) Check(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Elem() == emptyStruct {
		err := newLeaf(c.repr, value)
		observe(typedesc.KindMapping, err)

		return nil, err
	}

	iter := rv.MapRange()
	for iter.Next() {
		if _, err := Run(c.key, iter.Key().Interface(), "found a key that has an incompatible type"); err != nil {
			observe(typedesc.KindMapping, err)

			return nil, err
		}

		if _, err := Run(c.value, iter.Value().Interface(), "found a value that has an incompatible type"); err != nil {
			observe(typedesc.KindMapping, err)

			return nil, err
		}
	}

	observe(typedesc.KindMapping, nil)

	return value, nil
}
