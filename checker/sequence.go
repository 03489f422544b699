package checker

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/typecheck/typedesc"
)

// sequenceChecker validates variable-length ordered containers. The value
// must be a slice (a nil slice is an empty sequence and passes); elements are
// visited in their natural order and the first failing element terminates the
// check.
type sequenceChecker struct {
	repr string
	elem Checker
}

func (c *sequenceChecker) Check(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		err := newLeaf(c.repr, value)
		observe(typedesc.KindSequence, err)

		return nil, err
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()

		if _, err := Run(c.elem, elem, fmt.Sprintf("element #%d has an incompatible type", i)); err != nil {
			observe(typedesc.KindSequence, err)

			return nil, err
		}
	}

	observe(typedesc.KindSequence, nil)

	return value, nil
}
