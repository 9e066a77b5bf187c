package landing

import (
	"fmt"
	"reflect"
)

// depRegistry holds the values passed to Mount, keyed by their type.
type depRegistry map[reflect.Type]reflect.Value

func (deps depRegistry) add(v any) error {
	if v == nil {
		return nil
	}
	typ := reflect.TypeOf(v)
	if _, ok := deps[typ]; ok {
		return fmt.Errorf("duplicate type %s in dependencies", typ)
	}
	deps[typ] = reflect.ValueOf(v)
	return nil
}

// get looks up a dependency for a parameter of type pt. An exact match wins;
// otherwise a pointer dependency satisfies a value parameter of its element
// type, and any dependency assignable to pt is accepted.
func (deps depRegistry) get(pt reflect.Type) (reflect.Value, bool) {
	if v, ok := deps[pt]; ok {
		return v, true
	}
	if pt.Kind() != reflect.Ptr {
		if v, ok := deps[reflect.PointerTo(pt)]; ok && !v.IsNil() {
			return v.Elem(), true
		}
	}
	for t, v := range deps {
		if t.AssignableTo(pt) {
			return v, true
		}
	}
	return reflect.Value{}, false
}
