package alloc

import (
	"fmt"
	"reflect"
)

// CheckPointerFree returns ErrPointerElements if values of T can hold Go
// pointers (pointers, slices, maps, strings, interfaces, channels, funcs, or
// aggregates containing any of them).
func CheckPointerFree[T any]() error {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		return fmt.Errorf("%w: %s", ErrPointerElements, t)
	}
	return nil
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
