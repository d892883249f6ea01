package typelist

import "reflect"

// TypeOf returns the reflect.Type of T without requiring a value of it,
// including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Types returns a list over reflect.Type, the reified counterpart of a
// compile-time type list.
func Types(types ...reflect.Type) List[reflect.Type] {
	return Of(types...)
}

// Names maps a type list to the type names.
func Names(l List[reflect.Type]) List[string] {
	return MapTo(l, func(t reflect.Type) string { return t.String() })
}
