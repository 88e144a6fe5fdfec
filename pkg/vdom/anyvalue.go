package vdom

import "reflect"

// AnyValue is the capability an opaque attribute value must offer:
// equality against another opaque value and runtime type identity.
// Nothing else about the boxed value is observable.
type AnyValue interface {
	// Equals compares against another opaque value. The concrete types
	// must match before instances are compared; mismatched types are
	// unequal, never an error.
	Equals(other AnyValue) bool

	// TypeID returns the runtime type of the boxed value.
	TypeID() reflect.Type
}

// anyBox is the standard AnyValue implementation for comparable types.
type anyBox[T comparable] struct {
	v T
}

// BoxAny wraps a comparable value as an AnyValue.
func BoxAny[T comparable](v T) AnyValue {
	return anyBox[T]{v: v}
}

// Equals implements AnyValue. The type assertion doubles as the type
// identity check: only a box of the same concrete type can match, so the
// value comparison below is sound by construction.
func (b anyBox[T]) Equals(other AnyValue) bool {
	o, ok := other.(anyBox[T])
	if !ok {
		return false
	}
	return b.v == o.v
}

// TypeID implements AnyValue.
func (b anyBox[T]) TypeID() reflect.Type {
	return reflect.TypeOf(b.v)
}
