package model

// Optional is a three-state field of a partial update: absent, explicitly null, or set to a value.
// The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Null returns an Optional that was provided as an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// Present reports whether the field was provided at all.
func (o Optional[T]) Present() bool {
	return o.present
}

// IsNull reports whether the field was provided as null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Value returns the held value and whether there is one.
func (o Optional[T]) Value() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}
