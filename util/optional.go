package util

// Optional holds either a value or nothing. Structure operations use it to
// signal expected absence (empty structure, out-of-range index, missing key)
// without panicking or returning an error.
type Optional[T any] struct {
	item   T
	exists bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		item:   v,
		exists: true,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (me Optional[T]) Unpack() (T, bool) {
	return me.item, me.exists
}

func (me Optional[T]) Exists() bool {
	return me.exists
}

func (me Optional[T]) Or(defaultValue T) T {
	if me.exists {
		return me.item
	}
	return defaultValue
}
