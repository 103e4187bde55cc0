package source

// Result is the outcome of a data lookup: either a value or Unavailable.
type Result[T any] struct {
	value T
	ok    bool
}

// Ok wraps an available value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Unavailable is the result of a lookup whose data could not be retrieved.
func Unavailable[T any]() Result[T] {
	return Result[T]{}
}

// Get returns the value and whether it is available.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Available reports whether the lookup produced a value.
func (r Result[T]) Available() bool {
	return r.ok
}
