package entities

// Optional carries a value together with whether the caller supplied it.
// The zero value is "absent", which is distinct from a present nil pointer.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was supplied
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value was supplied
func (o Optional[T]) IsSet() bool {
	return o.set
}
