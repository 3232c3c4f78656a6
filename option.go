package netgen

import "pgregory.net/rapid"

// Option is a value that may be absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// UnwrapOr returns the value or fallback when absent.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// OptionOf wraps valueGen so that the value is sometimes absent.
// Shrinking moves toward the absent case.
func OptionOf[T any](valueGen *rapid.Generator[T]) *rapid.Generator[Option[T]] {
	return rapid.Custom(func(t *rapid.T) Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return Some(valueGen.Draw(t, "value"))
		}
		return None[T]()
	})
}

// NoneOf always produces the absent Option. It stands in for a disabled
// optional part so that callers compose the same shape either way.
func NoneOf[T any]() *rapid.Generator[Option[T]] {
	return rapid.Just(None[T]())
}

// renderOption formats a present value with render and an absent one as "".
func renderOption[T any](o Option[T], render func(T) string) string {
	if v, ok := o.Get(); ok {
		return render(v)
	}
	return ""
}
