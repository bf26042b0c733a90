// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Option represents a value that is either present (Some) or absent (None).
// Streams report Poll[Option[A]]: Some carries the next element, None is
// the exhaustion marker.
type Option[A any] struct {
	value A
	some  bool
}

// Some creates an Option holding a value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, some: true}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.some
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.some
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.some {
		return o.value, true
	}
	var zero A
	return zero, false
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the value of a Some.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.some {
		return Some(f(o.value))
	}
	return None[B]()
}
