// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Poll boundary for cooperatively scheduled computations.
// A computation is given one chance to make progress per resume call and
// reports either readiness (with a result) or Pending after registering
// for a future wakeup through the supplied Waker.

// Waker registers interest in a future resume.
// A computation that returns Pending must arrange for Wake to be called
// once it can make progress again; the driver then resumes it.
type Waker interface {
	Wake()
}

// WakeFunc adapts a plain function into a Waker.
type WakeFunc func()

// Wake implements Waker.
func (f WakeFunc) Wake() { f() }

// Poll is the result of one resume call: either a completed value or
// Pending. The zero value is Pending with a zero result.
type Poll[A any] struct {
	value A
	ready bool
}

// Ready creates a completed Poll carrying a.
func Ready[A any](a A) Poll[A] {
	return Poll[A]{value: a, ready: true}
}

// Pending creates a not-yet-ready Poll.
// The caller must have registered with the Waker before returning it.
func Pending[A any]() Poll[A] {
	return Poll[A]{}
}

// IsReady reports whether the computation completed.
func (p Poll[A]) IsReady() bool {
	return p.ready
}

// IsPending reports whether the computation is still in flight.
func (p Poll[A]) IsPending() bool {
	return !p.ready
}

// Get returns the completed value and true, or zero and false.
func (p Poll[A]) Get() (A, bool) {
	if p.ready {
		return p.value, true
	}
	var zero A
	return zero, false
}

// MapPoll applies a pure function to the value of a ready Poll.
// Pending maps to Pending.
func MapPoll[A, B any](p Poll[A], f func(A) B) Poll[B] {
	if p.ready {
		return Ready(f(p.value))
	}
	return Pending[B]()
}
