// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Future is a single-value suspendable computation.
// Each Poll call gives the computation a chance to make progress; it
// returns Ready exactly once, after which the Future must not be polled
// again. A Future that returns Pending must first register the Waker.
type Future[A any] interface {
	Poll(w Waker) Poll[A]
}

// FutureFunc adapts a poll function into a Future.
type FutureFunc[A any] func(w Waker) Poll[A]

// Poll implements Future.
func (f FutureFunc[A]) Poll(w Waker) Poll[A] { return f(w) }

// Pure lifts a value into an immediately ready Future.
func Pure[A any](a A) Future[A] {
	return FutureFunc[A](func(Waker) Poll[A] {
		return Ready(a)
	})
}

// Lazy creates a Future that computes its value when polled.
func Lazy[A any](f func() A) Future[A] {
	return FutureFunc[A](func(Waker) Poll[A] {
		return Ready(f())
	})
}
