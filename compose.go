// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Composition helpers over the poll contract.
//
// Minimal definition: Pure and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// an intermediate Pure allocation per element.

// Bind sequences two futures (monadic bind).
// It drives m to completion, then passes the value to f and drives the
// resulting future. The second future is constructed exactly once.
func Bind[A, B any](m Future[A], f func(A) Future[B]) Future[B] {
	var next Future[B]
	return FutureFunc[B](func(w Waker) Poll[B] {
		if next == nil {
			p := m.Poll(w)
			if p.IsPending() {
				return Pending[B]()
			}
			v, _ := p.Get()
			next = f(v)
		}
		return next.Poll(w)
	})
}

// Map applies a pure function to the value of a future.
//
// Allocation note: Map is equivalent to Bind(m, compose(Pure, f)) but
// avoids the intermediate Pure future, making it the preferred choice
// when the transformation is pure.
func Map[A, B any](m Future[A], f func(A) B) Future[B] {
	return FutureFunc[B](func(w Waker) Poll[B] {
		return MapPoll(m.Poll(w), f)
	})
}

// Then sequences two futures, discarding the first value.
// This is more efficient than Bind when the second computation does not
// depend on the first value.
func Then[A, B any](m Future[A], n Future[B]) Future[B] {
	first := true
	return FutureFunc[B](func(w Waker) Poll[B] {
		if first {
			if m.Poll(w).IsPending() {
				return Pending[B]()
			}
			first = false
		}
		return n.Poll(w)
	})
}

// MapStream applies a pure function to every element of a stream.
// Pending and exhaustion pass through unchanged.
func MapStream[A, B any](s Stream[A], f func(A) B) Stream[B] {
	return StreamFunc[B](func(w Waker) Poll[Option[B]] {
		return MapPoll(s.PollNext(w), func(o Option[A]) Option[B] {
			return MapOption(o, f)
		})
	})
}
