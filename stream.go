// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

import "iter"

// Stream is a suspendable sequence: zero or more values over repeated
// resume calls, ended by an exhaustion marker.
// PollNext reports Pending (after registering the Waker), Ready(Some(a))
// for the next element, or Ready(None) once the stream is exhausted.
// After exhaustion, every further PollNext must report Ready(None).
type Stream[A any] interface {
	PollNext(w Waker) Poll[Option[A]]
}

// StreamFunc adapts a poll function into a Stream.
type StreamFunc[A any] func(w Waker) Poll[Option[A]]

// PollNext implements Stream.
func (f StreamFunc[A]) PollNext(w Waker) Poll[Option[A]] { return f(w) }

// Empty creates a stream that is exhausted from the start.
func Empty[A any]() Stream[A] {
	return StreamFunc[A](func(Waker) Poll[Option[A]] {
		return Ready(None[A]())
	})
}

// Of creates a stream that yields the given values in order, then exhausts.
func Of[A any](values ...A) Stream[A] {
	i := 0
	return StreamFunc[A](func(Waker) Poll[Option[A]] {
		if i < len(values) {
			v := values[i]
			i++
			return Ready(Some(v))
		}
		return Ready(None[A]())
	})
}

// Single creates a stream that yields the value of f once, then exhausts.
func Single[A any](f Future[A]) Stream[A] {
	done := false
	return StreamFunc[A](func(w Waker) Poll[Option[A]] {
		if done {
			return Ready(None[A]())
		}
		p := f.Poll(w)
		if p.IsPending() {
			return Pending[Option[A]]()
		}
		v, _ := p.Get()
		done = true
		return Ready(Some(v))
	})
}

// FromSeq creates a stream over a Go iterator.
// Elements are pulled lazily, one per PollNext; the underlying iterator
// is stopped once exhausted.
func FromSeq[A any](seq iter.Seq[A]) Stream[A] {
	var next func() (A, bool)
	var stop func()
	done := false
	return StreamFunc[A](func(Waker) Poll[Option[A]] {
		if done {
			return Ready(None[A]())
		}
		if next == nil {
			next, stop = iter.Pull(seq)
		}
		v, ok := next()
		if !ok {
			done = true
			stop()
			return Ready(None[A]())
		}
		return Ready(Some(v))
	})
}
