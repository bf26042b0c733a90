// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Fallible-sequence finalization comes in two named variants that differ
// only in what the first error does to the finalizer:
//
//   - TryFinally: success-path cleanup. The first Left short-circuits;
//     the factory is discarded unconsumed and the finalizer never runs.
//   - TryFinallyAlways: unconditional cleanup. The first Left is held
//     back while the finalizer runs, then yielded.
//
// Both pass Right elements through unchanged and, on clean exhaustion,
// run the finalizer before reporting exhaustion.

// TryFinally wraps a fallible stream so that the finalizer produced by f
// runs only on clean exhaustion. On the first Left element the combined
// stream yields that element, skips the finalizer entirely, and is
// exhausted from then on.
func TryFinally[A, B any](item Stream[Result[A]], f func() Future[B]) Stream[Result[A]] {
	return &tryFinally[A, B]{item: item, f: Once(f)}
}

type tryFinally[A, B any] struct {
	item Stream[Result[A]]
	fin  Future[B]
	f    *Affine[Future[B]]
}

func (c *tryFinally[A, B]) PollNext(w Waker) Poll[Option[Result[A]]] {
	if c.item != nil {
		p := c.item.PollNext(w)
		if p.IsPending() {
			return Pending[Option[Result[A]]]()
		}
		next, _ := p.Get()
		if r, ok := next.Get(); ok {
			if r.IsLeft() {
				c.item = nil
				c.f.Discard()
			}
			return Ready(Some(r))
		}
		c.fin = c.f.Invoke()
		c.item = nil
	}
	if c.fin != nil {
		if c.fin.Poll(w).IsPending() {
			return Pending[Option[Result[A]]]()
		}
		c.fin = nil
	}
	return Ready(None[Result[A]]())
}

// TryFinallyAlways wraps a fallible stream so that the finalizer produced
// by f runs on every terminating path. On the first Left element the
// element is buffered, the finalizer runs, the buffered element is
// yielded, and the combined stream is exhausted from then on. Clean
// exhaustion behaves exactly like TryFinally.
func TryFinallyAlways[A, B any](item Stream[Result[A]], f func() Future[B]) Stream[Result[A]] {
	return &tryFinallyAlways[A, B]{item: item, f: Once(f)}
}

type tryFinallyAlways[A, B any] struct {
	item Stream[Result[A]]
	fin  Future[B]
	f    *Affine[Future[B]]
	held Option[Result[A]]
}

func (c *tryFinallyAlways[A, B]) PollNext(w Waker) Poll[Option[Result[A]]] {
	if c.item != nil {
		p := c.item.PollNext(w)
		if p.IsPending() {
			return Pending[Option[Result[A]]]()
		}
		next, _ := p.Get()
		if r, ok := next.Get(); ok {
			if r.IsRight() {
				return Ready(Some(r))
			}
			c.held = Some(r)
		}
		c.fin = c.f.Invoke()
		c.item = nil
	}
	if c.fin != nil {
		if c.fin.Poll(w).IsPending() {
			return Pending[Option[Result[A]]]()
		}
		c.fin = nil
	}
	if r, ok := c.held.Get(); ok {
		c.held = None[Result[A]]()
		return Ready(Some(r))
	}
	return Ready(None[Result[A]]())
}
