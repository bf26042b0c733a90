// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Finally wraps item so that the finalizer produced by f runs once the
// stream is exhausted. Every element of item passes through unchanged,
// in order; exhaustion is reported only after the finalizer completes.
//
// Once the combined stream has reported exhaustion, every further
// PollNext reports exhaustion again and the finalizer does not rerun.
func Finally[A, B any](item Stream[A], f func() Future[B]) Stream[A] {
	return &finallyStream[A, B]{item: item, f: Once(f)}
}

type finallyStream[A, B any] struct {
	item Stream[A]
	fin  Future[B]
	f    *Affine[Future[B]]
}

func (c *finallyStream[A, B]) PollNext(w Waker) Poll[Option[A]] {
	if c.item != nil {
		p := c.item.PollNext(w)
		if p.IsPending() {
			return Pending[Option[A]]()
		}
		next, _ := p.Get()
		if next.IsSome() {
			// Pass-through: no state change, stay on the item phase.
			return Ready(next)
		}
		c.fin = c.f.Invoke()
		c.item = nil
	}
	if c.fin != nil {
		if c.fin.Poll(w).IsPending() {
			return Pending[Option[A]]()
		}
		c.fin = nil
	}
	return Ready(None[A]())
}
