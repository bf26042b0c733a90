// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Single-value finalization.
//
// The combinator is a two-phase state machine. While the item slot is
// occupied it polls the wrapped computation; on completion it buffers
// the value, consumes the factory, and swaps the item slot for the
// finalizer slot. While the finalizer slot is occupied it polls the
// finalizer. Only when both slots are empty does it report the buffered
// value. At most one of the two slots is occupied at any time, and the
// wrapped computation and the finalizer are never polled in the same
// resume call.

// ThenFinally wraps item so that the finalizer produced by f runs once
// item completes. The combined Future reports item's value, but only
// after the finalizer has also completed. The finalizer's own value is
// discarded; only its completion matters.
//
// The factory is consumed on first use. A combined Future completes
// exactly once; polling it after completion panics with *InvariantError.
func ThenFinally[A, B any](item Future[A], f func() Future[B]) Future[A] {
	return &thenFinally[A, B]{item: item, f: Once(f)}
}

type thenFinally[A, B any] struct {
	item Future[A]
	fin  Future[B]
	f    *Affine[Future[B]]
	out  Option[A]
}

func (c *thenFinally[A, B]) Poll(w Waker) Poll[A] {
	if c.item != nil {
		p := c.item.Poll(w)
		if p.IsPending() {
			return Pending[A]()
		}
		v, _ := p.Get()
		c.out = Some(v)
		c.fin = c.f.Invoke()
		c.item = nil
	}
	if c.fin != nil {
		if c.fin.Poll(w).IsPending() {
			return Pending[A]()
		}
		c.fin = nil
	}
	out, ok := c.out.Get()
	if !ok {
		invariant("ThenFinally.Poll", "buffered output empty at completion")
	}
	c.out = None[A]()
	return Ready(out)
}
