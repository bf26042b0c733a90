// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin_test

import (
	"code.hybscloud.com/fin"
)

// countdown returns a Future that reports Pending n times (waking
// immediately each time) before completing with v.
func countdown[A any](n int, v A) fin.Future[A] {
	remaining := n
	return fin.FutureFunc[A](func(w fin.Waker) fin.Poll[A] {
		if remaining > 0 {
			remaining--
			w.Wake()
			return fin.Pending[A]()
		}
		return fin.Ready(v)
	})
}

// stutter returns a Stream that interleaves one Pending report (waking
// immediately) before each element and before the exhaustion marker.
func stutter[A any](values ...A) fin.Stream[A] {
	i := 0
	pending := true
	return fin.StreamFunc[A](func(w fin.Waker) fin.Poll[fin.Option[A]] {
		if pending {
			pending = false
			w.Wake()
			return fin.Pending[fin.Option[A]]()
		}
		pending = true
		if i < len(values) {
			v := values[i]
			i++
			return fin.Ready(fin.Some(v))
		}
		return fin.Ready(fin.None[A]())
	})
}

// flagFinalizer returns a factory whose finalizer sets *flag to mark,
// and a counter of how many times the factory was invoked.
func flagFinalizer(flag *int, mark int) (func() fin.Future[struct{}], *int) {
	invoked := new(int)
	return func() fin.Future[struct{}] {
		*invoked++
		return fin.Lazy(func() struct{} {
			*flag = mark
			return struct{}{}
		})
	}, invoked
}

// noopWaker is a Waker for tests that poll manually.
type noopWaker struct{}

func (noopWaker) Wake() {}
