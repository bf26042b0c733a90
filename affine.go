// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

import (
	"sync/atomic"
)

// Affine wraps a zero-argument factory with one-shot enforcement.
// The factory can be invoked at most once; subsequent attempts panic
// (Invoke) or return false (TryInvoke).
//
// The finalization combinators hold their finalizer factory in an Affine:
// every path that constructs the finalizer computation consumes the
// factory, so a second construction attempt surfaces as an invariant
// violation rather than a silent duplicate finalizer.
type Affine[A any] struct {
	used atomic.Uintptr
	f    func() A
}

// Once creates an affine factory from a regular factory function.
// The returned Affine can be invoked at most once.
func Once[A any](f func() A) *Affine[A] {
	return &Affine[A]{f: f}
}

// Invoke calls the factory and returns its product.
// Panics with *InvariantError if the factory has already been consumed.
func (a *Affine[A]) Invoke() A {
	if a.used.Add(1) != 1 {
		invariant("Affine.Invoke", "factory already consumed")
	}
	return a.f()
}

// TryInvoke attempts to call the factory.
// Returns (product, true) on success, or (zero, false) if already consumed.
func (a *Affine[A]) TryInvoke() (A, bool) {
	if a.used.Add(1) != 1 {
		var zero A
		return zero, false
	}
	return a.f(), true
}

// Discard marks the factory as consumed without invoking it.
func (a *Affine[A]) Discard() {
	a.used.Store(1)
}
