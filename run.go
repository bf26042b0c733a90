// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

// Blocking drivers over the poll contract.
// A driver polls with a parking waker: when the computation reports
// Pending, the driver blocks until Wake is called, then polls again.
// The combinators never depend on the drivers; any scheduler that
// honors the Waker contract can drive them instead.

// parker is a Waker that unblocks a waiting driver.
// Wake never blocks; redundant wakeups coalesce into one.
type parker chan struct{}

func newParker() parker {
	return make(parker, 1)
}

func (p parker) Wake() {
	select {
	case p <- struct{}{}:
	default:
	}
}

// Await drives f to completion and returns its value.
// Blocks between polls until the computation signals a wakeup; a Future
// that goes Pending without ever waking blocks forever, matching the
// underlying contract that completion is never promised.
func Await[A any](f Future[A]) A {
	p := newParker()
	for {
		if v, ok := f.Poll(p).Get(); ok {
			return v
		}
		<-p
	}
}

// AwaitContext drives f to completion or until ctx is done.
// Abandoning a computation this way does not run its finalizer; the
// combinators guarantee finalization only on driven completion.
func AwaitContext[A any](ctx context.Context, f Future[A]) (A, error) {
	p := newParker()
	for {
		if v, ok := f.Poll(p).Get(); ok {
			return v, nil
		}
		select {
		case <-p:
		case <-ctx.Done():
			var zero A
			return zero, ctx.Err()
		}
	}
}

// AwaitAll drives each future on its own goroutine and returns their
// values in argument order. The first context error cancels the rest.
func AwaitAll[A any](ctx context.Context, fs ...Future[A]) ([]A, error) {
	group, ctx := errgroup.WithContext(ctx)
	out := make([]A, len(fs))
	for i, f := range fs {
		group.Go(func() error {
			v, err := AwaitContext(ctx, f)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Next drives s until it yields its next element or exhausts.
// Returns Some(element), or None on exhaustion.
func Next[A any](s Stream[A]) Option[A] {
	p := newParker()
	for {
		if o, ok := s.PollNext(p).Get(); ok {
			return o
		}
		<-p
	}
}

// Collect drains s and returns all yielded elements in order.
func Collect[A any](s Stream[A]) []A {
	var out []A
	for {
		v, ok := Next(s).Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// TryCollect drains a fallible stream up to its first error.
// Returns the successful prefix and the first error, if any.
func TryCollect[A any](s Stream[Result[A]]) ([]A, error) {
	var out []A
	for {
		r, ok := Next(s).Get()
		if !ok {
			return out, nil
		}
		if err, ok := r.GetLeft(); ok {
			return out, err
		}
		v, _ := r.GetRight()
		out = append(out, v)
	}
}

// Values exposes s as a Go iterator, driving it with a parking waker.
// Stopping the iteration early abandons the stream mid-flight.
func Values[A any](s Stream[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			v, ok := Next(s).Get()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
