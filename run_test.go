// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/fin"
)

// asyncResult completes on another goroutine and wakes the driver.
type asyncResult[A any] struct {
	mu      sync.Mutex
	started bool
	done    bool
	v       A
	run     func() A
}

func (f *asyncResult[A]) Poll(w fin.Waker) fin.Poll[A] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return fin.Ready(f.v)
	}
	if !f.started {
		f.started = true
		go func() {
			v := f.run()
			f.mu.Lock()
			f.v = v
			f.done = true
			f.mu.Unlock()
			w.Wake()
		}()
	}
	return fin.Pending[A]()
}

func TestAwaitCrossGoroutineWakeup(t *testing.T) {
	f := &asyncResult[int]{run: func() int {
		time.Sleep(time.Millisecond)
		return 42
	}}
	val := 0
	factory, _ := flagFinalizer(&val, 1)

	got := fin.Await(fin.ThenFinally[int, struct{}](f, factory))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if val != 1 {
		t.Fatal("finalizer did not run")
	}
}

func TestAwaitContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Never completes and never wakes.
	stuck := fin.FutureFunc[int](func(fin.Waker) fin.Poll[int] {
		return fin.Pending[int]()
	})
	_, err := fin.AwaitContext(ctx, stuck)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestAwaitContextCompletes(t *testing.T) {
	got, err := fin.AwaitContext(context.Background(), countdown(3, "ok"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}
}

func TestAwaitAll(t *testing.T) {
	flags := make([]int, 3)
	fs := make([]fin.Future[int], 3)
	for i := range fs {
		factory, _ := flagFinalizer(&flags[i], 1)
		fs[i] = fin.ThenFinally(countdown(i, i*10), factory)
	}

	got, err := fin.AwaitAll(context.Background(), fs...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{0, 10, 20}) {
		t.Fatalf("got %v, want [0 10 20]", got)
	}
	for i, f := range flags {
		if f != 1 {
			t.Fatalf("finalizer %d did not run", i)
		}
	}
}

func TestAwaitAllCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stuck := fin.FutureFunc[int](func(fin.Waker) fin.Poll[int] {
		return fin.Pending[int]()
	})
	_, err := fin.AwaitAll(ctx, fin.Pure(1), stuck)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestNext(t *testing.T) {
	st := fin.Of(1, 2)
	if v, ok := fin.Next(st).Get(); !ok || v != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := fin.Next(st).Get(); !ok || v != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", v, ok)
	}
	if fin.Next(st).IsSome() {
		t.Fatal("expected exhaustion")
	}
}

func TestCollectSuspendingStream(t *testing.T) {
	got := fin.Collect(stutter("a", "b", "c"))
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("got %v, want [a b c]", got)
	}
}

func TestValues(t *testing.T) {
	val := 0
	factory, _ := flagFinalizer(&val, 1)
	st := fin.Finally(fin.Of(1, 2, 3), factory)

	var got []int
	for v := range fin.Values(st) {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if val != 1 {
		t.Fatal("finalizer did not run")
	}
}

func TestValuesEarlyStop(t *testing.T) {
	val := 0
	factory, invoked := flagFinalizer(&val, 1)
	st := fin.Finally(fin.Of(1, 2, 3), factory)

	for v := range fin.Values(st) {
		if v == 2 {
			break
		}
	}
	// Abandonment mid-flight: no finalizer guarantee.
	if *invoked != 0 {
		t.Fatalf("factory invoked %d times after abandonment, want 0", *invoked)
	}
}
