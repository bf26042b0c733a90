// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fin provides guaranteed-finalization combinators for
// suspendable computations.
//
// A combinator wraps an existing computation together with a factory for
// an asynchronous finalizer. Once the wrapped computation completes, the
// finalizer runs to completion before the combined computation reports
// its own completion — independent of whether the wrapped computation
// produced a value, an empty sequence, or (in the fallible variant) an
// error.
//
// # Poll Contract
//
// Computations follow a cooperative suspend/resume model. Each resume
// call either completes or registers a [Waker] and reports Pending:
//
//   - [Future]: a single-value computation; Poll returns [Poll] of the value
//   - [Stream]: a sequence; PollNext returns [Poll] of [Option] — Some(a)
//     per element, None on exhaustion
//   - fallible sequence: a [Stream] of [Result] elements
//
// The combinators consume and produce this contract unchanged, so they
// compose transparently with any other adapter expecting it. Suspension
// is transparent: the caller's Waker is passed straight through to the
// wrapped computation and the finalizer.
//
// # Combinators
//
//   - [ThenFinally]: run the finalizer after a Future completes, then
//     re-emit the buffered value
//   - [Finally]: pass every stream element through, run the finalizer on
//     exhaustion, then report exhaustion
//   - [TryFinally]: success-path cleanup — the first error short-circuits
//     and the finalizer is skipped
//   - [TryFinallyAlways]: unconditional cleanup — the first error is held
//     back until the finalizer has run
//
// The two fallible variants exist because "cleanup on failure" is a
// policy choice; callers pick by name instead of inheriting a default.
//
// Each combinator is a two-phase state machine: RunningItem polls the
// wrapped computation, RunningFinalizer polls the finalizer, Done is
// terminal. The wrapped computation and the finalizer are never polled
// in the same resume call, and the finalizer's first poll strictly
// follows the wrapped computation's last.
//
// # Factory Discipline
//
// The finalizer factory is consumed at most once, enforced by [Affine]
// ([Once]). A combined computation is single-use: sequence variants
// report exhaustion forever once exhausted; polling a completed
// [ThenFinally] panics with [InvariantError].
//
// # Invariant Violations
//
// Internal invariant violations (a consumed factory re-invoked, an empty
// output buffer at completion) are implementation defects, not data.
// They panic with [InvariantError], a typed value hosts can recover and
// classify. Errors carried by fallible streams are ordinary values and
// never panic.
//
// # Driving
//
// [Await], [AwaitContext], [AwaitAll], [Next], [Collect], [TryCollect],
// and [Values] drive computations with a parking waker for callers that
// do not bring their own scheduler. Abandoning a computation mid-flight
// (dropping it, or canceling AwaitContext) runs no finalizer: the
// finalization guarantee holds only on driven completion.
package fin
