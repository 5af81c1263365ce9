// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scope provides scope guards: values that run a cleanup action
// exactly once when the enclosing function returns, conditioned on how it
// returns.
//
// # Guards
//
// Three guard kinds share one policy-parameterized core:
//
//   - [ExitGuard]: runs on every exit ([Exit] policy)
//   - [SuccessGuard]: runs only when no panic is in flight ([Success] policy)
//   - [FailureGuard]: runs only while a panic is unwinding ([Failure] policy)
//
// The policy is evaluated when the guard fires, not when it is armed.
// Returning an error is a normal exit; only a panic counts as unwinding.
//
// # Construction
//
// Each kind has two constructors. The plain form captures the enclosing
// variables by reference; the With form takes ownership of a value
// snapshot at construction:
//
//   - [OnExit], [ExitWith]
//   - [OnSuccess], [SuccessWith]
//   - [OnFailure], [FailureWith]
//
// # Binding
//
// A guard has effect only when its Close is deferred directly:
//
//	func transfer(tx *Tx) error {
//		defer scope.OnFailure(func() { tx.Rollback() }).Close()
//		defer scope.OnSuccess(func() { tx.Commit() }).Close()
//		return apply(tx)
//	}
//
// Close observes a panic through recover, so it must be the deferred call
// itself. Wrapping it (defer func() { g.Close() }()) hides the panic and
// every exit looks normal. Calling Close inline fires the guard at the end
// of that statement. A guard that is never closed never fires.
//
// Guards are single-shot and cannot be disarmed. Close may be called more
// than once; only the first call can run the action. A panic in flight is
// re-raised with its original value after the guard has fired. A panic
// raised by the action itself propagates as from a plain deferred call: it
// replaces the one in flight.
//
// # Unwind Observation
//
// Whether an exit is unwinding is decided by an [UnwindObserver] given the
// value Close recovered. [PanicObserver] is the default; [NoUnwind] and
// [ObserverFunc] substitute it through [WithObserver].
package scope
