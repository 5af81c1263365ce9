// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

// guard is the policy-parameterized core shared by the three guard kinds.
// The policy is carried only in the type; it occupies no storage.
type guard[P Policy] struct {
	slot     slot
	observer UnwindObserver
}

func (g *guard[P]) init(fn func(), opts []Option) {
	g.slot.arm(fn)
	g.observer = buildOptions(opts).observer
}

// fire extracts the action and runs it if the policy holds for this exit.
// A non-nil recovered value is panicked again afterwards. A panic from the
// action takes over, as it would from a plain deferred call.
func (g *guard[P]) fire(recovered any) {
	if fn := g.slot.take(); fn != nil {
		var p P
		if p.fires(g.observer.Unwinding(recovered)) {
			fn()
		}
	}
	if recovered != nil {
		panic(recovered)
	}
}

// bind snapshots v into a nullary action.
func bind[T any](v T, f func(T)) func() {
	if f == nil {
		return nil
	}
	return func() { f(v) }
}

// ExitGuard runs its action whenever the enclosing scope ends.
//
// Close must be called directly by a defer statement:
//
//	defer scope.OnExit(func() { ... }).Close()
type ExitGuard struct {
	guard[Exit]
}

// OnExit arms an [ExitGuard]. The action sees the enclosing variables
// by reference. A nil action is allowed and does nothing.
func OnExit(fn func(), opts ...Option) *ExitGuard {
	g := new(ExitGuard)
	g.init(fn, opts)
	return g
}

// ExitWith arms an [ExitGuard] that owns v. The action receives the value
// v had at construction, not at exit.
func ExitWith[T any](v T, fn func(T), opts ...Option) *ExitGuard {
	return OnExit(bind(v, fn), opts...)
}

// Close fires the guard. Only the first call runs the action.
// A panic in flight is re-raised after the action.
func (g *ExitGuard) Close() {
	g.fire(recover())
}

// SuccessGuard runs its action only when the enclosing scope ends without
// a panic. Returning a non-nil error is a normal exit.
//
// Close must be called directly by a defer statement; a Close reached
// through another deferred function cannot see the panic and treats
// every exit as normal.
type SuccessGuard struct {
	guard[Success]
}

// OnSuccess arms a [SuccessGuard].
func OnSuccess(fn func(), opts ...Option) *SuccessGuard {
	g := new(SuccessGuard)
	g.init(fn, opts)
	return g
}

// SuccessWith arms a [SuccessGuard] that owns v.
func SuccessWith[T any](v T, fn func(T), opts ...Option) *SuccessGuard {
	return OnSuccess(bind(v, fn), opts...)
}

// Close fires the guard. Only the first call can run the action.
func (g *SuccessGuard) Close() {
	g.fire(recover())
}

// FailureGuard runs its action only when the enclosing scope ends by
// panicking. The panic continues after the action.
//
// Close must be called directly by a defer statement.
type FailureGuard struct {
	guard[Failure]
}

// OnFailure arms a [FailureGuard].
func OnFailure(fn func(), opts ...Option) *FailureGuard {
	g := new(FailureGuard)
	g.init(fn, opts)
	return g
}

// FailureWith arms a [FailureGuard] that owns v.
func FailureWith[T any](v T, fn func(T), opts ...Option) *FailureGuard {
	return OnFailure(bind(v, fn), opts...)
}

// Close fires the guard. Only the first call can run the action.
func (g *FailureGuard) Close() {
	g.fire(recover())
}
