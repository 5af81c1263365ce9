// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

// UnwindObserver reports whether the current scope exit is unwinding.
//
// Unwinding is called by a firing guard with the value its Close recovered.
// The result only selects the policy input; a recovered panic is always
// re-raised regardless of what the observer reports.
type UnwindObserver interface {
	Unwinding(recovered any) bool
}

// ObserverFunc adapts an ordinary function to [UnwindObserver].
type ObserverFunc func(recovered any) bool

// Unwinding implements [UnwindObserver].
func (f ObserverFunc) Unwinding(recovered any) bool {
	return f(recovered)
}

// PanicObserver treats any recovered value as unwinding. It is the default.
//
// Since Go 1.21 panic(nil) recovers as *runtime.PanicNilError, so every
// panic is observed. runtime.Goexit is not a panic and is reported as a
// normal exit.
var PanicObserver UnwindObserver = panicObserver{}

// NoUnwind never reports unwinding. Under it a [SuccessGuard] fires on
// every exit and a [FailureGuard] never fires.
var NoUnwind UnwindObserver = noUnwind{}

type panicObserver struct{}

func (panicObserver) Unwinding(recovered any) bool { return recovered != nil }

type noUnwind struct{}

func (noUnwind) Unwinding(any) bool { return false }
