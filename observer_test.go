// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope_test

import (
	"testing"

	"code.hybscloud.com/scope"
)

func TestPanicObserver(t *testing.T) {
	if scope.PanicObserver.Unwinding(nil) {
		t.Fatal("nil recovered value reported as unwinding")
	}
	if !scope.PanicObserver.Unwinding("boom") {
		t.Fatal("recovered value not reported as unwinding")
	}
}

func TestNoUnwindObserver(t *testing.T) {
	var succeeded, failed bool
	r := catch(func() {
		defer scope.OnSuccess(func() { succeeded = true }, scope.WithObserver(scope.NoUnwind)).Close()
		defer scope.OnFailure(func() { failed = true }, scope.WithObserver(scope.NoUnwind)).Close()
		panic("boom")
	})
	if r != "boom" {
		t.Fatalf("got panic %v, want %q; observers must not swallow panics", r, "boom")
	}
	if !succeeded {
		t.Fatal("success guard did not fire under NoUnwind")
	}
	if failed {
		t.Fatal("failure guard fired under NoUnwind")
	}
}

func TestObserverFuncMock(t *testing.T) {
	var seen []any
	unwinding := true
	mock := scope.ObserverFunc(func(recovered any) bool {
		seen = append(seen, recovered)
		return unwinding
	})

	failed := false
	catch(func() {
		defer scope.OnFailure(func() { failed = true }, scope.WithObserver(mock)).Close()
	})
	if !failed {
		t.Fatal("failure guard did not follow the mock observer")
	}
	if len(seen) != 1 || seen[0] != nil {
		t.Fatalf("observer saw %v, want [<nil>]", seen)
	}

	unwinding = false
	succeeded := false
	catch(func() {
		defer scope.OnSuccess(func() { succeeded = true }, scope.WithObserver(mock)).Close()
		panic("boom")
	})
	if !succeeded {
		t.Fatal("success guard did not follow the mock observer")
	}
	if len(seen) != 2 || seen[1] != "boom" {
		t.Fatalf("observer saw %v, want [<nil> boom]", seen)
	}
}

func TestObserverNotConsultedByConsumedGuard(t *testing.T) {
	calls := 0
	mock := scope.ObserverFunc(func(any) bool {
		calls++
		return false
	})
	g := scope.OnExit(func() {}, scope.WithObserver(mock))
	g.Close()
	g.Close()
	if calls != 1 {
		t.Fatalf("observer consulted %d times, want 1", calls)
	}
}

func TestWithNilObserverUsesDefault(t *testing.T) {
	failed := false
	catch(func() {
		defer scope.OnFailure(func() { failed = true }, scope.WithObserver(nil)).Close()
		panic("boom")
	})
	if !failed {
		t.Fatal("nil observer did not fall back to PanicObserver")
	}
}
