// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

// Policy decides, at the moment a guard fires, whether its action runs.
// The set of policies is closed: [Exit], [Success] and [Failure].
type Policy interface {
	fires(unwinding bool) bool
}

// Exit runs the action on every scope exit.
type Exit struct{}

// Success runs the action only when the scope exits without a panic.
type Success struct{}

// Failure runs the action only when the scope exits by panicking.
type Failure struct{}

func (Exit) fires(bool) bool              { return true }
func (Success) fires(unwinding bool) bool { return !unwinding }
func (Failure) fires(unwinding bool) bool { return unwinding }
