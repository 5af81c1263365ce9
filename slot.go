// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"sync/atomic"
)

// slot holds a guard's action until the guard fires.
//
// The action is moved out at most once. take clears the stored reference,
// so whatever the action captured becomes unreachable from the guard
// whether or not the action is invoked.
type slot struct {
	used atomic.Uint32
	fn   func()
}

func (s *slot) arm(fn func()) {
	s.fn = fn
}

// take returns the action on the first call and nil on every later call.
func (s *slot) take() func() {
	if !s.used.CompareAndSwap(0, 1) {
		return nil
	}
	fn := s.fn
	s.fn = nil
	return fn
}
