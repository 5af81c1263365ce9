// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

// Option configures a guard at construction.
type Option func(*options)

type options struct {
	observer UnwindObserver
}

// WithObserver sets the observer consulted when the guard fires.
// A nil observer selects [PanicObserver].
func WithObserver(o UnwindObserver) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.observer == nil {
		o.observer = PanicObserver
	}
	return o
}
