// SPDX-License-Identifier: MIT

// Package frame: functional configuration for New.
//
// Defaults:
//   - Labels: 0-based range on both axes (see defaultLabelFunc for supported types).
//   - Logger: discard handler (no output).
//
// Option constructors never fail; validation against the matrix shape happens
// in New so every mismatch surfaces as an error, not a panic.
package frame

import "log/slog"

// Option configures a Frame at construction.
type Option[L comparable] func(*options[L])

// options is the resolved configuration; unexported so callers go through Option.
type options[L comparable] struct {
	rowLabels []L
	colLabels []L
	rowsSet   bool // distinguishes WithRowLabels() (empty) from "not supplied"
	colsSet   bool
	labelFn   LabelFunc[L]
	logger    *slog.Logger
}

// WithRowLabels supplies one label per matrix row. The slice is copied.
func WithRowLabels[L comparable](labels ...L) Option[L] {
	cp := append([]L(nil), labels...)
	return func(o *options[L]) {
		o.rowLabels = cp
		o.rowsSet = true
	}
}

// WithColLabels supplies one label per matrix column. The slice is copied.
func WithColLabels[L comparable](labels ...L) Option[L] {
	cp := append([]L(nil), labels...)
	return func(o *options[L]) {
		o.colLabels = cp
		o.colsSet = true
	}
}

// WithLabelFunc sets the scheme used for any axis whose labels are omitted.
// A nil fn is ignored (no-op).
func WithLabelFunc[L comparable](fn LabelFunc[L]) Option[L] {
	return func(o *options[L]) {
		if fn != nil {
			o.labelFn = fn
		}
	}
}

// WithLogger routes debug records of frame operations to l.
// The logger is inherited by every frame and summary derived from this one.
// A nil l is ignored (no-op).
func WithLogger[L comparable](l *slog.Logger) Option[L] {
	return func(o *options[L]) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions[L comparable](opts []Option[L]) options[L] {
	o := options[L]{logger: discardLogger()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.labelFn == nil {
		o.labelFn, _ = defaultLabelFunc[L]()
	}

	return o
}
