// SPDX-License-Identifier: MIT

package frame

import "log/slog"

// Log keys shared by every record so output stays greppable.
const (
	logKeyOp    = "op"
	logKeyRows  = "rows"
	logKeyCols  = "cols"
	logKeyAxis  = "axis"
	logKeyCount = "count"
)

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logOp records a completed frame operation at debug level with the shape of
// its result.
func logOp(l *slog.Logger, op string, rows, cols int, attrs ...any) {
	args := append([]any{logKeyOp, op, logKeyRows, rows, logKeyCols, cols}, attrs...)
	l.Debug("frame operation", args...)
}
