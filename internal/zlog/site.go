package zlog

import "log/slog"

// Site returns a copy of log that includes fields for the given file and line.
//
// Failure reports almost always want the originating call site attached,
// so this shorthand keeps those log calls compact.
func Site(log *slog.Logger, file string, line int) *slog.Logger {
	return log.With("file", file, "line", line)
}
