package zlog

import (
	"log/slog"
)

// Trunc wraps a string to ensure it serializes with a bounded length.
// Without this, logging the full content of a rules file on a parse failure
// could emit an arbitrarily large record.
type Trunc string

const truncLimit = 128

func (v Trunc) LogValue() slog.Value {
	if len(v) <= truncLimit {
		return slog.StringValue(string(v))
	}
	return slog.StringValue(string(v[:truncLimit]) + "...")
}
