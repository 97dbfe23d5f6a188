package ztest

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a *slog.Logger associated with the test t,
// so that log output is attributed to the test that produced it.
func NewLogger(t testing.TB) *slog.Logger {
	// slogt adapts slog handlers to testing.T.Log calls.
	// Keep the dependency behind this one function
	// so tests import ztest rather than slogt directly.
	return slogt.New(t, slogt.Text())
}
