// Package zchan provides context-aware channel operations
// with uniform logging on cancellation.
package zchan

import (
	"context"
	"log/slog"
)

// SendC sends val to out unless ctx is canceled first.
// On cancellation it logs "Context canceled while " + during
// together with the cancellation cause, and reports false.
// Otherwise the value was sent and SendC reports true.
func SendC[T any](ctx context.Context, log *slog.Logger, out chan<- T, val T, during string) (sent bool) {
	select {
	case <-ctx.Done():
		log.Info("Context canceled while "+during, "cause", context.Cause(ctx))
		return false
	case out <- val:
		return true
	}
}
