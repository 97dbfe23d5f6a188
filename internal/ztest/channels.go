package ztest

import (
	"time"
)

// TestingFatalHelper is the subset of [testing.TB] required by
// [ReceiveOrTimeout] and the related channel helpers,
// narrowed so the helpers can themselves be tested with a mock.
type TestingFatalHelper interface {
	Helper()

	Fatalf(format string, args ...any)
}

// ReceiveSoon receives a value from ch,
// calling tb.Fatal if the receive stays blocked
// past a reasonable default timeout.
func ReceiveSoon[T any](tb TestingFatalHelper, ch <-chan T) T {
	tb.Helper()
	return ReceiveOrTimeout(tb, ch, ScaleMs(100))
}

// ReceiveOrTimeout receives a value from ch,
// calling tb.Fatal if nothing arrives within the given timeout.
// Use [ScaleMs] to produce the ScaledDuration value.
//
// Most tests should use [ReceiveSoon];
// reserve ReceiveOrTimeout for exceptional cases.
func ReceiveOrTimeout[T any](tb TestingFatalHelper, ch <-chan T, timeout ScaledDuration) T {
	tb.Helper()

	if ch == nil {
		tb.Fatalf("refusing to block on receive from nil channel %T %v", ch, ch)
		panic("unreachable")
	}

	timer := time.NewTimer(time.Duration(timeout))
	defer timer.Stop()

	select {
	case <-timer.C:
		tb.Fatalf(
			"timed out while blocked receiving from channel %T %v; if this is flaky on only one machine, set the environment variable Z3_TEST_TIME_FACTOR to a value greater than the current value of %d",
			ch, ch, TimeFactor,
		)
		// tb.Fatalf would normally stop the testing goroutine,
		// but tb may be a mock in this package's own tests,
		// so panic to avoid needing a return value.
		panic("unreachable")
	case x := <-ch:
		return x
	}
}

// NotSendingSoon asserts that a read from ch stays blocked
// for a reasonable, short duration.
//
// Because there is no event to synchronize on,
// this helper blocks the test for the full duration.
func NotSendingSoon[T any](tb TestingFatalHelper, ch <-chan T) {
	tb.Helper()

	if ch == nil {
		tb.Fatalf("a nil channel never sends, making this check meaningless (%T %v)", ch, ch)
		panic("unreachable")
	}

	timer := time.NewTimer(time.Duration(ScaleMs(75)))
	defer timer.Stop()

	select {
	case <-timer.C:
		// Okay.
	case x := <-ch:
		tb.Fatalf(
			"received value %v on channel %T %v, when it was expected not to send any values",
			x, ch, ch,
		)
		panic("unreachable")
	}
}
