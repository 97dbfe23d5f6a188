package ztest

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TimeFactor is a multiplier controlled by the
// Z3_TEST_TIME_FACTOR environment variable
// to increase test-related timeouts.
//
// A flat 100ms timer usually suffices on a workstation,
// but may not on a contended CI machine.
// Rather than editing individual tests,
// the operator can set e.g. Z3_TEST_TIME_FACTOR=3
// to triple every scaled timeout.
//
// The variable is exported for the rare test
// that needs to adjust the factor programmatically.
var TimeFactor ScaledDuration = 1

func init() {
	f := os.Getenv("Z3_TEST_TIME_FACTOR")
	if f == "" {
		return
	}

	n, err := strconv.Atoi(f)
	if err != nil {
		panic(fmt.Errorf(
			"failed to parse Z3_TEST_TIME_FACTOR (%q) into an integer: %w",
			f, err,
		))
	}

	if n <= 0 {
		panic(fmt.Errorf("Z3_TEST_TIME_FACTOR must be positive; got %d", n))
	}

	TimeFactor = ScaledDuration(n)
}

type ScaledDuration time.Duration

// ScaleMs returns ms in milliseconds, multiplied by [TimeFactor],
// so that test timeouts adjust to machines running under load.
//
// [ReceiveOrTimeout] accepts this type rather than a plain time.Duration
// to keep literal timeout values, which would flake on slower machines,
// out of tests.
func ScaleMs(ms int64) ScaledDuration {
	return TimeFactor * ScaledDuration(ms) * ScaledDuration(time.Millisecond)
}
