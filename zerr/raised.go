package zerr

import (
	"errors"
	"fmt"
)

// FatalError is the catchable failure produced when a fatal condition
// is dispatched under the raise exit action.
// It propagates as a panic value until recovered by [Catch]
// (or a caller's own recover); unrecovered, it ends the process.
type FatalError struct {
	Code Code
}

func (e FatalError) Error() string {
	return fmt.Sprintf("fatal error: %s", e.Code)
}

// AssertionError is the catchable failure produced when an assertion
// violation is dispatched under the raise debug action.
type AssertionError struct {
	// Expr is the asserted expression or message from the call site.
	Expr string

	// File and Line locate the call site that made the assertion.
	File string
	Line int

	// Tag is the debug tag for tag-conditional assertions,
	// and empty for unconditional ones.
	Tag string
}

func (e AssertionError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("assertion violation (tag %q) at %s:%d: %s", e.Tag, e.File, e.Line, e.Expr)
	}
	return fmt.Sprintf("assertion violation at %s:%d: %s", e.File, e.Line, e.Expr)
}

// IsRaised reports whether e is one of the catchable failures
// raised by the debug subsystem.
func IsRaised(e error) bool {
	return errors.As(e, new(FatalError)) ||
		errors.As(e, new(AssertionError))
}

// Catch runs fn and recovers any raised failure,
// returning it as an ordinary error.
// Panics that are not raised failures propagate unchanged.
// Catch returns nil when fn completes normally.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if e, ok := r.(error); ok && IsRaised(e) {
			err = e
			return
		}

		panic(r)
	}()

	fn()
	return nil
}
