//go:build debug

package zdebug

import (
	"fmt"
)

// Assert checks an invariant in debug builds.
// While the environment's assertion switch is off,
// no check is performed regardless of cond.
// A false cond under an enabled switch dispatches the
// default debug action via [*Environment.HandleAssertionFailure].
//
// In non-debug builds Assert compiles to a no-op.
func Assert(e *Environment, cond bool, expr string) {
	if !e.AssertionsEnabled() || cond {
		return
	}

	v := Violation{Expr: expr}
	v.File, v.Line = callerSite(1)
	e.HandleAssertionFailure(v)
}

// Assertf is [Assert] with a formatted message.
// The message is only formatted when the assertion fails.
func Assertf(e *Environment, cond bool, format string, args ...any) {
	if !e.AssertionsEnabled() || cond {
		return
	}

	v := Violation{Expr: fmt.Sprintf(format, args...)}
	v.File, v.Line = callerSite(1)
	e.HandleAssertionFailure(v)
}

// CondAssert checks an invariant gated by both the assertion switch
// and the given debug tag; the check only fires when the switch is on
// and the tag is enabled.
// The resulting Violation carries the tag.
//
// In non-debug builds CondAssert compiles to a no-op.
func CondAssert(e *Environment, tag string, cond bool, expr string) {
	if !e.AssertionsEnabled() || !e.IsDebugEnabled(tag) || cond {
		return
	}

	v := Violation{Expr: expr, Tag: tag}
	v.File, v.Line = callerSite(1)
	e.HandleAssertionFailure(v)
}

// DebugCode runs fn iff the given debug tag is enabled.
// fn typically performs expensive validation or extra tracing
// that must not run in ordinary execution.
//
// In non-debug builds DebugCode compiles to a no-op.
func DebugCode(e *Environment, tag string, fn func()) {
	if !e.IsDebugEnabled(tag) {
		return
	}
	fn()
}

// Unreachable reports that control reached code expected to be unreachable.
// Debug builds dispatch the default debug action;
// non-debug builds invoke the exit action with [zerr.CodeUnreachable].
func Unreachable(e *Environment) {
	v := Violation{Expr: "unreachable code was reached"}
	v.File, v.Line = callerSite(1)
	e.HandleAssertionFailure(v)
}

// NotImplemented reports that control reached a code path
// that is not implemented yet.
// Debug builds dispatch the default debug action;
// non-debug builds invoke the exit action with [zerr.CodeNotImplementedYet].
func NotImplemented(e *Environment) {
	v := Violation{Expr: "not implemented yet"}
	v.File, v.Line = callerSite(1)
	e.HandleAssertionFailure(v)
}
