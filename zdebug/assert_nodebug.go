//go:build !debug

package zdebug

import (
	"github.com/lexi-the-cute/z3/zerr"
)

// Assert is a no-op unless built with the "debug" build tag.
func Assert(*Environment, bool, string) {}

// Assertf is a no-op unless built with the "debug" build tag.
func Assertf(*Environment, bool, string, ...any) {}

// CondAssert is a no-op unless built with the "debug" build tag.
func CondAssert(*Environment, string, bool, string) {}

// DebugCode is a no-op unless built with the "debug" build tag.
func DebugCode(*Environment, string, func()) {}

// Unreachable reports that control reached code expected to be unreachable,
// then invokes the exit action with [zerr.CodeUnreachable].
// Unlike [Assert], this fires in non-debug builds too.
func Unreachable(e *Environment) {
	v := Violation{Expr: "unreachable code was reached"}
	v.File, v.Line = callerSite(1)

	e.notify(v)
	e.InvokeExitAction(zerr.CodeUnreachable)
}

// NotImplemented reports that control reached a code path
// that is not implemented yet,
// then invokes the exit action with [zerr.CodeNotImplementedYet].
// Unlike [Assert], this fires in non-debug builds too.
func NotImplemented(e *Environment) {
	v := Violation{Expr: "not implemented yet"}
	v.File, v.Line = callerSite(1)

	e.notify(v)
	e.InvokeExitAction(zerr.CodeNotImplementedYet)
}
