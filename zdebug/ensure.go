package zdebug

import (
	"github.com/lexi-the-cute/z3/zerr"
)

// Ensure checks a condition that must hold even in non-debug builds.
// A false cond reports the violation and then invokes the exit action
// with [zerr.CodeUnreachable].
//
// Unlike [Assert], Ensure is compiled unconditionally
// and ignores the assertion switch.
// Use it where skipping the check would let corrupted state propagate.
func Ensure(e *Environment, cond bool, expr string) {
	if cond {
		return
	}

	v := Violation{Expr: expr}
	v.File, v.Line = callerSite(1)

	e.notify(v)
	e.InvokeExitAction(zerr.CodeUnreachable)
}
