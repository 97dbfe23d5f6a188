package zdebug

import (
	"fmt"
	"runtime"

	"github.com/lexi-the-cute/z3/internal/zlog"
	"github.com/lexi-the-cute/z3/zerr"
)

// Violation describes one assertion failure at a call site.
type Violation struct {
	// Expr is the asserted expression or message.
	Expr string

	// File and Line locate the call site.
	File string
	Line int

	// Tag is the debug tag that gated the assertion,
	// or empty for unconditional assertions.
	Tag string
}

// err converts the violation to its catchable failure form.
func (v Violation) err() zerr.AssertionError {
	return zerr.AssertionError{Expr: v.Expr, File: v.File, Line: v.Line, Tag: v.Tag}
}

// callerSite returns the file and line of the caller skip+1 frames up,
// for building a Violation inside a call-site helper.
func callerSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}
	return file, line
}

// InvokeExitAction resolves the current default exit action
// and performs it for the given error code.
//
// Under [ExitActionRaise] this panics with a [zerr.FatalError]
// carrying the code; the failure is catchable with [zerr.Catch],
// and with no recovery point on the stack it propagates to process exit.
// Under [ExitActionTerminate] the process ends with the code
// as its exit status, and InvokeExitAction does not return.
//
// The code is never validated: any integer, recognized by the
// [zerr] catalog or not, dispatches identically.
func (e *Environment) InvokeExitAction(code zerr.Code) {
	switch a := e.DefaultExitAction(); a {
	case ExitActionRaise:
		panic(zerr.FatalError{Code: code})
	case ExitActionTerminate:
		e.exitFn(int(code))
	default:
		panic(fmt.Errorf("BUG: invalid exit action %s", a))
	}
}

// HandleAssertionFailure reports the violation and performs the
// current default debug action.
//
// The violation is always logged at error level first. Then:
//   - [ActionContinue] returns normally.
//   - [ActionRaise] panics with a [zerr.AssertionError],
//     catchable with [zerr.Catch].
//   - [ActionAbort] ends the process with exit status 1.
//   - [ActionStop] halts for inspection via the stop hook,
//     then returns normally.
//   - [ActionInvokeGDB] and [ActionInvokeLLDB] run the attach hook
//     and then end the process with [zerr.CodeInternalFatal];
//     resumption under the external debugger is not modeled here.
//   - [ActionAsk] consults the ask function for one of the above
//     and performs that instead. An ask function that cannot answer
//     also ends the process with [zerr.CodeInternalFatal].
func (e *Environment) HandleAssertionFailure(v Violation) {
	e.notify(v)

	a := e.DefaultDebugAction()
	if a == ActionAsk {
		a = e.askFn(v)
		if a == ActionAsk || a == ActionUnspecified || a > ActionInvokeLLDB {
			e.log.Error("Ask strategy did not produce an action; exiting", "got", a)
			e.exitFn(int(zerr.CodeInternalFatal))
			return
		}
	}

	switch a {
	case ActionContinue:
		// Already logged.
		return
	case ActionRaise:
		panic(v.err())
	case ActionAbort:
		e.exitFn(1)
	case ActionStop:
		e.stopFn()
	case ActionInvokeGDB, ActionInvokeLLDB:
		e.attachFn(a)
		e.exitFn(int(zerr.CodeInternalFatal))
	default:
		panic(fmt.Errorf("BUG: invalid debug action %s", a))
	}
}

// notify logs the violation at error level.
func (e *Environment) notify(v Violation) {
	log := zlog.Site(e.log, v.File, v.Line)
	if v.Tag != "" {
		log = log.With("tag", v.Tag)
	}
	log.Error("Assertion violation", "expr", v.Expr)
}
