package zdebug

import (
	"fmt"
	"strings"
)

// Action selects the response to an assertion failure.
type Action uint8

// Valid debug action values.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type Action -trimprefix=Action
const (
	// ActionUnspecified is the zero value for Action.
	// Dispatching ActionUnspecified is a bug.
	ActionUnspecified Action = iota

	// ActionAsk consults the environment's ask function,
	// by default an interactive terminal prompt,
	// for one of the other actions.
	ActionAsk

	// ActionContinue logs the failure and resumes normal execution.
	ActionContinue

	// ActionAbort ends the process with exit status 1.
	ActionAbort

	// ActionStop halts for inspection via the environment's stop hook.
	ActionStop

	// ActionRaise produces a catchable failure carrying the violation.
	ActionRaise

	// ActionInvokeGDB attaches gdb to the running process.
	ActionInvokeGDB

	// ActionInvokeLLDB attaches lldb to the running process.
	ActionInvokeLLDB
)

// ParseAction parses the textual form of an action,
// as accepted in rules and on the command line.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "ask":
		return ActionAsk, nil
	case "continue", "cont":
		return ActionContinue, nil
	case "abort":
		return ActionAbort, nil
	case "stop":
		return ActionStop, nil
	case "raise", "throw":
		return ActionRaise, nil
	case "gdb":
		return ActionInvokeGDB, nil
	case "lldb":
		return ActionInvokeLLDB, nil
	}

	return ActionUnspecified, fmt.Errorf("unknown debug action %q", s)
}

// Set implements the flag value interface used by spf13/pflag,
// so an Action can be registered directly as a command line flag.
func (i *Action) Set(s string) error {
	a, err := ParseAction(s)
	if err != nil {
		return err
	}
	*i = a
	return nil
}

// Type implements the flag value interface used by spf13/pflag.
func (i *Action) Type() string {
	return "debugAction"
}
