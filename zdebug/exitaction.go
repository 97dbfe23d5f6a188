package zdebug

import (
	"fmt"
	"strings"
)

// ExitAction selects the response to a fatal internal error,
// dispatched through [*Environment.InvokeExitAction].
type ExitAction uint8

// Valid exit action values.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type ExitAction -trimprefix=ExitAction
const (
	// ExitActionUnspecified is the zero value for ExitAction.
	// Dispatching ExitActionUnspecified is a bug.
	ExitActionUnspecified ExitAction = iota

	// ExitActionRaise produces a catchable failure carrying the error code.
	ExitActionRaise

	// ExitActionTerminate ends the process,
	// with the error code as the exit status.
	ExitActionTerminate
)

// ParseExitAction parses the textual form of an exit action,
// as accepted in rules and on the command line.
func ParseExitAction(s string) (ExitAction, error) {
	switch strings.ToLower(s) {
	case "raise", "throw":
		return ExitActionRaise, nil
	case "terminate", "exit":
		return ExitActionTerminate, nil
	}

	return ExitActionUnspecified, fmt.Errorf("unknown exit action %q", s)
}

// Set implements the flag value interface used by spf13/pflag,
// so an ExitAction can be registered directly as a command line flag.
func (i *ExitAction) Set(s string) error {
	a, err := ParseExitAction(s)
	if err != nil {
		return err
	}
	*i = a
	return nil
}

// Type implements the flag value interface used by spf13/pflag.
func (i *ExitAction) Type() string {
	return "exitAction"
}
