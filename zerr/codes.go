package zerr

import (
	"fmt"
	"strconv"
	"strings"
)

// Code identifies a fatal error category when invoking the exit action.
//
// The debug subsystem routes every code identically;
// the catalog below only gives stable identities (and exit statuses)
// to the conditions the solver itself reports.
type Code int

// The named error code catalog.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type Code -trimprefix=Code
const (
	// CodeOK is the zero value, indicating no error.
	// Invoking an exit action with CodeOK is legal but almost certainly a bug in the caller.
	CodeOK Code = 0

	// CodeMemOut indicates memory exhaustion.
	CodeMemOut Code = 101

	// CodeTimeout indicates the configured solver timeout elapsed.
	CodeTimeout Code = 102

	// CodeParser indicates unrecoverable input parse failure.
	CodeParser Code = 103

	// CodeUnsupported indicates an unsupported feature was requested.
	CodeUnsupported Code = 104

	// CodeTypeCheck indicates a sort or type error in solver input.
	CodeTypeCheck Code = 105

	// CodeIniFile indicates a malformed parameter file.
	CodeIniFile Code = 106

	// CodeNotImplementedYet indicates a code path that is recognized
	// but deliberately not implemented.
	CodeNotImplementedYet Code = 107

	// CodeOpenFile indicates a required file could not be opened.
	CodeOpenFile Code = 108

	// CodeCmdLine indicates invalid command line arguments.
	CodeCmdLine Code = 109

	// CodeInternalFatal indicates an internal invariant was violated
	// in a way that cannot be attributed to a more specific code.
	CodeInternalFatal Code = 110

	// CodeUnreachable indicates control reached code marked unreachable.
	CodeUnreachable Code = 111

	// CodeAllocExceeded indicates the configured allocation limit was exceeded.
	CodeAllocExceeded Code = 112
)

// ParseCode converts s into a Code.
// It accepts any name from the catalog, compared case-insensitively,
// or a base-10 integer for codes outside the catalog.
func ParseCode(s string) (Code, error) {
	for c := CodeMemOut; c <= CodeAllocExceeded; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	if strings.EqualFold(s, CodeOK.String()) {
		return CodeOK, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid error code %q: not a catalog name or base-10 integer", s)
	}
	return Code(n), nil
}

// Set implements the flag value interface used by spf13/pflag,
// so a Code can be registered directly as a command line flag.
func (i *Code) Set(s string) error {
	c, err := ParseCode(s)
	if err != nil {
		return err
	}
	*i = c
	return nil
}

// Type implements the flag value interface used by spf13/pflag.
func (i *Code) Type() string {
	return "errorCode"
}
