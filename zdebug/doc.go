// Package zdebug provides the process-wide debugging and
// assertion-failure-response functionality for the solver.
//
// All debug state lives on an explicit [Environment] handle:
// the assertion switch, the named debug tag table, and the default
// actions taken on assertion failures and fatal internal errors.
// The process entry point constructs one Environment and threads it
// into every component that makes assertions; tests construct
// isolated environments freely.
//
// Validating every invariant on every operation is prohibitively
// expensive in production, so the call-site helpers come in two tiers.
// [Ensure] is always compiled and always checked.
// [Assert], [Assertf], [CondAssert], [DebugCode], [Unreachable], and
// [NotImplemented] perform their full checks only when built with the
// "debug" build tag, i.e. "go build -tags debug";
// without the tag the first four compile to no-ops and the last two
// route directly to the exit action.
//
// An Environment is configured through rule strings:
//   - A bare word enables the debug tag of that name,
//     and a leading "!" disables it, so "arith,!sat" enables "arith"
//     and disables "sat".
//   - "asserts=on" and "asserts=off" control the assertion switch.
//   - "exit-action=raise|terminate" selects the response to fatal errors.
//   - "debug-action=ask|continue|abort|stop|raise|gdb|lldb" selects the
//     response to assertion failures.
//   - [RulesFromString] parses a comma-separated list of directives;
//     [ParseRules] reads one directive per line from an [io.Reader],
//     skipping blank lines and comment lines starting with "#".
//   - Within one rule set, later rules win over earlier ones,
//     and [*Environment.Apply] performs the whole set atomically.
package zdebug
