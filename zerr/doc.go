// Package zerr defines the process-wide error codes shared across the solver,
// and the catchable failures raised by the debug subsystem's dispatcher.
//
// Error codes double as process exit statuses.
// The dispatcher never interprets a code's meaning;
// callers are free to pass codes outside the named catalog.
//
// A "raised" failure is a panic carrying a [FatalError] or [AssertionError] value.
// Call sites that act as recovery points use [Catch] to convert a raised failure
// back into an ordinary error without swallowing unrelated panics.
package zerr
