// Package zctl provides runtime control over a debug environment:
// operator signals that flip debug state in a live process,
// and a rules file watcher that applies configuration changes on save.
//
// Both controllers follow the same lifecycle.
// The New* constructor validates its config, starts a kernel goroutine
// tied to the given context, and returns immediately;
// Wait blocks until the kernel has shut down and released its resources.
package zctl
