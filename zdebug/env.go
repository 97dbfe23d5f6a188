package zdebug

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"sync"
)

// AskFunc resolves [ActionAsk] to one of the concrete debug actions.
// Returning ActionAsk itself signals that the strategy could not
// produce an answer, for example a prompt reading from a closed stdin;
// the dispatcher then ends the process rather than loop or hang.
type AskFunc func(Violation) Action

// Environment is the handle to all debug state for one process:
// the assertion switch, the debug tag table, and the default actions
// for assertion failures and fatal internal errors.
//
// All methods are safe for concurrent use
// except the Set*Func hooks,
// which must be called before any other use, if called at all.
type Environment struct {
	log *slog.Logger

	// One lock guards all debug state,
	// so rule application and snapshots are atomic
	// with respect to every individual operation.
	mu sync.RWMutex

	assertsEnabled bool

	// Tag states. Enabling creates an entry; disabling marks an
	// existing entry false without creating one.
	// A nil map is the finalized or fresh state;
	// EnableDebug allocates lazily.
	tags map[string]bool

	exitAction  ExitAction
	debugAction Action

	// Hooks for interactive, inspection, and terminal actions.
	// Configured before concurrent use, so not guarded by mu.
	askFn    AskFunc
	attachFn func(Action)
	stopFn   func()
	exitFn   func(status int)
}

// NewEnvironment returns an Environment with assertions enabled,
// no debug tags, and both default actions set to raise.
func NewEnvironment(log *slog.Logger) *Environment {
	e := &Environment{
		log: log,

		assertsEnabled: true,

		exitAction:  ExitActionRaise,
		debugAction: ActionRaise,
	}

	e.askFn = TerminalAsk(os.Stdin, os.Stderr)
	e.attachFn = e.attach
	e.stopFn = runtime.Breakpoint
	e.exitFn = os.Exit

	return e
}

// EnableAssertions unconditionally overwrites the assertion switch.
// While the switch is off, gated assertion checks are not evaluated at all.
func (e *Environment) EnableAssertions(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.assertsEnabled = on
}

// AssertionsEnabled reports whether assertion checks are evaluated.
func (e *Environment) AssertionsEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.assertsEnabled
}

// EnableDebug marks the given tag as enabled,
// creating its entry if absent. Idempotent.
func (e *Environment) EnableDebug(tag string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enableDebugLocked(tag)
}

func (e *Environment) enableDebugLocked(tag string) {
	if e.tags == nil {
		// Lazily recreated after FinalizeDebug.
		e.tags = make(map[string]bool)
	}
	e.tags[tag] = true
}

// DisableDebug marks the given tag as disabled if it has an entry.
// It is a no-op, not an error, for a tag that was never enabled.
func (e *Environment) DisableDebug(tag string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disableDebugLocked(tag)
}

func (e *Environment) disableDebugLocked(tag string) {
	if _, ok := e.tags[tag]; !ok {
		return
	}
	e.tags[tag] = false
}

// IsDebugEnabled reports whether the given tag has an entry and is enabled.
// Unknown tags report false.
func (e *Environment) IsDebugEnabled(tag string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tags[tag]
}

// FinalizeDebug discards the entire tag table.
// Afterwards the environment behaves as if freshly constructed:
// every tag reports disabled, and the next EnableDebug
// operates on a new empty table.
func (e *Environment) FinalizeDebug() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tags = nil
}

// SetDefaultExitAction overwrites the response to fatal error dispatch.
// Every proper ExitAction value is legal to set, repeatedly or not;
// a value outside the enumeration is a bug in the caller.
func (e *Environment) SetDefaultExitAction(a ExitAction) {
	if a == ExitActionUnspecified || a > ExitActionTerminate {
		panic(fmt.Errorf("BUG: SetDefaultExitAction called with invalid action %s", a))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.exitAction = a
}

// DefaultExitAction reports the current response to fatal error dispatch.
func (e *Environment) DefaultExitAction() ExitAction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.exitAction
}

// SetDefaultDebugAction overwrites the response to assertion failures.
// Every proper Action value is legal to set, repeatedly or not;
// a value outside the enumeration is a bug in the caller.
func (e *Environment) SetDefaultDebugAction(a Action) {
	if a == ActionUnspecified || a > ActionInvokeLLDB {
		panic(fmt.Errorf("BUG: SetDefaultDebugAction called with invalid action %s", a))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.debugAction = a
}

// DefaultDebugAction reports the current response to assertion failures.
func (e *Environment) DefaultDebugAction() Action {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.debugAction
}

// State is a coherent view of an Environment's debug state,
// as of one instant.
type State struct {
	AssertionsEnabled bool

	// Tags holding an entry in the table, sorted by name.
	EnabledTags  []string
	DisabledTags []string

	ExitAction  ExitAction
	DebugAction Action
}

// LogValue implements [slog.LogValuer],
// so a State logs as one structured group.
func (s State) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("asserts_enabled", s.AssertionsEnabled),
		slog.Any("enabled_tags", s.EnabledTags),
		slog.Any("disabled_tags", s.DisabledTags),
		slog.String("exit_action", s.ExitAction.String()),
		slog.String("debug_action", s.DebugAction.String()),
	)
}

// Snapshot returns the full debug state as of one instant.
// No concurrent write can tear a single snapshot.
func (e *Environment) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := State{
		AssertionsEnabled: e.assertsEnabled,
		ExitAction:        e.exitAction,
		DebugAction:       e.debugAction,
	}
	for tag, on := range e.tags {
		if on {
			s.EnabledTags = append(s.EnabledTags, tag)
		} else {
			s.DisabledTags = append(s.DisabledTags, tag)
		}
	}
	slices.Sort(s.EnabledTags)
	slices.Sort(s.DisabledTags)

	return s
}

// SetAskFunc replaces the strategy used to resolve [ActionAsk].
// The default strategy prompts interactively,
// reading os.Stdin and writing os.Stderr.
//
// SetAskFunc must be called before any concurrent use of e.
func (e *Environment) SetAskFunc(fn AskFunc) {
	if fn == nil {
		panic(errors.New("BUG: SetAskFunc called with nil fn"))
	}
	e.askFn = fn
}

// SetAttachFunc replaces the hook that attaches an external debugger
// for [ActionInvokeGDB] and [ActionInvokeLLDB].
// The default hook spawns the selected debugger against the current process.
//
// SetAttachFunc must be called before any concurrent use of e.
func (e *Environment) SetAttachFunc(fn func(Action)) {
	if fn == nil {
		panic(errors.New("BUG: SetAttachFunc called with nil fn"))
	}
	e.attachFn = fn
}

// SetStopFunc replaces the halt-for-inspection hook used by [ActionStop].
// The default hook is [runtime.Breakpoint].
//
// SetStopFunc must be called before any concurrent use of e.
func (e *Environment) SetStopFunc(fn func()) {
	if fn == nil {
		panic(errors.New("BUG: SetStopFunc called with nil fn"))
	}
	e.stopFn = fn
}

// SetExitFunc replaces the process termination hook.
// The default hook is [os.Exit]; tests replace it to observe
// terminal dispatch branches without ending the test process.
//
// SetExitFunc must be called before any concurrent use of e.
func (e *Environment) SetExitFunc(fn func(status int)) {
	if fn == nil {
		panic(errors.New("BUG: SetExitFunc called with nil fn"))
	}
	e.exitFn = fn
}
