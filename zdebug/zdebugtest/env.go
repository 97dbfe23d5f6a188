// Package zdebugtest provides debug environments suitable for tests.
package zdebugtest

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/lexi-the-cute/z3/internal/ztest"
	"github.com/lexi-the-cute/z3/zdebug"
)

// NewEnv returns an environment logging through tb,
// with every terminal and inspection hook routed into the
// returned Recorder, so dispatching an action that would
// end or halt the process instead records it and returns.
func NewEnv(tb testing.TB) (*zdebug.Environment, *Recorder) {
	tb.Helper()

	r := new(Recorder)

	e := zdebug.NewEnvironment(ztest.NewLogger(tb))
	e.SetExitFunc(r.recordExit)
	e.SetAttachFunc(r.recordAttach)
	e.SetStopFunc(r.recordStop)

	return e, r
}

// Recorder captures the exit, attach, and stop hooks of an
// [zdebug.Environment] produced by [NewEnv].
type Recorder struct {
	mu sync.Mutex

	exits    []int
	attaches []zdebug.Action
	stops    int
}

func (r *Recorder) recordExit(status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exits = append(r.exits, status)
}

func (r *Recorder) recordAttach(a zdebug.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attaches = append(r.attaches, a)
}

func (r *Recorder) recordStop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stops++
}

// Exits returns every exit status requested so far, in order.
func (r *Recorder) Exits() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.exits)
}

// Attaches returns every debugger attach requested so far, in order.
func (r *Recorder) Attaches() []zdebug.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.attaches)
}

// Stops returns how many times the stop hook ran.
func (r *Recorder) Stops() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stops
}

// ScriptedAsk returns an [zdebug.AskFunc] that answers with the
// given actions in order.
// Running out of answers is a bug in the test.
func ScriptedAsk(actions ...zdebug.Action) zdebug.AskFunc {
	i := 0
	return func(zdebug.Violation) zdebug.Action {
		if i >= len(actions) {
			panic(fmt.Errorf("BUG: ScriptedAsk exhausted after %d answers", len(actions)))
		}
		a := actions[i]
		i++
		return a
	}
}
