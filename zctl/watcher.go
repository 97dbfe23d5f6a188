package zctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lexi-the-cute/z3/internal/zchan"
	"github.com/lexi-the-cute/z3/internal/zlog"
	"github.com/lexi-the-cute/z3/zdebug"
)

// Update reports the outcome of one rules reload attempt.
type Update struct {
	// Path of the rules file that changed.
	Path string

	// Err is nil when the file parsed and applied cleanly,
	// and a [ReloadError] otherwise.
	Err error
}

// WatcherConfig configures a [RuleWatcher].
type WatcherConfig struct {
	// Path of the rules file to watch.
	// The containing directory must exist when the watcher starts;
	// the file itself may appear later.
	Path string

	// Debounce is how long the file must stay quiet after an event
	// before it is reloaded,
	// so rapid successive saves collapse into one reload.
	Debounce time.Duration

	// Updates, when non-nil, receives the outcome of every reload attempt.
	// Sends respect context cancellation but otherwise block,
	// so an inattentive receiver stalls reloads.
	Updates chan<- Update
}

func (c WatcherConfig) validate() error {
	var err error
	if c.Path == "" {
		err = errors.Join(err, errors.New("WatcherConfig.Path must not be empty"))
	}

	if c.Debounce <= 0 {
		err = errors.Join(err, errors.New("WatcherConfig.Debounce must be positive"))
	}

	return err
}

// RuleWatcher applies a rules file to a debug environment
// every time the file changes on disk.
// A file that fails to read or parse leaves the previous state in place.
type RuleWatcher struct {
	log *slog.Logger

	env *zdebug.Environment
	cfg WatcherConfig

	fsw *fsnotify.Watcher

	done chan struct{}
}

// NewRuleWatcher begins watching cfg.Path and starts the reload kernel.
// The watcher runs until ctx is canceled;
// call [*RuleWatcher.Wait] to block until it has stopped
// and released its filesystem handles.
//
// The watcher only reacts to changes.
// Callers wanting the file's current content applied at startup
// should parse and apply it themselves before constructing the watcher.
func NewRuleWatcher(
	ctx context.Context,
	log *slog.Logger,
	env *zdebug.Environment,
	cfg WatcherConfig,
) (*RuleWatcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid WatcherConfig: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	// Watch the directory, not the file:
	// editors often replace the file wholesale on save,
	// and a watch on the old inode would go silent.
	dir := filepath.Dir(cfg.Path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &RuleWatcher{
		log: log,

		env: env,
		cfg: cfg,

		fsw: fsw,

		done: make(chan struct{}),
	}

	go w.kernel(ctx)

	return w, nil
}

// Wait blocks until the watcher's kernel goroutine completes.
// The kernel is tied to the lifecycle of the context passed to [NewRuleWatcher].
func (w *RuleWatcher) Wait() {
	<-w.done
}

func (w *RuleWatcher) kernel(ctx context.Context) {
	defer close(w.done)
	defer w.fsw.Close()

	// Idle until the first relevant event.
	debounce := time.NewTimer(w.cfg.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping due to context cancellation", "cause", context.Cause(ctx))
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				w.log.Warn("Filesystem event stream closed; rules file is no longer watched")
				return
			}
			if !w.relevant(ev) {
				continue
			}

			// Restart the quiet period.
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(w.cfg.Debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				w.log.Warn("Filesystem error stream closed; rules file is no longer watched")
				return
			}
			w.log.Error("Filesystem watch error", "err", err)

		case <-debounce.C:
			w.reload(ctx)
		}
	}
}

// relevant reports whether ev concerns the watched file's content.
func (w *RuleWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != filepath.Base(w.cfg.Path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *RuleWatcher) reload(ctx context.Context) {
	err := w.applyFile()
	if err != nil {
		// The previous debug state stays in place on any failure.
		w.log.Warn("Rules file changed but could not be applied", "path", w.cfg.Path, "err", err)
		err = ReloadError{Path: w.cfg.Path, Err: err}
	} else {
		w.log.Info("Applied rules file", "path", w.cfg.Path, "state", w.env.Snapshot())
	}

	if w.cfg.Updates != nil {
		_ = zchan.SendC(ctx, w.log, w.cfg.Updates, Update{Path: w.cfg.Path, Err: err}, "sending rules update")
	}
}

func (w *RuleWatcher) applyFile() error {
	content, err := os.ReadFile(w.cfg.Path)
	if err != nil {
		return err
	}

	r, err := zdebug.ParseRules(bytes.NewReader(content))
	if err != nil {
		w.log.Debug("Rejected rules file content", "content", zlog.Trunc(content))
		return err
	}

	w.env.Apply(r)
	return nil
}
