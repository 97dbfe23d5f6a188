package zctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lexi-the-cute/z3/zdebug"
)

// BridgeConfig selects which operator signals a [SignalBridge] handles.
type BridgeConfig struct {
	// Toggle flips the assertion switch when received.
	// Conventionally syscall.SIGUSR1.
	Toggle os.Signal

	// Dump logs a snapshot of the environment's debug state when received.
	// Conventionally syscall.SIGUSR2.
	Dump os.Signal
}

func (c BridgeConfig) validate() error {
	var err error
	if c.Toggle == nil && c.Dump == nil {
		err = errors.Join(err, errors.New("BridgeConfig must set at least one of Toggle or Dump"))
	}

	if c.Toggle != nil && c.Toggle == c.Dump {
		err = errors.Join(err, errors.New("BridgeConfig.Toggle and BridgeConfig.Dump must differ"))
	}

	return err
}

// SignalBridge applies operator signals to a debug environment at runtime,
// so a live process can have assertions toggled or its debug state
// inspected without restarting.
type SignalBridge struct {
	log *slog.Logger

	env *zdebug.Environment
	cfg BridgeConfig

	sigs chan os.Signal

	done chan struct{}
}

// NewSignalBridge subscribes to the configured signals and starts
// applying them to env.
// The bridge runs until ctx is canceled;
// call [*SignalBridge.Wait] to block until it has unsubscribed and stopped.
func NewSignalBridge(
	ctx context.Context,
	log *slog.Logger,
	env *zdebug.Environment,
	cfg BridgeConfig,
) (*SignalBridge, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid BridgeConfig: %w", err)
	}

	b := &SignalBridge{
		log: log,

		env: env,
		cfg: cfg,

		// Small buffer so a burst of signals is not dropped
		// while the kernel is busy handling the previous one.
		sigs: make(chan os.Signal, 4),

		done: make(chan struct{}),
	}

	var notify []os.Signal
	if cfg.Toggle != nil {
		notify = append(notify, cfg.Toggle)
	}
	if cfg.Dump != nil {
		notify = append(notify, cfg.Dump)
	}
	signal.Notify(b.sigs, notify...)

	go b.kernel(ctx)

	return b, nil
}

// Wait blocks until the bridge's kernel goroutine completes.
// The kernel is tied to the lifecycle of the context passed to [NewSignalBridge].
func (b *SignalBridge) Wait() {
	<-b.done
}

func (b *SignalBridge) kernel(ctx context.Context) {
	defer close(b.done)
	defer signal.Stop(b.sigs)

	for {
		select {
		case <-ctx.Done():
			b.log.Info("Stopping due to context cancellation", "cause", context.Cause(ctx))
			return
		case sig := <-b.sigs:
			b.handle(sig)
		}
	}
}

func (b *SignalBridge) handle(sig os.Signal) {
	switch sig {
	case b.cfg.Toggle:
		on := !b.env.AssertionsEnabled()
		b.env.EnableAssertions(on)
		b.log.Info("Toggled assertion switch", "signal", sig, "now_enabled", on)
	case b.cfg.Dump:
		b.log.Info("Debug state", "signal", sig, "state", b.env.Snapshot())
	default:
		// Only subscribed signals are delivered to the channel.
		b.log.Warn("Received unexpected signal", "signal", sig)
	}
}
