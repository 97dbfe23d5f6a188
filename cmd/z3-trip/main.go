package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lexi-the-cute/z3/zctl"
	"github.com/lexi-the-cute/z3/zdebug"
	"github.com/lexi-the-cute/z3/zerr"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := NewRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Info("Failure", "err", err)
		os.Stderr.Sync()
		return err
	}

	return nil
}

func NewRootCmd(log *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "z3-trip SUBCOMMAND",

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},

		Long: `z3-trip deliberately trips assertion and fatal-error paths,
to demonstrate how a configured debug environment responds to them.

Rule directives may be passed with --rules or through the Z3_DEBUG
environment variable, using the same comma-separated grammar applied
at runtime: e.g. "arith,!sat,asserts=on,debug-action=continue".
`,
	}

	rootCmd.AddCommand(
		newAssertCmd(log),
		newFatalCmd(log),
		newHoldCmd(log),
	)

	return rootCmd
}

func newAssertCmd(log *slog.Logger) *cobra.Command {
	var rules, tag string
	debugAction := zdebug.ActionUnspecified

	cmd := &cobra.Command{
		Use: "assert [--rules DIRECTIVES] [--tag TAG] [--debug-action ACTION]",

		Short: "Trip a failing assertion and report how the environment responds",

		Long: `assert reports a deliberately false assertion to the environment's
failure dispatcher and prints the outcome:

- "skipped" when the assertion switch or the gating tag is off
- "raised" when the configured action produced a catchable assertion error
- "continued" when the configured action resumed execution

Terminal actions (abort, stop, gdb, lldb) end the process directly,
exactly as they would in a real violation.
`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(log, rules)
			if err != nil {
				return err
			}
			if debugAction != zdebug.ActionUnspecified {
				env.SetDefaultDebugAction(debugAction)
			}

			if !env.AssertionsEnabled() {
				fmt.Fprintln(cmd.OutOrStdout(), "skipped: assertions are disabled")
				return nil
			}
			if tag != "" && !env.IsDebugEnabled(tag) {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped: debug tag %q is disabled\n", tag)
				return nil
			}

			_, file, line, _ := runtime.Caller(0)
			v := zdebug.Violation{
				Expr: "1 == 0",
				File: file,
				Line: line,
				Tag:  tag,
			}

			err = zerr.Catch(func() {
				env.HandleAssertionFailure(v)
			})
			if err != nil {
				// Logs go to stderr, but the outcome goes to stdout.
				fmt.Fprintf(cmd.OutOrStdout(), "raised: %v\n", err)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "continued")
			return nil
		},
	}

	addRulesFlag(cmd.Flags(), &rules)
	cmd.Flags().StringVar(&tag, "tag", "", "debug tag gating the assertion (empty for an unconditional assertion)")
	cmd.Flags().Var(&debugAction, "debug-action", "override the environment's debug action (ask|continue|abort|stop|raise|gdb|lldb)")

	return cmd
}

func newFatalCmd(log *slog.Logger) *cobra.Command {
	code := zerr.CodeInternalFatal
	exitAction := zdebug.ExitActionUnspecified

	cmd := &cobra.Command{
		Use: "fatal [--code CODE] [--exit-action ACTION]",

		Short: "Invoke the environment's exit action for an error code",

		Long: `fatal reports an unrecoverable error to the environment.

With the raise exit action, the resulting error is caught and printed.
With the terminate exit action, the process exits with the code's
numeric value.
`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			env := zdebug.NewEnvironment(log)
			if exitAction != zdebug.ExitActionUnspecified {
				env.SetDefaultExitAction(exitAction)
			}

			err := zerr.Catch(func() {
				env.InvokeExitAction(code)
			})
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "raised: %v\n", err)
				return nil
			}

			// Unreachable in practice: raise panics and terminate exits.
			fmt.Fprintln(cmd.OutOrStdout(), "returned")
			return nil
		},
	}

	cmd.Flags().Var(&code, "code", "error code to report (catalog name or integer)")
	cmd.Flags().Var(&exitAction, "exit-action", "override the environment's exit action (raise|terminate)")

	return cmd
}

func newHoldCmd(log *slog.Logger) *cobra.Command {
	var rules, rulesFile string

	cmd := &cobra.Command{
		Use: "hold [--rules DIRECTIVES] [--rules-file PATH]",

		Short: "Hold a configured environment open for runtime control until interrupted",

		Long: `hold builds an environment and keeps the process alive so its
debug state can be driven from outside:

- SIGUSR1 toggles the assertion switch
- SIGUSR2 logs a snapshot of the debug state
- edits to --rules-file are applied as they happen
`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			// We need a cancelable context if we fail partway through setup,
			// so that the deferred Wait calls cannot block forever.
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			env, err := newEnvironment(log, rules)
			if err != nil {
				return err
			}

			b, err := zctl.NewSignalBridge(ctx, log.With("sys", "signals"), env, zctl.BridgeConfig{
				Toggle: syscall.SIGUSR1,
				Dump:   syscall.SIGUSR2,
			})
			if err != nil {
				return fmt.Errorf("failed to start signal bridge: %w", err)
			}
			defer b.Wait()
			defer cancel()

			if rulesFile != "" {
				// The watcher only reacts to changes,
				// so apply the file's current content first.
				content, err := os.ReadFile(rulesFile)
				switch {
				case errors.Is(err, fs.ErrNotExist):
					log.Info("Rules file does not exist yet; it will be applied when created", "path", rulesFile)
				case err != nil:
					return fmt.Errorf("failed to read rules file: %w", err)
				default:
					r, err := zdebug.ParseRules(bytes.NewReader(content))
					if err != nil {
						return fmt.Errorf("failed to parse rules file %s: %w", rulesFile, err)
					}
					env.Apply(r)
				}

				w, err := zctl.NewRuleWatcher(ctx, log.With("sys", "rules"), env, zctl.WatcherConfig{
					Path:     rulesFile,
					Debounce: 250 * time.Millisecond,
				})
				if err != nil {
					return fmt.Errorf("failed to start rules watcher: %w", err)
				}
				defer w.Wait()
				defer cancel()
			}

			log.Info(
				"Holding; send SIGUSR1 to toggle assertions, SIGUSR2 to dump debug state",
				"pid", os.Getpid(),
				"state", env.Snapshot(),
			)

			<-ctx.Done()
			log.Info("Received ^c")

			return nil
		},
	}

	addRulesFlag(cmd.Flags(), &rules)
	cmd.Flags().StringVar(&rulesFile, "rules-file", "", "rules file to watch and apply on change")

	return cmd
}

// addRulesFlag registers the rule-directives flag shared by the
// subcommands that build an environment.
func addRulesFlag(fs *pflag.FlagSet, rules *string) {
	fs.StringVar(rules, "rules", "", "comma-separated rule directives (defaults to $Z3_DEBUG). See package docs for github.com/lexi-the-cute/z3/zdebug.")
}

// newEnvironment builds an environment from the given rule directives,
// falling back to the Z3_DEBUG environment variable when none are given.
func newEnvironment(log *slog.Logger, directives string) (*zdebug.Environment, error) {
	if directives == "" {
		directives = os.Getenv("Z3_DEBUG")
	}

	env := zdebug.NewEnvironment(log)

	if directives == "" {
		return env, nil
	}

	r, err := zdebug.RulesFromString(directives)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule directives: %w", err)
	}
	env.Apply(r)

	return env, nil
}
