package zdebug_test

import (
	"strings"
	"testing"

	"github.com/lexi-the-cute/z3/internal/ztest"
	"github.com/lexi-the-cute/z3/zdebug"
	"github.com/stretchr/testify/require"
)

func TestRules_parsing(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		in   []string
		test func(t *testing.T, e *zdebug.Environment)
	}{
		{
			name: "enableTags",
			in:   []string{"arith", "sat"},
			test: func(t *testing.T, e *zdebug.Environment) {
				require.True(t, e.IsDebugEnabled("arith"))
				require.True(t, e.IsDebugEnabled("sat"))
				require.False(t, e.IsDebugEnabled("rewriter"))
			},
		},
		{
			name: "disableTag",
			in:   []string{"arith", "sat", "!sat"},
			test: func(t *testing.T, e *zdebug.Environment) {
				require.True(t, e.IsDebugEnabled("arith"))
				require.False(t, e.IsDebugEnabled("sat"))
			},
		},
		{
			name: "disableBeforeEnableStillEnables",
			in:   []string{"!arith", "arith"},
			test: func(t *testing.T, e *zdebug.Environment) {
				require.True(t, e.IsDebugEnabled("arith"))
			},
		},
		{
			name: "assertsOff",
			in:   []string{"asserts=off"},
			test: func(t *testing.T, e *zdebug.Environment) {
				require.False(t, e.AssertionsEnabled())
			},
		},
		{
			name: "assertsLaterWins",
			in:   []string{"asserts=off", "asserts=on"},
			test: func(t *testing.T, e *zdebug.Environment) {
				require.True(t, e.AssertionsEnabled())
			},
		},
		{
			name: "exitAction",
			in:   []string{"exit-action=terminate"},
			test: func(t *testing.T, e *zdebug.Environment) {
				require.Equal(t, zdebug.ExitActionTerminate, e.DefaultExitAction())
			},
		},
		{
			name: "debugAction",
			in:   []string{"debug-action=continue"},
			test: func(t *testing.T, e *zdebug.Environment) {
				require.Equal(t, zdebug.ActionContinue, e.DefaultDebugAction())
			},
		},
		{
			name: "debugActionLaterWins",
			in:   []string{"debug-action=abort", "debug-action=gdb"},
			test: func(t *testing.T, e *zdebug.Environment) {
				require.Equal(t, zdebug.ActionInvokeGDB, e.DefaultDebugAction())
			},
		},
		{
			name: "unmentionedStateUntouched",
			in:   []string{"arith"},
			test: func(t *testing.T, e *zdebug.Environment) {
				// Constructor defaults survive a rule set
				// that only mentions a tag.
				require.True(t, e.AssertionsEnabled())
				require.Equal(t, zdebug.ExitActionRaise, e.DefaultExitAction())
				require.Equal(t, zdebug.ActionRaise, e.DefaultDebugAction())
			},
		},
		{
			name: "emptyInput",
			in:   nil,
			test: func(t *testing.T, e *zdebug.Environment) {
				require.True(t, e.AssertionsEnabled())
				require.Equal(t, zdebug.ActionRaise, e.DefaultDebugAction())
			},
		},
	} {
		t.Run("RulesFromString:"+tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := zdebug.RulesFromString(strings.Join(tc.in, ","))
			require.NoError(t, err)

			e := zdebug.NewEnvironment(ztest.NewLogger(t))
			e.Apply(r)
			tc.test(t, e)
		})

		t.Run("Parse:"+tc.name, func(t *testing.T) {
			t.Parallel()

			doc := strings.Join(tc.in, "\n")
			r, err := zdebug.ParseRules(strings.NewReader(doc))
			require.NoError(t, err)

			e := zdebug.NewEnvironment(ztest.NewLogger(t))
			e.Apply(r)
			tc.test(t, e)
		})
	}
}

func TestRules_parse_errors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"!",
		"fo!o",
		"!fo!o",
		"asserts=maybe",
		"exit-action=abort",
		"debug-action=bogus",
		"verbosity=3",
	} {
		_, err := zdebug.RulesFromString(input)
		require.Error(t, err, "input %q", input)

		_, err = zdebug.ParseRules(strings.NewReader(input))
		require.Error(t, err, "input %q", input)
	}

	// An empty directive is only reachable in the comma form;
	// the reader form skips blank lines instead.
	_, err := zdebug.RulesFromString("arith,,sat")
	require.Error(t, err)
}

func TestRules_Parse_allowances(t *testing.T) {
	t.Parallel()

	r, err := zdebug.ParseRules(strings.NewReader(`# Comment. (Then a blank line.)

arith
debug-action=stop
!sat
`))
	require.NoError(t, err)

	e := zdebug.NewEnvironment(ztest.NewLogger(t))
	e.Apply(r)

	require.True(t, e.IsDebugEnabled("arith"))
	require.Equal(t, zdebug.ActionStop, e.DefaultDebugAction())
	require.False(t, e.IsDebugEnabled("sat"))
}

func TestRules_Parse_accumulatesErrors(t *testing.T) {
	t.Parallel()

	t.Run("every bad line reported with its number", func(t *testing.T) {
		t.Parallel()

		_, err := zdebug.ParseRules(strings.NewReader(`arith
asserts=maybe
sat
debug-action=bogus
`))
		require.Error(t, err)

		msg := err.Error()
		require.Contains(t, msg, "line 2")
		require.Contains(t, msg, "asserts must be on or off")
		require.Contains(t, msg, "line 4")
		require.Contains(t, msg, "bogus")
	})

	t.Run("stops after the error limit", func(t *testing.T) {
		t.Parallel()

		in := strings.Repeat("bad-key=1\n", 7)
		_, err := zdebug.ParseRules(strings.NewReader(in))
		require.Error(t, err)
		require.Contains(t, err.Error(), "stopped parsing after 5 errors")
	})
}

func TestEnvironment_Apply_atomic(t *testing.T) {
	t.Parallel()

	e := zdebug.NewEnvironment(ztest.NewLogger(t))

	// Two rule sets that each change both actions.
	// A snapshot interleaved with an Apply would observe a mixed pair.
	rulesA, err := zdebug.RulesFromString("exit-action=raise,debug-action=raise")
	require.NoError(t, err)
	rulesB, err := zdebug.RulesFromString("exit-action=terminate,debug-action=abort")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 500 {
			if i%2 == 0 {
				e.Apply(rulesA)
			} else {
				e.Apply(rulesB)
			}
		}
	}()

	for {
		s := e.Snapshot()
		switch s.ExitAction {
		case zdebug.ExitActionRaise:
			require.Equal(t, zdebug.ActionRaise, s.DebugAction)
		case zdebug.ExitActionTerminate:
			require.Equal(t, zdebug.ActionAbort, s.DebugAction)
		default:
			t.Fatalf("impossible exit action %s", s.ExitAction)
		}

		select {
		case <-done:
			return
		default:
		}
	}
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]zdebug.Action{
		"ask":      zdebug.ActionAsk,
		"continue": zdebug.ActionContinue,
		"cont":     zdebug.ActionContinue,
		"abort":    zdebug.ActionAbort,
		"stop":     zdebug.ActionStop,
		"raise":    zdebug.ActionRaise,
		"throw":    zdebug.ActionRaise,
		"gdb":      zdebug.ActionInvokeGDB,
		"lldb":     zdebug.ActionInvokeLLDB,
		"GDB":      zdebug.ActionInvokeGDB,
	} {
		got, err := zdebug.ParseAction(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	_, err := zdebug.ParseAction("unspecified")
	require.Error(t, err)
}

func TestParseExitAction(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]zdebug.ExitAction{
		"raise":     zdebug.ExitActionRaise,
		"throw":     zdebug.ExitActionRaise,
		"terminate": zdebug.ExitActionTerminate,
		"exit":      zdebug.ExitActionTerminate,
		"Terminate": zdebug.ExitActionTerminate,
	} {
		got, err := zdebug.ParseExitAction(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	_, err := zdebug.ParseExitAction("abort")
	require.Error(t, err)
}
