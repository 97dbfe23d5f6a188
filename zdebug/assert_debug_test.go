// Only run these tests in debug mode.

//go:build debug

package zdebug_test

import (
	"testing"

	"github.com/lexi-the-cute/z3/zdebug"
	"github.com/lexi-the-cute/z3/zdebug/zdebugtest"
	"github.com/lexi-the-cute/z3/zerr"
	"github.com/stretchr/testify/require"
)

func TestAssert_debugBuild(t *testing.T) {
	t.Parallel()

	t.Run("true condition does nothing", func(t *testing.T) {
		t.Parallel()

		e, rec := zdebugtest.NewEnv(t)

		zdebug.Assert(e, true, "fine")
		require.Empty(t, rec.Exits())
	})

	t.Run("false condition raises by default", func(t *testing.T) {
		t.Parallel()

		e, _ := zdebugtest.NewEnv(t)

		err := zerr.Catch(func() {
			zdebug.Assert(e, false, "idx < len(vars)")
			t.Error("Assert returned normally for a false condition")
		})

		var ae zerr.AssertionError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, "idx < len(vars)", ae.Expr)
		// The violation names this file, not a zdebug internal.
		require.Contains(t, ae.File, "assert_debug_test.go")
		require.NotZero(t, ae.Line)
	})

	t.Run("switch off skips the check entirely", func(t *testing.T) {
		t.Parallel()

		e, rec := zdebugtest.NewEnv(t)
		e.EnableAssertions(false)

		require.NotPanics(t, func() {
			zdebug.Assert(e, false, "never evaluated")
		})
		require.Empty(t, rec.Exits())
	})

	t.Run("false condition honors the configured action", func(t *testing.T) {
		t.Parallel()

		e, rec := zdebugtest.NewEnv(t)
		e.SetDefaultDebugAction(zdebug.ActionAbort)

		zdebug.Assert(e, false, "idx < len(vars)")
		require.Equal(t, []int{1}, rec.Exits())
	})
}

func TestAssertf_debugBuild(t *testing.T) {
	t.Parallel()

	e, _ := zdebugtest.NewEnv(t)

	err := zerr.Catch(func() {
		zdebug.Assertf(e, false, "num_vars = %d, want > %d", 0, 3)
	})

	var ae zerr.AssertionError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, "num_vars = 0, want > 3", ae.Expr)
}

func TestCondAssert_debugBuild(t *testing.T) {
	t.Parallel()

	t.Run("disabled tag skips the check", func(t *testing.T) {
		t.Parallel()

		e, rec := zdebugtest.NewEnv(t)

		require.NotPanics(t, func() {
			zdebug.CondAssert(e, "arith", false, "gated")
		})
		require.Empty(t, rec.Exits())
	})

	t.Run("enabled tag fires and marks the violation", func(t *testing.T) {
		t.Parallel()

		e, _ := zdebugtest.NewEnv(t)
		e.EnableDebug("arith")

		err := zerr.Catch(func() {
			zdebug.CondAssert(e, "arith", false, "gated")
		})

		var ae zerr.AssertionError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, "arith", ae.Tag)
		require.Equal(t, "gated", ae.Expr)
	})

	t.Run("switch off wins over an enabled tag", func(t *testing.T) {
		t.Parallel()

		e, _ := zdebugtest.NewEnv(t)
		e.EnableDebug("arith")
		e.EnableAssertions(false)

		require.NotPanics(t, func() {
			zdebug.CondAssert(e, "arith", false, "gated")
		})
	})
}

func TestDebugCode_debugBuild(t *testing.T) {
	t.Parallel()

	e, _ := zdebugtest.NewEnv(t)

	ran := 0
	fn := func() { ran++ }

	zdebug.DebugCode(e, "model_validate", fn)
	require.Zero(t, ran)

	e.EnableDebug("model_validate")
	zdebug.DebugCode(e, "model_validate", fn)
	require.Equal(t, 1, ran)

	e.DisableDebug("model_validate")
	zdebug.DebugCode(e, "model_validate", fn)
	require.Equal(t, 1, ran)
}

func TestUnreachable_debugBuild(t *testing.T) {
	t.Parallel()

	// Debug builds route through the debug action,
	// so an assertion failure is raised, not a fatal error.
	e, _ := zdebugtest.NewEnv(t)

	err := zerr.Catch(func() {
		zdebug.Unreachable(e)
	})

	var ae zerr.AssertionError
	require.ErrorAs(t, err, &ae)
	require.Contains(t, ae.Expr, "unreachable")

	// And a continue-configured environment just returns.
	e2, _ := zdebugtest.NewEnv(t)
	e2.SetDefaultDebugAction(zdebug.ActionContinue)
	require.NotPanics(t, func() {
		zdebug.Unreachable(e2)
	})
}

func TestNotImplemented_debugBuild(t *testing.T) {
	t.Parallel()

	e, _ := zdebugtest.NewEnv(t)

	err := zerr.Catch(func() {
		zdebug.NotImplemented(e)
	})

	var ae zerr.AssertionError
	require.ErrorAs(t, err, &ae)
	require.Contains(t, ae.Expr, "not implemented")
}
