package zerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lexi-the-cute/z3/zerr"
	"github.com/stretchr/testify/require"
)

func TestIsRaised(t *testing.T) {
	t.Parallel()

	require.True(t, zerr.IsRaised(
		zerr.FatalError{Code: zerr.CodeUnreachable},
	))

	require.True(t, zerr.IsRaised(
		zerr.AssertionError{Expr: "x > 0", File: "solver.go", Line: 10},
	))

	require.True(t, zerr.IsRaised(
		fmt.Errorf("wrapped: %w", zerr.FatalError{Code: zerr.CodeInternalFatal}),
	))

	require.False(t, zerr.IsRaised(
		errors.New("something else"),
	))

	require.False(t, zerr.IsRaised(nil))
}

func TestCatch_normalReturn(t *testing.T) {
	t.Parallel()

	ran := false
	require.NoError(t, zerr.Catch(func() {
		ran = true
	}))
	require.True(t, ran)
}

func TestCatch_fatal(t *testing.T) {
	t.Parallel()

	err := zerr.Catch(func() {
		panic(zerr.FatalError{Code: zerr.CodeTimeout})
	})
	require.Equal(t, zerr.FatalError{Code: zerr.CodeTimeout}, err)
}

func TestCatch_assertion(t *testing.T) {
	t.Parallel()

	raised := zerr.AssertionError{
		Expr: "len(clauses) > 0",
		File: "sat.go",
		Line: 42,
		Tag:  "sat",
	}

	err := zerr.Catch(func() {
		panic(raised)
	})
	require.Equal(t, raised, err)
}

func TestCatch_foreignPanicsPropagate(t *testing.T) {
	t.Parallel()

	// A panic value that isn't even an error.
	require.PanicsWithValue(t, "boom", func() {
		_ = zerr.Catch(func() {
			panic("boom")
		})
	})

	// An error panic that the debug subsystem did not raise.
	foreign := errors.New("not ours")
	require.PanicsWithValue(t, foreign, func() {
		_ = zerr.Catch(func() {
			panic(foreign)
		})
	})
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	require.Equal(
		t,
		"fatal error: Unreachable",
		zerr.FatalError{Code: zerr.CodeUnreachable}.Error(),
	)
	require.Equal(
		t,
		"fatal error: Code(99999)",
		zerr.FatalError{Code: 99999}.Error(),
	)

	require.Equal(
		t,
		"assertion violation at core.go:7: ptr != nil",
		zerr.AssertionError{Expr: "ptr != nil", File: "core.go", Line: 7}.Error(),
	)
	require.Equal(
		t,
		`assertion violation (tag "arith") at core.go:7: ptr != nil`,
		zerr.AssertionError{Expr: "ptr != nil", File: "core.go", Line: 7, Tag: "arith"}.Error(),
	)
}
