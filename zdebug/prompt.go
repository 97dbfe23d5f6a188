package zdebug

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalAsk returns an [AskFunc] that writes a one-line menu to w
// and reads one-letter answers from r until it recognizes one.
// This is the default ask strategy, bound to os.Stdin and os.Stderr.
//
// On EOF or read error it returns [ActionAsk],
// reporting the strategy unanswerable.
func TerminalAsk(r io.Reader, w io.Writer) AskFunc {
	// One scanner across calls, since r is a stateful stream.
	scanner := bufio.NewScanner(r)

	return func(Violation) Action {
		for {
			fmt.Fprintln(w, "(C)ontinue, (A)bort, (S)top, (T)hrow exception, Invoke (G)DB, Invoke (L)LDB")

			if !scanner.Scan() {
				return ActionAsk
			}

			switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
			case "c":
				return ActionContinue
			case "a":
				return ActionAbort
			case "s":
				return ActionStop
			case "t":
				return ActionRaise
			case "g":
				return ActionInvokeGDB
			case "l":
				return ActionInvokeLLDB
			}

			// Unrecognized input; print the menu again.
		}
	}
}
