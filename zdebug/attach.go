package zdebug

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// attach is the default attach hook.
// It spawns the selected external debugger against the current process,
// inheriting this process's stdio, and waits for it to exit.
//
// A failure to spawn, such as a missing debugger binary,
// is logged rather than fatal; the dispatcher exits afterwards either way.
func (e *Environment) attach(a Action) {
	pid := os.Getpid()

	var cmd *exec.Cmd
	switch a {
	case ActionInvokeGDB:
		// -nw keeps gdb in the current terminal
		// instead of opening its windowed interface.
		cmd = exec.Command("gdb", "-nw", fmt.Sprintf("/proc/%d/exe", pid), strconv.Itoa(pid))
	case ActionInvokeLLDB:
		cmd = exec.Command("lldb", "-p", strconv.Itoa(pid))
	default:
		panic(fmt.Errorf("BUG: attach called with non-debugger action %s", a))
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		e.log.Error("Failed to attach external debugger", "cmd", cmd.Path, "err", err)
	}
}
