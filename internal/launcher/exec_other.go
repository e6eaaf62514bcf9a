//go:build !unix

package launcher

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
)

// exitFunc ends the launcher with the child's exit code; swapped in tests.
var exitFunc = os.Exit

// Exec runs the binary at path as a child process and exits with its code.
// Without a process-replacing exec the launcher waits in between; console
// interrupts reach the child directly, so the launcher ignores them.
func (e *RealExecutor) Exec(path string, argv []string, env []string) error {
	// #nosec G204 -- path is the located or provisioned opennexus binary and
	// argv is forwarded from the user's own command line.
	cmd := exec.Command(path)
	cmd.Args = argv
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Start(); err != nil {
		return &ExecError{Path: path, Err: err}
	}

	err := cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		exitFunc(0)
	case errors.As(err, &exitErr):
		exitFunc(exitErr.ExitCode())
	default:
		return &ExecError{Path: path, Err: err}
	}

	return nil
}
