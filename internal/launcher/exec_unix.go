//go:build unix

package launcher

import (
	"syscall"
)

// execFunc replaces the process image; swapped in tests.
var execFunc = syscall.Exec

// Exec replaces the current process with the binary at path.
// This is the Unix implementation using syscall.Exec, so the binary keeps the
// launcher's PID, signals and exit status.
func (e *RealExecutor) Exec(path string, argv []string, env []string) error {
	// #nosec G204 -- path is the located or provisioned opennexus binary and
	// argv is forwarded from the user's own command line.
	if err := execFunc(path, argv, env); err != nil {
		return &ExecError{Path: path, Err: err}
	}
	return nil
}
