package launcher

import "fmt"

// Executor hands the process over to the binary at path.
type Executor interface {
	// Exec runs path with argv and env in place of the launcher.
	// On Unix the launcher process image is replaced and Exec only returns
	// on failure. Elsewhere the binary runs as a child and the launcher exits
	// with the child's exit code once it finishes.
	Exec(path string, argv []string, env []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// ExecError reports a failure to replace the process or start the binary.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
