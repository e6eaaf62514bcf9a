// Package launcher resolves the native opennexus binary and hands the
// process over to it with the caller's arguments.
package launcher

import (
	"context"
	"fmt"
	"os"

	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/binary"
	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/config"
)

// Finder looks for an installed binary.
type Finder interface {
	Find() (string, bool)
}

// Ensurer provides a cached binary, downloading it when needed.
type Ensurer interface {
	Ensure(ctx context.Context) (string, error)
}

// Options overrides the components a Launcher uses. Nil fields get the
// production implementation.
type Options struct {
	Finder   Finder
	Ensurer  Ensurer
	Executor Executor
	// Environ returns the environment passed to the binary (default: os.Environ).
	Environ func() []string
}

// Launcher runs the pinned opennexus binary in place of the current process.
type Launcher struct {
	finder   Finder
	ensurer  Ensurer
	executor Executor
	environ  func() []string
	logger   config.Logger
}

// New creates a launcher for settings.
func New(settings *config.Settings, opts Options) (*Launcher, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings are required")
	}

	if opts.Finder == nil {
		opts.Finder = binary.NewLocator(settings)
	}

	if opts.Ensurer == nil {
		provisioner, err := binary.NewProvisioner(settings, binary.NewDownloader(settings.Version))
		if err != nil {
			return nil, fmt.Errorf("create provisioner: %w", err)
		}
		opts.Ensurer = provisioner
	}

	if opts.Executor == nil {
		opts.Executor = &RealExecutor{}
	}

	if opts.Environ == nil {
		opts.Environ = os.Environ
	}

	logger := settings.Logger
	if logger == nil {
		logger = config.NopLogger()
	}

	return &Launcher{
		finder:   opts.Finder,
		ensurer:  opts.Ensurer,
		executor: opts.Executor,
		environ:  opts.Environ,
		logger:   logger,
	}, nil
}

// BuildArgv returns the argument vector for the binary: the command name
// followed by every argument after the launcher's own name, unmodified.
func BuildArgv(args []string) []string {
	argv := []string{binary.CommandName}
	if len(args) > 1 {
		argv = append(argv, args[1:]...)
	}
	return argv
}

// Resolve returns the binary to launch: an installed copy if there is one,
// otherwise the cached download.
func (l *Launcher) Resolve(ctx context.Context) (string, error) {
	if path, ok := l.finder.Find(); ok {
		return path, nil
	}

	path, err := l.ensurer.Ensure(ctx)
	if err != nil {
		return "", fmt.Errorf("provision binary: %w", err)
	}

	return path, nil
}

// Run resolves the binary and executes it with args, the launcher's full
// command line including its own name. On success it does not return.
func (l *Launcher) Run(ctx context.Context, args []string) error {
	path, err := l.Resolve(ctx)
	if err != nil {
		return err
	}

	argv := BuildArgv(args)
	l.logger.Debug("launching binary", "path", path, "argv", argv)

	return l.executor.Exec(path, argv, l.environ())
}
