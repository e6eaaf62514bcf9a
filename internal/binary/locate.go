package binary

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/config"
)

// Locator finds an already-installed opennexus binary that is not the
// launcher itself.
type Locator struct {
	homeDir  string
	selfPath string
	goos     string
	lookPath func(file string) (string, error)
	logger   config.Logger
}

// NewLocator creates a locator for the user and launcher described by settings.
func NewLocator(settings *config.Settings) *Locator {
	logger := settings.Logger
	if logger == nil {
		logger = config.NopLogger()
	}

	return &Locator{
		homeDir:  settings.HomeDir,
		selfPath: settings.SelfPath,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		logger:   logger,
	}
}

// CargoPath returns where `cargo install` puts the binary for this user.
func (l *Locator) CargoPath() string {
	name := CommandName
	if l.goos == "windows" {
		name += ".exe"
	}
	return filepath.Join(l.homeDir, ".cargo", "bin", name)
}

// Find returns the path of an installed opennexus binary.
//
// The cargo install directory is checked first, then PATH. A candidate that
// is the running launcher is skipped. Not finding anything is not an error.
func (l *Locator) Find() (string, bool) {
	if l.homeDir != "" {
		cargo := l.CargoPath()
		switch {
		case !isExecutableFile(cargo, l.goos):
			l.logger.Debug("no usable binary in cargo dir", "path", cargo)
		case l.isSelf(cargo):
			l.logger.Debug("cargo binary is the launcher, skipping", "path", cargo)
		default:
			l.logger.Debug("using cargo binary", "path", cargo)
			return cargo, true
		}
	}

	path, err := l.lookPath(CommandName)
	if err != nil {
		l.logger.Debug("binary not found in PATH", "err", err)
		return "", false
	}
	if l.isSelf(path) {
		l.logger.Debug("PATH binary is the launcher, skipping", "path", path)
		return "", false
	}

	l.logger.Debug("using PATH binary", "path", path)
	return path, true
}

// isSelf reports whether path names the running launcher executable.
func (l *Locator) isSelf(path string) bool {
	if l.selfPath == "" {
		return false
	}
	return sameFile(path, l.selfPath)
}

// sameFile reports whether a and b resolve to the same absolute path after
// following symlinks. Any resolution failure means they differ.
func sameFile(a, b string) bool {
	ra, err := resolvePath(a)
	if err != nil {
		return false
	}
	rb, err := resolvePath(b)
	if err != nil {
		return false
	}
	return ra == rb
}

func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// isExecutableFile reports whether path is a regular file the current user
// could run. Windows has no executable bit, so any regular file counts there.
func isExecutableFile(path, goos string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	if !info.Mode().IsRegular() {
		return false
	}

	if goos == "windows" {
		return true
	}

	return info.Mode().Perm()&0111 != 0
}
