// Package testutil provides utilities for testing the launcher in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Env describes the isolated directories created by SetupTestEnv.
type Env struct {
	Home   string // HOME and USERPROFILE
	Cache  string // XDG_CACHE_HOME and LOCALAPPDATA
	Config string // XDG_CONFIG_HOME
	Bin    string // the only PATH entry
}

// launcherVars are cleared so a developer's own overrides never leak into tests.
var launcherVars = []string{
	"OPENNEXUS_RELEASE_BASE_URL",
	"OPENNEXUS_LAUNCHER_LOG_LEVEL",
	"OPENNEXUS_LAUNCHER_CONFIG",
}

// SetupTestEnv creates isolated test directories for each test.
// This ensures launcher tests never interfere with:
// - A real opennexus installed in ~/.cargo/bin or on PATH
// - The user's actual download cache
// - The user's launcher config file
//
// The cleanup function is automatically handled by t.TempDir() and
// t.Setenv(), so callers don't need to manually clean up.
func SetupTestEnv(t *testing.T) Env {
	t.Helper()

	// Create temp directory (auto-cleaned by testing framework)
	tmpDir := t.TempDir()

	env := Env{
		Home:   filepath.Join(tmpDir, "home"),
		Cache:  filepath.Join(tmpDir, "cache"),
		Config: filepath.Join(tmpDir, "config"),
		Bin:    filepath.Join(tmpDir, "bin"),
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("USERPROFILE", env.Home)
	t.Setenv("XDG_CACHE_HOME", env.Cache)
	t.Setenv("LOCALAPPDATA", env.Cache)
	t.Setenv("XDG_CONFIG_HOME", env.Config)
	t.Setenv("APPDATA", env.Config)
	t.Setenv("PATH", env.Bin)

	for _, name := range launcherVars {
		t.Setenv(name, "")
	}

	// Create the directories
	for _, dir := range []string{env.Home, env.Cache, env.Config, env.Bin} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	return env
}

// WriteExecutable writes content to dir/name with mode 0755 and returns the
// file's path. Missing parent directories are created.
func WriteExecutable(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("failed to write executable %s: %v", path, err)
	}
	// WriteFile applies the umask; set the bits explicitly
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("failed to chmod %s: %v", path, err)
	}

	return path
}
