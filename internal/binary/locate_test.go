package binary

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/config"
	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/testutil"
)

var errNotFound = errors.New("executable file not found in $PATH")

func lookPathReturning(path string) func(string) (string, error) {
	return func(file string) (string, error) {
		if file != CommandName {
			return "", errNotFound
		}
		if path == "" {
			return "", errNotFound
		}
		return path, nil
	}
}

func newTestLocator(home, self string, lookPath func(string) (string, error)) *Locator {
	return &Locator{
		homeDir:  home,
		selfPath: self,
		goos:     runtime.GOOS,
		lookPath: lookPath,
		logger:   config.NopLogger(),
	}
}

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("relies on unix executable bits and symlinks")
	}
}

func TestLocatorFind(t *testing.T) {
	skipOnWindows(t)

	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, "home")
	cargoDir := filepath.Join(home, ".cargo", "bin")
	pathBin := testutil.WriteExecutable(t, filepath.Join(tmpDir, "usr", "bin"), CommandName, "path")
	self := testutil.WriteExecutable(t, filepath.Join(tmpDir, "launcher"), CommandName, "launcher")

	tests := []struct {
		name      string
		setup     func(t *testing.T)
		pathHit   string
		wantPath  string
		wantFound bool
	}{
		{
			name: "cargo binary preferred over PATH",
			setup: func(t *testing.T) {
				testutil.WriteExecutable(t, cargoDir, CommandName, "cargo")
			},
			pathHit:   pathBin,
			wantPath:  filepath.Join(cargoDir, CommandName),
			wantFound: true,
		},
		{
			name:      "PATH binary when cargo dir is empty",
			pathHit:   pathBin,
			wantPath:  pathBin,
			wantFound: true,
		},
		{
			name: "non-executable cargo file skipped",
			setup: func(t *testing.T) {
				if err := os.MkdirAll(cargoDir, 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(cargoDir, CommandName), []byte("x"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			pathHit:   pathBin,
			wantPath:  pathBin,
			wantFound: true,
		},
		{
			name: "cargo directory entry skipped",
			setup: func(t *testing.T) {
				if err := os.MkdirAll(filepath.Join(cargoDir, CommandName), 0o755); err != nil {
					t.Fatal(err)
				}
			},
			pathHit:   pathBin,
			wantPath:  pathBin,
			wantFound: true,
		},
		{
			name: "cargo symlink to launcher skipped",
			setup: func(t *testing.T) {
				if err := os.MkdirAll(cargoDir, 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.Symlink(self, filepath.Join(cargoDir, CommandName)); err != nil {
					t.Fatal(err)
				}
			},
			pathHit:   pathBin,
			wantPath:  pathBin,
			wantFound: true,
		},
		{
			name:      "PATH hit that is the launcher is not returned",
			pathHit:   self,
			wantFound: false,
		},
		{
			name:      "nothing installed",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.RemoveAll(home); err != nil {
				t.Fatalf("failed to reset home: %v", err)
			}
			if tt.setup != nil {
				tt.setup(t)
			}

			locator := newTestLocator(home, self, lookPathReturning(tt.pathHit))

			gotPath, gotFound := locator.Find()
			if gotFound != tt.wantFound {
				t.Fatalf("Find() found = %v, want %v (path %q)", gotFound, tt.wantFound, gotPath)
			}
			if gotPath != tt.wantPath {
				t.Errorf("Find() path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestLocatorFind_PATHSymlinkToLauncher(t *testing.T) {
	skipOnWindows(t)

	tmpDir := t.TempDir()
	self := testutil.WriteExecutable(t, filepath.Join(tmpDir, "launcher"), CommandName, "launcher")

	binDir := filepath.Join(tmpDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(binDir, CommandName)
	if err := os.Symlink(self, link); err != nil {
		t.Fatal(err)
	}

	locator := newTestLocator(filepath.Join(tmpDir, "home"), self, lookPathReturning(link))

	if path, found := locator.Find(); found {
		t.Errorf("Find() = %q, should never return the launcher itself", path)
	}
}

func TestLocatorFind_RealPATH(t *testing.T) {
	skipOnWindows(t)

	env := testutil.SetupTestEnv(t)
	installed := testutil.WriteExecutable(t, env.Bin, CommandName, "#!/bin/sh\n")

	locator := NewLocator(&config.Settings{
		HomeDir:  env.Home,
		SelfPath: filepath.Join(env.Home, "not-the-binary"),
		Logger:   config.NopLogger(),
	})

	path, found := locator.Find()
	if !found {
		t.Fatal("Find() should locate the binary on PATH")
	}
	if path != installed {
		t.Errorf("Find() = %q, want %q", path, installed)
	}
}

func TestLocatorCargoPath(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", filepath.Join("/home/dev", ".cargo", "bin", "opennexus")},
		{"darwin", filepath.Join("/home/dev", ".cargo", "bin", "opennexus")},
		{"windows", filepath.Join("/home/dev", ".cargo", "bin", "opennexus.exe")},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			locator := &Locator{homeDir: "/home/dev", goos: tt.goos}
			if got := locator.CargoPath(); got != tt.want {
				t.Errorf("CargoPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSameFile(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a")
	b := filepath.Join(tmpDir, "b")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte(p), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if !sameFile(a, a) {
		t.Error("a file should equal itself")
	}
	if sameFile(a, b) {
		t.Error("distinct files should differ")
	}
	if !sameFile(a, filepath.Join(tmpDir, ".", "a")) {
		t.Error("unclean path to the same file should be equal")
	}
	if sameFile(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "missing")) {
		t.Error("unresolvable paths should never be equal")
	}
}
