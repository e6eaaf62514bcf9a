package platform

import (
	"errors"
	"testing"
)

func TestResolve_SupportedPlatforms(t *testing.T) {
	tests := []struct {
		name       string
		os         string
		machine    string
		wantTriple string
		wantBinary string
	}{
		{"macOS Apple Silicon", "darwin", "arm64", "aarch64-apple-darwin", "opennexus"},
		{"macOS Intel", "darwin", "x86_64", "x86_64-apple-darwin", "opennexus"},
		{"Linux x86_64", "linux", "x86_64", "x86_64-unknown-linux-gnu", "opennexus"},
		{"Linux aarch64", "linux", "aarch64", "aarch64-unknown-linux-gnu", "opennexus"},
		{"Windows amd64", "windows", "amd64", "x86_64-pc-windows-msvc", "opennexus.exe"},
		{"uppercase names", "Linux", "X86_64", "x86_64-unknown-linux-gnu", "opennexus"},
		{"GOARCH style amd64 on linux", "linux", "amd64", "x86_64-unknown-linux-gnu", "opennexus"},
		{"GOARCH style arm64 on linux", "linux", "arm64", "aarch64-unknown-linux-gnu", "opennexus"},
		{"surrounding whitespace", " darwin ", " arm64\n", "aarch64-apple-darwin", "opennexus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.os, tt.machine)
			if err != nil {
				t.Fatalf("Resolve(%q, %q) error = %v", tt.os, tt.machine, err)
			}
			if got.Triple != tt.wantTriple {
				t.Errorf("Triple = %q, want %q", got.Triple, tt.wantTriple)
			}
			if got.BinaryName != tt.wantBinary {
				t.Errorf("BinaryName = %q, want %q", got.BinaryName, tt.wantBinary)
			}
		})
	}
}

func TestResolve_UnsupportedPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		os       string
		machine  string
		wantOS   string
		wantArch string
	}{
		{"windows arm64 not published", "windows", "arm64", "windows", "arm64"},
		{"linux riscv64", "linux", "riscv64", "linux", "riscv64"},
		{"linux 32-bit arm", "linux", "armv7l", "linux", "armv7l"},
		{"freebsd", "FreeBSD", "amd64", "freebsd", "amd64"},
		{"empty names", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.os, tt.machine)
			if err == nil {
				t.Fatal("expected error but got none")
			}

			var unsupported *UnsupportedPlatformError
			if !errors.As(err, &unsupported) {
				t.Fatalf("error = %T (%v), want *UnsupportedPlatformError", err, err)
			}
			if unsupported.OS != tt.wantOS || unsupported.Arch != tt.wantArch {
				t.Errorf("error pair = %s/%s, want %s/%s", unsupported.OS, unsupported.Arch, tt.wantOS, tt.wantArch)
			}
		})
	}
}

func TestUnsupportedPlatformError_Message(t *testing.T) {
	err := &UnsupportedPlatformError{OS: "linux", Arch: "riscv64"}
	if got, want := err.Error(), "unsupported platform: linux/riscv64 (supported: darwin/arm64, darwin/x86_64, linux/arm64, linux/x86_64, windows/x86_64)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSupported_CoversTable(t *testing.T) {
	keys := Supported()
	if len(keys) != 5 {
		t.Fatalf("Supported() returned %d keys, want 5", len(keys))
	}

	for _, key := range keys {
		if _, err := ResolveKey(key); err != nil {
			t.Errorf("ResolveKey(%s) error = %v", key, err)
		}
	}

	// Sorted by OS, then Arch
	if keys[0] != (Key{Darwin, ARM64}) {
		t.Errorf("first key = %s, want darwin/arm64", keys[0])
	}
	if keys[len(keys)-1] != (Key{Windows, X86_64}) {
		t.Errorf("last key = %s, want windows/x86_64", keys[len(keys)-1])
	}
}

func TestResolveKey_Unsupported(t *testing.T) {
	_, err := ResolveKey(Key{OS: Windows, Arch: ARM64})

	var unsupported *UnsupportedPlatformError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *UnsupportedPlatformError", err)
	}
}
