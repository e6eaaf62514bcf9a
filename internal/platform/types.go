// Package platform detects the host operating system, machine architecture and
// Linux distribution, and maps them onto the prebuilt opennexus release targets.
//
// Detection uses runtime.GOOS for the OS and gopsutil for the kernel machine
// name and distribution details, falling back gracefully when gopsutil cannot
// answer. Resolution is a lookup in a single enumerated table; anything outside
// it is an *UnsupportedPlatformError.
package platform

import "context"

// Linux distribution family constants.
// These represent canonical family names for grouping related distributions.
const (
	FamilyDebian  = "debian"  // Debian, Ubuntu, Linux Mint
	FamilyRHEL    = "rhel"    // RHEL, CentOS, Rocky Linux, AlmaLinux
	FamilyFedora  = "fedora"  // Fedora
	FamilySUSE    = "suse"    // openSUSE, SLES
	FamilyArch    = "arch"    // Arch Linux, Manjaro
	FamilyAlpine  = "alpine"  // Alpine Linux
	FamilyGentoo  = "gentoo"  // Gentoo
	FamilyUnknown = "unknown" // Unrecognized distributions
)

// Info contains platform detection information.
type Info struct {
	OS       string // "linux", "darwin", "windows"
	Machine  string // lower-cased kernel machine name (e.g., "x86_64", "aarch64", "arm64")
	Platform string // distro ID (Linux only, e.g., "ubuntu", "alpine")
	Family   string // canonical family (e.g., "debian", "alpine")
	Version  string // distro version (Linux only, e.g., "22.04")
}

// Distro contains Linux distribution information.
// This is nil on non-Linux platforms.
type Distro struct {
	ID      string // distro ID (e.g., "ubuntu")
	Family  string // canonical family (e.g., "debian")
	Version string // version (e.g., "22.04")
}

// GetDistro returns distro information if this is a Linux platform.
// Returns nil for non-Linux platforms or if distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != string(Linux) || i.Platform == "" {
		return nil
	}
	return &Distro{
		ID:      i.Platform,
		Family:  i.Family,
		Version: i.Version,
	}
}

// Key parses the detected OS and machine into a table key.
// ok is false when either name is not one of the known variants.
func (i *Info) Key() (Key, bool) {
	os, okOS := ParseOS(i.OS)
	arch, okArch := ParseArch(i.Machine)
	return Key{OS: os, Arch: arch}, okOS && okArch
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == string(Linux)
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == string(Darwin)
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == string(Windows)
}

// IsX86_64 returns true if the machine is a 64-bit x86 CPU.
func (i *Info) IsX86_64() bool {
	arch, ok := ParseArch(i.Machine)
	return ok && arch == X86_64
}

// IsARM64 returns true if the machine is a 64-bit ARM CPU.
func (i *Info) IsARM64() bool {
	arch, ok := ParseArch(i.Machine)
	return ok && arch == ARM64
}

// IsAppleSilicon returns true if running on Apple Silicon (macOS + arm64).
func (i *Info) IsAppleSilicon() bool {
	return i.IsMacOS() && i.IsARM64()
}

// IsAlpine returns true if the Linux distribution is Alpine.
func (i *Info) IsAlpine() bool {
	return i.IsLinux() && i.Family == FamilyAlpine
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
