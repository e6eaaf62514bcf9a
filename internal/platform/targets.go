package platform

import (
	"fmt"
	"sort"
	"strings"
)

// OS is a supported operating system, named as runtime.GOOS names it.
type OS string

const (
	Darwin  OS = "darwin"
	Linux   OS = "linux"
	Windows OS = "windows"
)

// Arch is a supported CPU architecture.
type Arch string

const (
	X86_64 Arch = "x86_64"
	ARM64  Arch = "arm64"
)

// Key identifies one entry of the release target table.
type Key struct {
	OS   OS
	Arch Arch
}

// String returns the key as "os/arch".
func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.OS, k.Arch)
}

// Target is the prebuilt release artifact for one platform.
type Target struct {
	Triple     string // e.g. "x86_64-unknown-linux-gnu"
	BinaryName string // installed file name, ".exe" on Windows
}

// targets is the complete set of published platforms.
// Adding a platform is a single entry here.
var targets = map[Key]Target{
	{Darwin, ARM64}:   {Triple: "aarch64-apple-darwin", BinaryName: "opennexus"},
	{Darwin, X86_64}:  {Triple: "x86_64-apple-darwin", BinaryName: "opennexus"},
	{Linux, X86_64}:   {Triple: "x86_64-unknown-linux-gnu", BinaryName: "opennexus"},
	{Linux, ARM64}:    {Triple: "aarch64-unknown-linux-gnu", BinaryName: "opennexus"},
	{Windows, X86_64}: {Triple: "x86_64-pc-windows-msvc", BinaryName: "opennexus.exe"},
}

// UnsupportedPlatformError reports an (OS, architecture) pair with no
// published release. OS and Arch hold the names as they were detected.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	keys := Supported()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Sprintf("unsupported platform: %s/%s (supported: %s)", e.OS, e.Arch, strings.Join(names, ", "))
}

// Resolve maps a host OS name and machine name to its release target.
// Names are matched case-insensitively; machine aliases such as "amd64" and
// "aarch64" are accepted.
func Resolve(osName, machine string) (Target, error) {
	os, okOS := ParseOS(osName)
	arch, okArch := ParseArch(machine)
	if !okOS || !okArch {
		return Target{}, &UnsupportedPlatformError{OS: normalizeName(osName), Arch: normalizeName(machine)}
	}

	target, err := ResolveKey(Key{OS: os, Arch: arch})
	if err != nil {
		return Target{}, &UnsupportedPlatformError{OS: normalizeName(osName), Arch: normalizeName(machine)}
	}
	return target, nil
}

// ResolveKey looks up a parsed key in the target table.
func ResolveKey(key Key) (Target, error) {
	target, ok := targets[key]
	if !ok {
		return Target{}, &UnsupportedPlatformError{OS: string(key.OS), Arch: string(key.Arch)}
	}
	return target, nil
}

// Supported returns every key in the target table, sorted by OS then Arch.
func Supported() []Key {
	keys := make([]Key, 0, len(targets))
	for k := range targets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].OS != keys[j].OS {
			return keys[i].OS < keys[j].OS
		}
		return keys[i].Arch < keys[j].Arch
	})
	return keys
}
