package platform

import (
	"strings"
)

// familyMap maps distribution names to their canonical family names.
// This is used to normalize variations of family strings from gopsutil.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian, // gopsutil might return ubuntu as family
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
	"gentoo":   FamilyGentoo,
}

// osAliases maps lower-cased OS names to their variant.
var osAliases = map[string]OS{
	"darwin":  Darwin,
	"macos":   Darwin,
	"linux":   Linux,
	"windows": Windows,
}

// archAliases maps the machine names reported by uname, GOARCH and
// Windows onto one variant per architecture.
var archAliases = map[string]Arch{
	"x86_64":  X86_64,
	"amd64":   X86_64,
	"x64":     X86_64,
	"arm64":   ARM64,
	"aarch64": ARM64,
}

// ParseOS returns the OS variant for name.
func ParseOS(name string) (OS, bool) {
	os, ok := osAliases[normalizeName(name)]
	return os, ok
}

// ParseArch returns the Arch variant for a machine name.
func ParseArch(machine string) (Arch, bool) {
	arch, ok := archAliases[normalizeName(machine)]
	return arch, ok
}

// normalizeName lower-cases and trims a host-reported name.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// mapFamily maps distribution family strings to canonical family names.
// Uses a package-level lookup table for explicit mapping.
func mapFamily(family string) string {
	if canonical, ok := familyMap[normalizeName(family)]; ok {
		return canonical
	}

	// Return "unknown" for unrecognized families
	return FamilyUnknown
}
