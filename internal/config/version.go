package config

import (
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/mod/module"
)

// FallbackVersion is the release launched when neither the build nor the
// module metadata names one.
const FallbackVersion = "0.1.5"

// readBuildInfo is a test seam for debug.ReadBuildInfo.
var readBuildInfo = debug.ReadBuildInfo

// ResolveVersion picks the pinned release version. The ldflags value wins,
// then the main module version recorded in the build info, then
// FallbackVersion. The result never carries a leading "v".
func ResolveVersion(ldflagsVersion string) string {
	if v, ok := normalizeVersion(ldflagsVersion); ok {
		return v
	}

	if info, ok := readBuildInfo(); ok && info != nil {
		if v, ok := normalizeVersion(info.Main.Version); ok {
			return v
		}
	}

	return FallbackVersion
}

// normalizeVersion parses a release version, tolerating a leading "v".
// Go pseudo-versions and anything that is not strict semver are rejected.
func normalizeVersion(raw string) (string, bool) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if raw == "" || module.IsPseudoVersion("v"+raw) {
		return "", false
	}

	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return "", false
	}
	return v.String(), true
}
