// Package version reports the build version stamped in with -ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set with -ldflags "-X github.com/hartlaw/hartlaw/internal/shared/version.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semantic version, e.g. not "dev".
func IsRelease(v string) bool {
	return semver.IsValid(Normalize(v))
}

// String returns the display version: "v1.4.0" for releases, the raw value otherwise.
func String() string {
	if IsRelease(Version) {
		return Normalize(Version)
	}
	return Version
}
