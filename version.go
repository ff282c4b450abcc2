// Package codepad holds the release version embedded from VERSION.
package codepad

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// ResolveVersion returns buildVersion unless it is empty or the "dev"
// placeholder left when ldflags were not set, in which case the embedded
// version is used.
func ResolveVersion(buildVersion string) string {
	v := strings.TrimPrefix(strings.TrimSpace(buildVersion), "v")
	if v == "" || v == "dev" {
		return Version()
	}
	return v
}
