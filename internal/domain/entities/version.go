package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// NormalizeVersion turns a raw release tag into a version string by removing
// one leading "v". Anything else is accepted as is.
func NormalizeVersion(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// IsDowngrade reports whether moving from current to latest goes backwards.
// It is false whenever either side is not a valid semantic version.
func IsDowngrade(current, latest string) bool {
	v1 := "v" + NormalizeVersion(current)
	v2 := "v" + NormalizeVersion(latest)
	if !semver.IsValid(v1) || !semver.IsValid(v2) {
		return false
	}
	return semver.Compare(v2, v1) < 0
}
