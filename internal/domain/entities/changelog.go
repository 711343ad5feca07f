package entities

import (
	"fmt"
	"strings"
)

const (
	unreleasedHeading    = "## [Unreleased]"
	changedHeading       = "### Changed"
	releaseHeadingPrefix = "## ["
	bulletPrefix         = "- "
)

// ChangelogEntry formats the bullet recorded for a version bump.
func ChangelogEntry(packageID, from, to string) string {
	if from == "" {
		return fmt.Sprintf("%sbumped `%s` to `%s`", bulletPrefix, packageID, to)
	}
	return fmt.Sprintf("%sbumped `%s` from `%s` to `%s`", bulletPrefix, packageID, from, to)
}

// InsertChangelogEntries adds bullet lines to the "### Changed" subsection of
// the "## [Unreleased]" section of a Keep-a-Changelog document. The
// subsection is created right below the Unreleased heading when missing.
// Content without an Unreleased section is returned unchanged.
func InsertChangelogEntries(content string, entries []string) string {
	if len(entries) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	unreleased := indexOfHeading(lines, 0, len(lines), unreleasedHeading)
	if unreleased < 0 {
		return content
	}

	sectionEnd := len(lines)
	for i := unreleased + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), releaseHeadingPrefix) {
			sectionEnd = i
			break
		}
	}

	changed := indexOfHeading(lines, unreleased+1, sectionEnd, changedHeading)
	if changed < 0 {
		block := append([]string{"", changedHeading, ""}, entries...)
		return strings.Join(splice(lines, unreleased+1, block), "\n")
	}

	// blank lines between bullets are allowed; anything else ends the list
	lastBullet := changed
	for i := changed + 1; i < sectionEnd; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, bulletPrefix) {
			break
		}
		lastBullet = i
	}
	return strings.Join(splice(lines, lastBullet+1, entries), "\n")
}

func indexOfHeading(lines []string, from, to int, heading string) int {
	for i := from; i < to; i++ {
		if strings.TrimSpace(lines[i]) == heading {
			return i
		}
	}
	return -1
}

func splice(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	return append(result, lines[at:]...)
}
