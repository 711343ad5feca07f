package commands

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderDiff returns the changed lines between original and updated, prefixed
// with "- " and "+ ".
func renderDiff(original, updated string) []string {
	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(original, updated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	var rendered []string
	for _, diff := range diffs {
		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffEqual:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			rendered = append(rendered, prefix+line)
		}
	}
	return rendered
}
