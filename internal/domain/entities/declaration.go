package entities

import "regexp"

// DependencyDeclaration locates `"<package>": "<version>"` entries of a single
// package inside a manifest.
type DependencyDeclaration struct {
	PackageID string
	pattern   *regexp.Regexp
}

// NewDependencyDeclaration builds the matcher for the given package identifier.
func NewDependencyDeclaration(packageID string) *DependencyDeclaration {
	return &DependencyDeclaration{
		PackageID: packageID,
		pattern:   regexp.MustCompile(`("` + regexp.QuoteMeta(packageID) + `"\s*:\s*")([^"]*)(")`),
	}
}

// Find returns the version recorded by the first declaration in content.
func (it *DependencyDeclaration) Find(content string) (string, bool) {
	groups := it.pattern.FindStringSubmatch(content)
	if groups == nil {
		return "", false
	}
	return groups[2], true
}

// Replace sets the value of every declaration in content to version. All other
// bytes, whitespace included, are kept.
func (it *DependencyDeclaration) Replace(content, version string) string {
	return it.pattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := it.pattern.FindStringSubmatch(match)
		return groups[1] + version + groups[3]
	})
}
