//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	packageID  string
	sourceType string
	repository string
	token      string
	root       string
	files      []string
	changelog  string
	timeout    time.Duration
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		packageID:   "com.example.pkg",
		sourceType:  entities.SourceGitHub,
		repository:  "example/pkg",
		root:        "/workspace",
		files:       []string{"Packages/manifest.json", "Samples/Packages/manifest.json"},
		timeout:     entities.DefaultTimeout,
	}
}

// WithPackage sets the package identifier.
func (b *SettingsBuilder) WithPackage(packageID string) *SettingsBuilder {
	b.packageID = packageID
	return b
}

// WithSourceType sets the release source type.
func (b *SettingsBuilder) WithSourceType(sourceType string) *SettingsBuilder {
	b.sourceType = sourceType
	return b
}

// WithRepository sets the release source repository ("owner/name").
func (b *SettingsBuilder) WithRepository(repository string) *SettingsBuilder {
	b.repository = repository
	return b
}

// WithToken sets the release source token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithRoot sets the root directory.
func (b *SettingsBuilder) WithRoot(root string) *SettingsBuilder {
	b.root = root
	return b
}

// WithFiles sets the target files.
func (b *SettingsBuilder) WithFiles(files ...string) *SettingsBuilder {
	b.files = files
	return b
}

// WithChangelog sets the changelog path.
func (b *SettingsBuilder) WithChangelog(changelog string) *SettingsBuilder {
	b.changelog = changelog
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Package: b.packageID,
		Source: entities.SourceSettings{
			Type:       b.sourceType,
			Repository: b.repository,
			Token:      b.token,
			UserAgent:  entities.DefaultUserAgent,
		},
		Timeout:   b.timeout,
		Root:      b.root,
		Files:     append([]string(nil), b.files...),
		Changelog: b.changelog,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.packageID = "com.example.pkg"
	b.sourceType = entities.SourceGitHub
	b.repository = "example/pkg"
	b.token = ""
	b.root = "/workspace"
	b.files = []string{"Packages/manifest.json", "Samples/Packages/manifest.json"}
	b.changelog = ""
	b.timeout = entities.DefaultTimeout
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		packageID:   b.packageID,
		sourceType:  b.sourceType,
		repository:  b.repository,
		token:       b.token,
		root:        b.root,
		files:       append([]string(nil), b.files...),
		changelog:   b.changelog,
		timeout:     b.timeout,
	}
}
