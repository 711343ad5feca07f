//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"io/fs"

	"github.com/rios0rios0/versionsync/internal/domain/repositories"
)

// InMemoryManifestRepository implements repositories.ManifestRepository over a map.
type InMemoryManifestRepository struct {
	Files     map[string]string // path -> content
	ReadErrs  map[string]error  // path -> error returned by Read
	WriteErrs map[string]error  // path -> error returned by Write
	// spy: paths written, in order
	Writes []string
}

var _ repositories.ManifestRepository = (*InMemoryManifestRepository)(nil)

// NewInMemoryManifestRepository creates a repository holding the given files.
func NewInMemoryManifestRepository(files map[string]string) *InMemoryManifestRepository {
	if files == nil {
		files = make(map[string]string)
	}
	return &InMemoryManifestRepository{
		Files:     files,
		ReadErrs:  make(map[string]error),
		WriteErrs: make(map[string]error),
	}
}

func (r *InMemoryManifestRepository) Read(path string) (string, error) {
	if err, ok := r.ReadErrs[path]; ok {
		return "", err
	}
	content, ok := r.Files[path]
	if !ok {
		return "", fmt.Errorf("failed to read %q: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

func (r *InMemoryManifestRepository) Write(path, content string) error {
	if err, ok := r.WriteErrs[path]; ok {
		return err
	}
	r.Writes = append(r.Writes, path)
	r.Files[path] = content
	return nil
}
