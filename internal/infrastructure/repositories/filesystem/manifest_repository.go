package filesystem

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/rios0rios0/versionsync/internal/domain/repositories"
)

const defaultFileMode fs.FileMode = 0o644

// ManifestRepository implements repositories.ManifestRepository on the local filesystem.
type ManifestRepository struct{}

// NewManifestRepository creates a filesystem-backed manifest repository.
func NewManifestRepository() repositories.ManifestRepository {
	return &ManifestRepository{}
}

func (it *ManifestRepository) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the whole file with content, keeping the permissions of an
// existing file.
func (it *ManifestRepository) Write(path, content string) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
