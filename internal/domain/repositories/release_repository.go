package repositories

import (
	"context"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
)

// ReleaseRepository abstracts a source-hosting service (GitHub, GitLab, etc.)
// that publishes releases and tags for a repository.
type ReleaseRepository interface {
	// Name returns the source identifier (e.g. "github").
	Name() string

	// LatestRelease returns the raw tag of the most recent published release.
	// It fails when the repository has no release.
	LatestRelease(ctx context.Context, repo entities.Repository) (string, error)

	// ListTags returns the raw tag names in the order the API lists them.
	ListTags(ctx context.Context, repo entities.Repository) ([]string, error)
}
