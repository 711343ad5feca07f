package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	"github.com/rios0rios0/versionsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/versionsync/internal/infrastructure/repositories"
)

// ErrNoTagsFound is returned when a repository has neither a release nor a tag.
var ErrNoTagsFound = errors.New("no tags found")

// ResolveLatestVersion returns the normalized tag of the latest release. When
// the release endpoint fails it falls back to the first listed tag.
func ResolveLatestVersion(
	ctx context.Context,
	source repositories.ReleaseRepository,
	repo entities.Repository,
) (string, error) {
	tag, err := source.LatestRelease(ctx, repo)
	if err == nil {
		logger.Debugf("Latest %s release of %s/%s is %s", source.Name(), repo.Organization, repo.Name, tag)
		return entities.NormalizeVersion(tag), nil
	}
	logger.Debugf("No latest release for %s/%s (%v), falling back to tags", repo.Organization, repo.Name, err)

	tags, err := source.ListTags(ctx, repo)
	if err != nil {
		return "", fmt.Errorf("failed to resolve latest version of %s/%s: %w", repo.Organization, repo.Name, err)
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("%w for %s/%s", ErrNoTagsFound, repo.Organization, repo.Name)
	}

	logger.Debugf("First %s tag of %s/%s is %s", source.Name(), repo.Organization, repo.Name, tags[0])
	return entities.NormalizeVersion(tags[0]), nil
}

// releaseSource builds the release repository configured in settings.
func releaseSource(
	registry *infraRepos.ReleaseRegistry,
	settings *entities.Settings,
) (repositories.ReleaseRepository, entities.Repository, error) {
	repo, err := settings.SourceRepository()
	if err != nil {
		return nil, entities.Repository{}, err
	}
	source, err := registry.Get(settings.Source.Type, settings.ReleaseSourceOptions())
	if err != nil {
		return nil, entities.Repository{}, fmt.Errorf("failed to create release source: %w", err)
	}
	return source, repo, nil
}

// resolveWithTimeout bounds ResolveLatestVersion by the configured timeout.
func resolveWithTimeout(
	ctx context.Context,
	source repositories.ReleaseRepository,
	repo entities.Repository,
	timeout time.Duration,
) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return ResolveLatestVersion(ctx, source, repo)
}

// enterRoot makes the configured root (or the enclosing work tree) the
// working directory. The returned function restores the previous one.
func enterRoot(workspace repositories.WorkspaceRepository, root string) (func(), error) {
	if root == "" {
		detected, err := workspace.Root(".")
		if err != nil {
			return nil, fmt.Errorf("failed to detect root directory: %w", err)
		}
		root = detected
	}
	return workspace.Enter(root)
}

// readCurrentVersion returns the version declared for packageID in the file
// at path. Missing files and files without a declaration report not found.
func readCurrentVersion(
	manifests repositories.ManifestRepository,
	path, packageID string,
) (string, bool) {
	content, err := manifests.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("Could not read %s: %v", path, err)
		}
		return "", false
	}
	return entities.NewDependencyDeclaration(packageID).Find(content)
}
