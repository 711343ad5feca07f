package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	domainRepos "github.com/rios0rios0/versionsync/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/versionsync/internal/infrastructure/repositories/filesystem"
	ghRepo "github.com/rios0rios0/versionsync/internal/infrastructure/repositories/github"
	glRepo "github.com/rios0rios0/versionsync/internal/infrastructure/repositories/gitlab"
	gitRepo "github.com/rios0rios0/versionsync/internal/infrastructure/repositories/gitworktree"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() *ReleaseRegistry {
		reg := NewReleaseRegistry()
		reg.Register(entities.SourceGitHub, ghRepo.NewReleaseRepository)
		reg.Register(entities.SourceGitLab, glRepo.NewReleaseRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ManifestRepository {
		return fsRepo.NewManifestRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.WorkspaceRepository {
		return gitRepo.NewWorkspaceRepository()
	}); err != nil {
		return err
	}

	return nil
}
