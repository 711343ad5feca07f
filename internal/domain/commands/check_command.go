package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	"github.com/rios0rios0/versionsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/versionsync/internal/infrastructure/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.CheckReport, error)
}

// CheckCommand reports which target files lag behind the latest published
// version without modifying anything.
type CheckCommand struct {
	releaseRegistry *infraRepos.ReleaseRegistry
	manifests       repositories.ManifestRepository
	workspace       repositories.WorkspaceRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	releaseRegistry *infraRepos.ReleaseRegistry,
	manifests repositories.ManifestRepository,
	workspace repositories.WorkspaceRepository,
) *CheckCommand {
	return &CheckCommand{
		releaseRegistry: releaseRegistry,
		manifests:       manifests,
		workspace:       workspace,
	}
}

// Execute resolves the latest version and compares it with every target file.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.CheckReport, error) {
	source, repo, err := releaseSource(it.releaseRegistry, settings)
	if err != nil {
		return nil, err
	}

	restore, err := enterRoot(it.workspace, settings.Root)
	if err != nil {
		return nil, err
	}
	defer restore()

	latest, err := resolveWithTimeout(ctx, source, repo, settings.Timeout)
	if err != nil {
		return nil, err
	}

	report := &entities.CheckReport{PackageID: settings.Package, LatestVersion: latest}
	for _, path := range settings.Files {
		version, found := readCurrentVersion(it.manifests, path, settings.Package)
		file := entities.FileVersion{
			Path:    path,
			Version: version,
			Found:   found,
			Behind:  found && version != latest,
		}
		report.Files = append(report.Files, file)

		switch {
		case !found:
			logger.Infof("%s: no declaration of %s", path, settings.Package)
		case file.Behind:
			logger.Warnf("%s: %s is behind %s", path, version, latest)
		default:
			logger.Infof("%s: %s is up to date", path, version)
		}
	}

	logger.Infof("%d of %d file(s) behind %s %s", report.Outdated(), len(report.Files), settings.Package, latest)
	return report, nil
}
