package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	"github.com/rios0rios0/versionsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/versionsync/internal/infrastructure/repositories"
)

// ErrSyncFailed is returned when at least one target file could not be updated.
var ErrSyncFailed = errors.New("failed to update target files")

// Sync is the interface for the sync command.
type Sync interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SyncOptions) (*entities.SyncSummary, error)
}

// SyncOptions holds runtime options for a single synchronization.
type SyncOptions struct {
	DryRun  bool
	Verbose bool
}

// SyncCommand brings the package declaration of every target file to the
// latest published version.
type SyncCommand struct {
	releaseRegistry *infraRepos.ReleaseRegistry
	manifests       repositories.ManifestRepository
	workspace       repositories.WorkspaceRepository
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	releaseRegistry *infraRepos.ReleaseRegistry,
	manifests repositories.ManifestRepository,
	workspace repositories.WorkspaceRepository,
) *SyncCommand {
	return &SyncCommand{
		releaseRegistry: releaseRegistry,
		manifests:       manifests,
		workspace:       workspace,
	}
}

// Execute runs one synchronization: read the current version from the first
// target file, resolve the latest one and rewrite every target file that
// differs. Files are processed in the configured order and a failure on one
// file does not stop the others.
func (it *SyncCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SyncOptions,
) (*entities.SyncSummary, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if len(settings.Files) == 0 {
		return nil, fmt.Errorf("%w: no target files configured", entities.ErrInvalidSettings)
	}

	source, repo, err := releaseSource(it.releaseRegistry, settings)
	if err != nil {
		return nil, err
	}

	restore, err := enterRoot(it.workspace, settings.Root)
	if err != nil {
		return nil, err
	}
	defer restore()

	current, found := it.ReadCurrentVersion(settings.Files[0], settings.Package)
	if found {
		logger.Infof("Current version of %s: %s", settings.Package, current)
	} else {
		logger.Infof("No current version of %s found in %s", settings.Package, settings.Files[0])
	}

	latest, err := resolveWithTimeout(ctx, source, repo, settings.Timeout)
	if err != nil {
		return nil, err
	}
	logger.Infof("Latest version of %s: %s", settings.Package, latest)

	summary := &entities.SyncSummary{
		PackageID:      settings.Package,
		CurrentVersion: current,
		LatestVersion:  latest,
		DryRun:         opts.DryRun,
	}

	if found && current == latest {
		logger.Infof("%s is already up to date (%s)", settings.Package, latest)
		summary.UpToDate = true
		return summary, nil
	}
	if found && entities.IsDowngrade(current, latest) {
		logger.Warnf("Latest published version %s is older than %s", latest, current)
	}

	for _, path := range settings.Files {
		result, applyErr := it.ApplyVersion(path, settings.Package, latest, opts.DryRun)
		if applyErr != nil {
			logger.Errorf("Failed to update %s: %v", path, applyErr)
			summary.Failures = append(summary.Failures, path)
			continue
		}
		summary.Results = append(summary.Results, result)
		logResult(result, latest, opts.DryRun)
	}

	if !opts.DryRun && settings.Changelog != "" && summary.ChangedFiles() > 0 {
		it.recordChangelog(settings.Changelog, settings.Package, current, latest)
	}

	logSummary(summary)

	if len(summary.Failures) > 0 {
		return summary, fmt.Errorf("%w: %s", ErrSyncFailed, strings.Join(summary.Failures, ", "))
	}
	return summary, nil
}

// ReadCurrentVersion returns the version declared for packageID in the file at path.
func (it *SyncCommand) ReadCurrentVersion(path, packageID string) (string, bool) {
	return readCurrentVersion(it.manifests, path, packageID)
}

// ApplyVersion rewrites the declaration of packageID in the file at path to
// newVersion. A missing file is a no-match, not an error. Nothing is written
// when previewOnly is set or when the content would not change.
func (it *SyncCommand) ApplyVersion(
	path, packageID, newVersion string,
	previewOnly bool,
) (entities.UpdateResult, error) {
	result := entities.UpdateResult{Path: path, Status: entities.UpdateStatusNoMatch}

	content, err := it.manifests.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof("%s not found, nothing to update", path)
		return result, nil
	}
	if err != nil {
		return result, err
	}

	declaration := entities.NewDependencyDeclaration(packageID)
	result.PreviousVersion, _ = declaration.Find(content)
	result.OriginalContent = content
	result.NewContent = declaration.Replace(content, newVersion)

	if result.NewContent == content {
		result.Status = entities.UpdateStatusUnchanged
		return result, nil
	}
	result.Status = entities.UpdateStatusUpdated

	if previewOnly {
		return result, nil
	}
	if err = it.manifests.Write(path, result.NewContent); err != nil {
		return result, err
	}
	result.Written = true
	return result, nil
}

func (it *SyncCommand) recordChangelog(path, packageID, from, to string) {
	content, err := it.manifests.Read(path)
	if err != nil {
		logger.Warnf("Skipping changelog: %v", err)
		return
	}

	updated := entities.InsertChangelogEntries(content, []string{entities.ChangelogEntry(packageID, from, to)})
	if updated == content {
		logger.Infof("No [Unreleased] section in %s, changelog left as is", path)
		return
	}
	if err = it.manifests.Write(path, updated); err != nil {
		logger.Warnf("Failed to update changelog: %v", err)
		return
	}
	logger.Infof("Recorded version bump in %s", path)
}

func logResult(result entities.UpdateResult, latest string, dryRun bool) {
	switch result.Status {
	case entities.UpdateStatusNoMatch:
		return
	case entities.UpdateStatusUnchanged:
		logger.Infof("%s: no change", result.Path)
	case entities.UpdateStatusUpdated:
		if !dryRun {
			logger.Infof("%s: %s -> %s", result.Path, result.PreviousVersion, latest)
			return
		}
		logger.Infof("%s: would change %s -> %s", result.Path, result.PreviousVersion, latest)
		for _, line := range renderDiff(result.OriginalContent, result.NewContent) {
			logger.Info("    " + line)
		}
	}
}

func logSummary(summary *entities.SyncSummary) {
	from := summary.CurrentVersion
	if from == "" {
		from = "(none)"
	}

	changed := summary.ChangedFiles()
	if summary.DryRun {
		logger.Infof("[dry-run] %d file(s) would be updated: %s -> %s", changed, from, summary.LatestVersion)
		return
	}
	logger.Infof("Updated %d file(s): %s -> %s", changed, from, summary.LatestVersion)
}
