package entities

import "github.com/samber/lo"

// UpdateStatus is the outcome of applying a version to a single target file.
type UpdateStatus string

const (
	// UpdateStatusNoMatch means the file is missing.
	UpdateStatusNoMatch UpdateStatus = "no-match"
	// UpdateStatusUnchanged means the file already holds the version or has no declaration.
	UpdateStatusUnchanged UpdateStatus = "unchanged"
	// UpdateStatusUpdated means the declaration was rewritten.
	UpdateStatusUpdated UpdateStatus = "updated"
)

// UpdateResult describes what happened (or would happen) to one target file.
type UpdateResult struct {
	Path            string
	Status          UpdateStatus
	PreviousVersion string
	OriginalContent string
	NewContent      string
	Written         bool
}

// Changed reports whether the file content differs from the original.
func (r UpdateResult) Changed() bool {
	return r.Status == UpdateStatusUpdated
}

// SyncSummary aggregates a full synchronization run.
type SyncSummary struct {
	PackageID      string
	CurrentVersion string
	LatestVersion  string
	UpToDate       bool
	DryRun         bool
	Results        []UpdateResult
	Failures       []string
}

// ChangedFiles counts the target files whose declaration was (or would be) rewritten.
func (s *SyncSummary) ChangedFiles() int {
	return lo.CountBy(s.Results, func(result UpdateResult) bool {
		return result.Changed()
	})
}

// FileVersion is the version recorded in one target file.
type FileVersion struct {
	Path    string
	Version string
	Found   bool
	Behind  bool
}

// CheckReport compares every target file with the latest published version.
type CheckReport struct {
	PackageID     string
	LatestVersion string
	Files         []FileVersion
}

// Outdated counts the files that record a version other than the latest one.
func (r *CheckReport) Outdated() int {
	return lo.CountBy(r.Files, func(file FileVersion) bool {
		return file.Behind
	})
}
