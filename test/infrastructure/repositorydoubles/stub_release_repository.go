//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	"github.com/rios0rios0/versionsync/internal/domain/repositories"
)

// StubReleaseRepository implements repositories.ReleaseRepository as a configurable spy.
type StubReleaseRepository struct {
	// --- identity ---
	SourceName string

	// --- LatestRelease ---
	LatestTag          string
	LatestErr          error
	LatestReleaseCalls []entities.Repository

	// --- ListTags ---
	Tags          []string
	ListTagsErr   error
	ListTagsCalls []entities.Repository
}

var _ repositories.ReleaseRepository = (*StubReleaseRepository)(nil)

func (s *StubReleaseRepository) Name() string { return s.SourceName }

func (s *StubReleaseRepository) LatestRelease(
	_ context.Context,
	repo entities.Repository,
) (string, error) {
	s.LatestReleaseCalls = append(s.LatestReleaseCalls, repo)
	return s.LatestTag, s.LatestErr
}

func (s *StubReleaseRepository) ListTags(
	_ context.Context,
	repo entities.Repository,
) ([]string, error) {
	s.ListTagsCalls = append(s.ListTagsCalls, repo)
	return s.Tags, s.ListTagsErr
}

// DummyReleaseRepository is a no-op implementation of repositories.ReleaseRepository.
type DummyReleaseRepository struct{}

var _ repositories.ReleaseRepository = (*DummyReleaseRepository)(nil)

func (d *DummyReleaseRepository) Name() string { return "dummy" }

func (d *DummyReleaseRepository) LatestRelease(_ context.Context, _ entities.Repository) (string, error) {
	return "", nil
}

func (d *DummyReleaseRepository) ListTags(_ context.Context, _ entities.Repository) ([]string, error) {
	return nil, nil
}
