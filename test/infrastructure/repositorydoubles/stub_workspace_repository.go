//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/versionsync/internal/domain/repositories"
)

// StubWorkspaceRepository implements repositories.WorkspaceRepository without
// touching the process working directory.
type StubWorkspaceRepository struct {
	DetectedRoot string
	RootErr      error
	EnterErr     error

	// spy
	RootStarts   []string
	EnteredDirs  []string
	RestoreCount int
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) Root(start string) (string, error) {
	s.RootStarts = append(s.RootStarts, start)
	return s.DetectedRoot, s.RootErr
}

func (s *StubWorkspaceRepository) Enter(dir string) (func(), error) {
	if s.EnterErr != nil {
		return nil, s.EnterErr
	}
	s.EnteredDirs = append(s.EnteredDirs, dir)
	return func() { s.RestoreCount++ }, nil
}
