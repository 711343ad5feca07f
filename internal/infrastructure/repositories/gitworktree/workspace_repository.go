package gitworktree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/versionsync/internal/domain/repositories"
)

// WorkspaceRepository implements repositories.WorkspaceRepository using go-git
// to find the enclosing work tree.
type WorkspaceRepository struct{}

// NewWorkspaceRepository creates a go-git backed workspace repository.
func NewWorkspaceRepository() repositories.WorkspaceRepository {
	return &WorkspaceRepository{}
}

func (it *WorkspaceRepository) Root(start string) (string, error) {
	absStart, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", start, err)
	}

	repo, err := git.PlainOpenWithOptions(absStart, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		logger.Debugf("%s is not inside a Git work tree", absStart)
		return absStart, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to open Git repository at %q: %w", absStart, err)
	}

	worktree, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return absStart, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to open work tree at %q: %w", absStart, err)
	}
	return worktree.Filesystem.Root(), nil
}

func (it *WorkspaceRepository) Enter(dir string) (func(), error) {
	previous, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	if err = os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("failed to enter %q: %w", dir, err)
	}
	logger.Debugf("Entered %s", dir)

	return func() {
		if restoreErr := os.Chdir(previous); restoreErr != nil {
			logger.Warnf("Failed to restore working directory %q: %v", previous, restoreErr)
		}
	}, nil
}
