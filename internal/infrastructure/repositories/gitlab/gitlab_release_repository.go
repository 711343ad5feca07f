package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	"github.com/rios0rios0/versionsync/internal/domain/repositories"
)

const (
	sourceName = "gitlab"
	perPage    = 100
)

var errNoReleases = errors.New("project has no releases")

// GitLabReleaseRepository implements repositories.ReleaseRepository for GitLab.
type GitLabReleaseRepository struct {
	client *gl.Client
}

// NewReleaseRepository creates a GitLab release repository. BaseURL defaults
// to gitlab.com.
func NewReleaseRepository(opts entities.ReleaseSourceOptions) (repositories.ReleaseRepository, error) {
	clientOpts := []gl.ClientOptionFunc{
		gl.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, gl.WithBaseURL(opts.BaseURL))
	}

	client, err := gl.NewClient(opts.Token, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}
	if opts.UserAgent != "" {
		client.UserAgent = opts.UserAgent
	}
	return &GitLabReleaseRepository{client: client}, nil
}

func (p *GitLabReleaseRepository) Name() string { return sourceName }

// LatestRelease returns the tag of the most recently released entry.
func (p *GitLabReleaseRepository) LatestRelease(
	ctx context.Context,
	repo entities.Repository,
) (string, error) {
	pid := projectID(repo)
	releases, _, err := p.client.Releases.ListReleases(
		pid,
		&gl.ListReleasesOptions{ListOptions: gl.ListOptions{PerPage: 1}},
		gl.WithContext(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("failed to list releases of %s: %w", pid, err)
	}
	if len(releases) == 0 {
		return "", errNoReleases
	}
	return releases[0].TagName, nil
}

// ListTags returns the first page of tags, most recently updated first.
func (p *GitLabReleaseRepository) ListTags(
	ctx context.Context,
	repo entities.Repository,
) ([]string, error) {
	pid := projectID(repo)
	tags, _, err := p.client.Tags.ListTags(
		pid,
		&gl.ListTagsOptions{ListOptions: gl.ListOptions{PerPage: perPage}},
		gl.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags of %s: %w", pid, err)
	}

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names, nil
}

func projectID(repo entities.Repository) string {
	return repo.Organization + "/" + repo.Name
}
