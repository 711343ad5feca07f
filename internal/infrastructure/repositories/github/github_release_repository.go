package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	"github.com/rios0rios0/versionsync/internal/domain/repositories"
)

const (
	sourceName = "github"
	perPage    = 100
)

var errEmptyTag = errors.New("latest release has no tag name")

// GitHubReleaseRepository implements repositories.ReleaseRepository for GitHub.
type GitHubReleaseRepository struct {
	client *gh.Client
}

// NewReleaseRepository creates a GitHub release repository. An empty token
// uses unauthenticated requests.
func NewReleaseRepository(opts entities.ReleaseSourceOptions) (repositories.ReleaseRepository, error) {
	client := gh.NewClient(&http.Client{Timeout: opts.Timeout})
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}
	if opts.UserAgent != "" {
		client.UserAgent = opts.UserAgent
	}
	if opts.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", opts.BaseURL, err)
		}
		client.BaseURL = baseURL
	}
	return &GitHubReleaseRepository{client: client}, nil
}

func (p *GitHubReleaseRepository) Name() string { return sourceName }

// LatestRelease queries the "latest release" endpoint of the repository.
func (p *GitHubReleaseRepository) LatestRelease(
	ctx context.Context,
	repo entities.Repository,
) (string, error) {
	release, _, err := p.client.Repositories.GetLatestRelease(ctx, repo.Organization, repo.Name)
	if err != nil {
		return "", fmt.Errorf("failed to get latest release of %s/%s: %w", repo.Organization, repo.Name, err)
	}
	if release.GetTagName() == "" {
		return "", errEmptyTag
	}
	return release.GetTagName(), nil
}

// ListTags returns the first page of tags, most recent first as GitHub lists them.
func (p *GitHubReleaseRepository) ListTags(
	ctx context.Context,
	repo entities.Repository,
) ([]string, error) {
	tags, _, err := p.client.Repositories.ListTags(
		ctx, repo.Organization, repo.Name, &gh.ListOptions{PerPage: perPage},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags of %s/%s: %w", repo.Organization, repo.Name, err)
	}

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.GetName())
	}
	return names, nil
}
