//go:build unit

package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionsync/internal/domain/entities"
	ghRepo "github.com/rios0rios0/versionsync/internal/infrastructure/repositories/github"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) (string, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	return server.URL, server.Close
}

func TestGitHubReleaseRepository(t *testing.T) {
	t.Parallel()

	repo := entities.Repository{Organization: "example", Name: "pkg"}

	t.Run("Name", func(t *testing.T) {
		t.Parallel()

		// given
		p, err := ghRepo.NewReleaseRepository(entities.ReleaseSourceOptions{})
		require.NoError(t, err)

		// when
		name := p.Name()

		// then
		assert.Equal(t, "github", name)
	})

	t.Run("LatestRelease", func(t *testing.T) {
		t.Parallel()

		t.Run("should return the tag of the latest release", func(t *testing.T) {
			t.Parallel()

			// given
			var userAgent, auth, path string
			baseURL, closeServer := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
				userAgent = r.Header.Get("User-Agent")
				auth = r.Header.Get("Authorization")
				path = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"tag_name": "v1.1.0"}`))
			})
			defer closeServer()
			p, err := ghRepo.NewReleaseRepository(entities.ReleaseSourceOptions{
				Token:     "ghp_secret",
				BaseURL:   baseURL,
				UserAgent: "versionsync",
				Timeout:   5 * time.Second,
			})
			require.NoError(t, err)

			// when
			tag, err := p.LatestRelease(context.Background(), repo)

			// then
			require.NoError(t, err)
			assert.Equal(t, "v1.1.0", tag)
			assert.Equal(t, "/repos/example/pkg/releases/latest", path)
			assert.Equal(t, "versionsync", userAgent)
			assert.Equal(t, "Bearer ghp_secret", auth)
		})

		t.Run("should return error when the repository has no release", func(t *testing.T) {
			t.Parallel()

			// given
			baseURL, closeServer := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"message": "Not Found"}`))
			})
			defer closeServer()
			p, err := ghRepo.NewReleaseRepository(entities.ReleaseSourceOptions{BaseURL: baseURL})
			require.NoError(t, err)

			// when
			_, err = p.LatestRelease(context.Background(), repo)

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to get latest release of example/pkg")
		})

		t.Run("should return error when the release has no tag", func(t *testing.T) {
			t.Parallel()

			// given
			baseURL, closeServer := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			})
			defer closeServer()
			p, err := ghRepo.NewReleaseRepository(entities.ReleaseSourceOptions{BaseURL: baseURL})
			require.NoError(t, err)

			// when
			_, err = p.LatestRelease(context.Background(), repo)

			// then
			require.Error(t, err)
		})
	})

	t.Run("ListTags", func(t *testing.T) {
		t.Parallel()

		t.Run("should keep the order returned by the API", func(t *testing.T) {
			t.Parallel()

			// given
			var path string
			baseURL, closeServer := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				_, _ = w.Write([]byte(`[{"name": "v0.9.0"}, {"name": "v1.0.0"}]`))
			})
			defer closeServer()
			p, err := ghRepo.NewReleaseRepository(entities.ReleaseSourceOptions{BaseURL: baseURL})
			require.NoError(t, err)

			// when
			tags, err := p.ListTags(context.Background(), repo)

			// then
			require.NoError(t, err)
			assert.Equal(t, []string{"v0.9.0", "v1.0.0"}, tags)
			assert.Equal(t, "/repos/example/pkg/tags", path)
		})

		t.Run("should return an empty list when there are no tags", func(t *testing.T) {
			t.Parallel()

			// given
			baseURL, closeServer := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			})
			defer closeServer()
			p, err := ghRepo.NewReleaseRepository(entities.ReleaseSourceOptions{BaseURL: baseURL})
			require.NoError(t, err)

			// when
			tags, err := p.ListTags(context.Background(), repo)

			// then
			require.NoError(t, err)
			assert.Empty(t, tags)
		})

		t.Run("should wrap transport errors", func(t *testing.T) {
			t.Parallel()

			// given
			baseURL, closeServer := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			})
			defer closeServer()
			p, err := ghRepo.NewReleaseRepository(entities.ReleaseSourceOptions{BaseURL: baseURL})
			require.NoError(t, err)

			// when
			_, err = p.ListTags(context.Background(), repo)

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to list tags of example/pkg")
		})
	})
}
