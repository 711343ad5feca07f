//go:build unit

package commands_test

import (
	"github.com/rios0rios0/versionsync/internal/domain/entities"
	"github.com/rios0rios0/versionsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/versionsync/internal/infrastructure/repositories"
)

func registryWith(source repositories.ReleaseRepository) *infraRepos.ReleaseRegistry {
	reg := infraRepos.NewReleaseRegistry()
	reg.Register(entities.SourceGitHub, func(_ entities.ReleaseSourceOptions) (repositories.ReleaseRepository, error) {
		return source, nil
	})
	return reg
}

func manifest(version string) string {
	return "{\n  \"dependencies\": {\n    \"com.example.pkg\": \"" + version + "\",\n    \"com.unity.ugui\": \"1.0.0\"\n  }\n}"
}
