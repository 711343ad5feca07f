package entities

import (
	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// Repository is re-exported from gitforge. Only Organization (owner or group
// path) and Name are used to address the release source.
type Repository = gitforgeEntities.Repository
