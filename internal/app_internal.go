package internal

import (
	"github.com/rios0rios0/versionsync/internal/domain/entities"
	"github.com/rios0rios0/versionsync/internal/infrastructure/controllers"
)

// AppInternal holds everything the entry point needs once the container is built.
type AppInternal struct {
	controllers    []entities.Controller
	syncController *controllers.SyncController
}

// NewAppInternal creates the AppInternal from the registered controllers.
func NewAppInternal(
	all *[]entities.Controller,
	syncController *controllers.SyncController,
) *AppInternal {
	return &AppInternal{
		controllers:    *all,
		syncController: syncController,
	}
}

// GetControllers returns every controller exposed as a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetSyncController returns the controller run by the root command.
func (it *AppInternal) GetSyncController() *controllers.SyncController {
	return it.syncController
}
