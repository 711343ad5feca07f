package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/versionsync/internal/domain/commands"
	"github.com/rios0rios0/versionsync/internal/domain/entities"
)

// SyncController handles the "sync" subcommand, also run by the root command.
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync",
		Short: "Bump the package version in every target file",
		Long: `Resolve the latest published version of the configured package and
rewrite its dependency declaration in every target file.

Nothing is written when the first target file already holds the latest
version. Use --dry-run to see the pending changes without writing them.`,
	}
}

// AddFlags is a no-op: sync only uses the global flags.
func (it *SyncController) AddFlags(_ *cobra.Command) {}

// Execute runs one synchronization.
func (it *SyncController) Execute(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if _, err = it.command.Execute(commandContext(cmd), settings, commands.SyncOptions{
		DryRun:  dryRun,
		Verbose: verbose,
	}); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	return nil
}
