package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/versionsync/internal/domain/commands"
	"github.com/rios0rios0/versionsync/internal/domain/entities"
)

// ErrOutdated is returned by check when --fail-on-outdated is set and a target file lags behind.
var ErrOutdated = errors.New("target files are outdated")

// CheckController handles the "check" subcommand.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Report target files behind the latest version",
		Long: `Resolve the latest published version of the configured package and
report, for every target file, the version it currently declares.
Never modifies any file.`,
	}
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("fail-on-outdated", false, "Exit with an error when a target file is behind")
}

// Execute runs the check.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	failOnOutdated, _ := cmd.Flags().GetBool("fail-on-outdated")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(commandContext(cmd), settings)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if failOnOutdated && report.Outdated() > 0 {
		return fmt.Errorf("%w: %d file(s) behind %s", ErrOutdated, report.Outdated(), report.LatestVersion)
	}
	return nil
}
