package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/droidcraft/internal/cmdtypes"
	"github.com/opmodel/droidcraft/internal/config"
	oerrors "github.com/opmodel/droidcraft/internal/errors"
	"github.com/opmodel/droidcraft/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the droidcraft configuration file.

Unknown keys, out-of-range SDK levels, malformed package prefixes and
unknown presets are reported with the offending key.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVet(gc)
		},
	}
}

func runVet(gc *cmdtypes.GlobalConfig) error {
	path, err := configFilePath(gc)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return cmdtypes.NewExitError(oerrors.NewNotFoundError(
			"config file not found",
			path,
			"Run 'droidcraft config init' to create one.",
		), cmdtypes.ExitNotFound)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating config: %w", err)
		}

		lines := make([]string, len(verrs))
		for i, e := range verrs {
			lines[i] = e.Error()
		}
		return cmdtypes.NewExitError(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  strings.Join(lines, "\n"),
			Location: path,
			Hint:     "Run 'droidcraft config init --force' to start from the defaults.",
			Cause:    oerrors.ErrValidation,
		}, cmdtypes.ExitValidationError)
	}

	output.Println(output.FormatVetCheck("Config file is valid", path))
	output.Println(output.FormatVetCheck("Schema", "all keys known"))
	return nil
}
