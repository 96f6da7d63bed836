package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/droidcraft/internal/cmdtypes"
	"github.com/opmodel/droidcraft/internal/config"
	"github.com/opmodel/droidcraft/internal/output"
)

const configHeader = "# droidcraft configuration\n# Values here are defaults; command flags always win.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a droidcraft configuration file with default values.

The file is created at ~/.droidcraft/config.yaml unless --config or
DROIDCRAFT_CONFIG points elsewhere.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return c
}

func runInit(gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := configFilePath(gc)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return cmdtypes.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			cmdtypes.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cmdtypes.NewExitError(fmt.Errorf("creating config directory: %w", err), cmdtypes.ExitPermissionDenied)
	}

	data, err := RenderDefaultConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return cmdtypes.NewExitError(fmt.Errorf("writing config file: %w", err), cmdtypes.ExitPermissionDenied)
	}

	output.Println(output.FormatCheckmark("Config file created: " + path))
	return nil
}

// RenderDefaultConfig returns the YAML document config init writes.
func RenderDefaultConfig() ([]byte, error) {
	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return append([]byte(configHeader), data...), nil
}
