// Package config provides CLI command implementations for the config command group.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/droidcraft/internal/cmdtypes"
	"github.com/opmodel/droidcraft/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long: `Manage the droidcraft configuration file.

The file holds the defaults new, preview and serve start from: package
prefix, SDK levels, preset, output location and the server address.`,
	}

	c.AddCommand(NewConfigInitCmd(gc))
	c.AddCommand(NewConfigVetCmd(gc))

	return c
}

// configFilePath returns the expanded config path resolved at startup, or
// the default location when the root hook has not run.
func configFilePath(gc *cmdtypes.GlobalConfig) (string, error) {
	path := ""
	if gc != nil {
		path = gc.ConfigPath
	}
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expanded, nil
}
