// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/opmodel/droidcraft/internal/cmd/config"
	"github.com/opmodel/droidcraft/internal/cmdtypes"
	"github.com/opmodel/droidcraft/internal/config"
	"github.com/opmodel/droidcraft/internal/output"
	"github.com/opmodel/droidcraft/internal/version"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the droidcraft CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	gc := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "droidcraft",
		Short: "Android project skeleton generator",
		Long: `droidcraft generates ready-to-build Android projects.

It provides commands to:
  - Create a project interactively or from flags (new)
  - Inspect the files a configuration produces (preview)
  - Serve the generator over HTTP (serve)
  - Manage the droidcraft configuration file (config)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, &flags, gc)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: DROIDCRAFT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd(gc))
	rootCmd.AddCommand(NewPreviewCmd(gc))
	rootCmd.AddCommand(NewServeCmd(gc))
	rootCmd.AddCommand(configcmd.NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, gc *cmdtypes.GlobalConfig) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})
	if err != nil {
		return err
	}

	loader := config.NewLoader()
	cfg, loadErr := loader.Load(pathResult.Value)
	if loadErr != nil {
		// Commands that do not need config keep working; config vet reports it.
		cfg = config.DefaultConfig()
	}

	gc.Config = cfg
	gc.Loader = loader
	gc.ConfigPath = pathResult.Value
	gc.Verbose = flags.verbose

	timestamps := config.ResolveTimestamps(cmd.Flags().Changed("timestamps"), flags.timestamps, cfg)
	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(timestamps.Value == "true"),
	})

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", pathResult.Value, "error", loadErr)
	}

	info := version.Get()
	output.Debug("droidcraft started", "version", info.Version, "commit", info.GitCommit)
	config.LogResolvedValues([]config.ResolvedValue{pathResult, timestamps})

	return nil
}
