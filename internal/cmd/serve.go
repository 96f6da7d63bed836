package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/opmodel/droidcraft/internal/cmdtypes"
	"github.com/opmodel/droidcraft/internal/config"
	oerrors "github.com/opmodel/droidcraft/internal/errors"
	"github.com/opmodel/droidcraft/internal/output"
	"github.com/opmodel/droidcraft/internal/server"
)

const envServerAddr = "DROIDCRAFT_SERVER_ADDR"

// NewServeCmd creates the serve command.
func NewServeCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var addrFlag string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Long: `Serve the generator as a JSON API.

Endpoints:
  GET  /api/defaults   default configuration
  GET  /api/presets    presets with descriptions and configurations
  POST /api/validate   validate a configuration
  POST /api/preview    list the files a configuration generates
  POST /api/generate   download the project as a zip archive

The listen address is resolved using precedence:
  --addr flag > DROIDCRAFT_SERVER_ADDR env > server.addr config > :8080`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context(), gc, addrFlag)
		},
	}

	c.Flags().StringVar(&addrFlag, "addr", "", "Listen address (default: from config, :8080)")

	return c
}

func runServe(ctx context.Context, gc *cmdtypes.GlobalConfig, addrFlag string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	addr := config.Resolve(config.ResolveOptions{
		Key:          "server.addr",
		FlagValue:    addrFlag,
		EnvVar:       envServerAddr,
		ConfigValue:  configuredAddr(gc),
		DefaultValue: server.DefaultAddr,
	})
	config.LogResolvedValues([]config.ResolvedValue{addr})

	if gc == nil || !gc.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Addr:   addr.Value,
		Logger: output.ComponentLogger("server"),
	})
	if err := srv.Run(ctx); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	return nil
}

// configuredAddr returns server.addr when the file or environment set it.
// A loaded default is left to the resolver so the source reads "default".
func configuredAddr(gc *cmdtypes.GlobalConfig) string {
	if gc == nil || gc.Config == nil {
		return ""
	}
	if gc.Loader != nil && !gc.Loader.IsSet("server.addr") {
		return ""
	}
	return gc.Config.Server.Addr
}
