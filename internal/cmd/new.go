package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/droidcraft/internal/archive"
	"github.com/opmodel/droidcraft/internal/cmdtypes"
	"github.com/opmodel/droidcraft/internal/cmdutil"
	oerrors "github.com/opmodel/droidcraft/internal/errors"
	"github.com/opmodel/droidcraft/internal/output"
	"github.com/opmodel/droidcraft/internal/project"
	"github.com/opmodel/droidcraft/internal/wizard"
)

// canPrompt is replaced in tests.
var canPrompt = wizard.CanPrompt

// NewNewCmd creates the new command.
func NewNewCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var pf cmdutil.ProjectFlags
	var of cmdutil.OutputFlags
	var noInput bool

	c := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Generate a new Android project",
		Long: `Generate a new Android project.

On a terminal the interactive wizard collects the configuration, starting
from the preset, config defaults and any flags given. With --no-input, or
when stdin/stdout is not a terminal, flags alone decide.

Output formats:
  zip   <ProjectName>.zip in --dir (default)
  dir   project files written to --dir, or <dir>/<ProjectName>

Examples:
  # Interactive wizard
  droidcraft new

  # Headless, written as Weather.zip in the current directory
  droidcraft new Weather --no-input --package com.acme.weather

  # XML views with Koin, written into ./weather
  droidcraft new Weather --no-input --preset xml -o dir --dir ./weather`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args, gc, &pf, &of, noInput)
		},
	}

	pf.AddTo(c)
	of.AddTo(c)
	c.Flags().BoolVar(&noInput, "no-input", false, "Never prompt; use flags and defaults only")

	return c
}

func runNew(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, pf *cmdutil.ProjectFlags, of *cmdutil.OutputFlags, noInput bool) error {
	settings := gc.Settings()

	cfg, err := pf.Build(c, cmdutil.ResolveProjectName(args), settings)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	format, outDir, err := of.Resolve(settings)
	if err != nil {
		return oerrors.NewExitError(oerrors.NewValidationError(err.Error(), "", "output", ""), oerrors.ExitValidationError)
	}

	if !noInput && canPrompt() {
		cfg, err = wizard.Run(c.Context(), cfg, wizard.Options{PackagePrefix: settings.Defaults.PackagePrefix})
		if errors.Is(err, wizard.ErrCancelled) {
			output.Warn("project generation cancelled")
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
		}
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitGeneralError)
		}
	}

	if err := project.Validate(cfg); err != nil {
		return cmdutil.ValidationFailure(err)
	}

	var (
		structure project.Structure
		location  string
		rootName  string
		status    = output.StatusCreated
	)
	err = output.RunWithSpinner(c.Context(), func() error {
		structure = project.Generate(cfg)
		output.Debug("project generated", "files", structure.Len())

		switch format {
		case output.FormatDir:
			target := of.Dir
			if target == "" {
				target = filepath.Join(outDir, cfg.ProjectName)
			}
			res, err := archive.WriteDir(target, structure, archive.DirOptions{Force: of.Force})
			if err != nil {
				return err
			}
			location = res.Dir
			rootName = filepath.Base(res.Dir)
			if of.Force && !res.Created {
				status = output.StatusOverwritten
			}
		default:
			dest := filepath.Join(outDir, archive.ArchiveName(cfg))
			if err := checkArchiveDest(dest, of.Force); err != nil {
				return err
			}
			if _, err := os.Stat(dest); err == nil {
				status = output.StatusOverwritten
			}
			if err := archive.WriteZipFile(dest, structure, archive.ZipOptions{}); err != nil {
				return err
			}
			location, _ = filepath.Abs(dest)
			rootName = archive.ArchiveName(cfg)
		}
		return nil
	}, output.WithTitle(fmt.Sprintf("Generating %s...", cfg.ProjectName)))
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created project %s in %s",
		output.StyleNoun.Render(cfg.ProjectName), location)))
	output.Println(output.FormatStatusLine(rootName, status))
	output.Println("")
	output.Print(cmdutil.FileTree(rootName, structure))

	return nil
}

// checkArchiveDest refuses to overwrite an existing archive without force.
func checkArchiveDest(dest string, force bool) error {
	if _, err := os.Stat(dest); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "archive already exists",
			Location: dest,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrValidation,
		}
	}
	return nil
}
