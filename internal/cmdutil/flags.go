// Package cmdutil provides shared command utilities for the generator
// commands. It centralizes flag groups, configuration assembly and the
// formatting of validation failures and file trees.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/droidcraft/internal/config"
	"github.com/opmodel/droidcraft/internal/output"
	"github.com/opmodel/droidcraft/internal/project"
)

// EnvPreset selects the starting preset when --preset is not given.
const EnvPreset = "DROIDCRAFT_PRESET"

// ProjectFlags holds the configuration flags shared by new and preview.
type ProjectFlags struct {
	Preset       string
	Package      string
	MinSdk       int
	TargetSdk    int
	Architecture string
	UI           string
	Networking   string
	Database     string
	DI           string
	ImageLoading string
	Async        string
	Groovy       bool
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.Preset, "preset", "",
		fmt.Sprintf("Starting preset (%s)", strings.Join(project.Names(), ", ")))
	fs.StringVar(&f.Package, "package", "",
		"Application package (default: derived from the project name)")
	fs.IntVar(&f.MinSdk, "min-sdk", project.DefaultMinSdkVersion,
		"Minimum SDK version")
	fs.IntVar(&f.TargetSdk, "target-sdk", project.DefaultTargetSdkVersion,
		"Target SDK version")
	fs.StringVar(&f.Architecture, "architecture", string(project.ArchitectureMVVM),
		"Architecture described in the readme ("+joinEnum(project.Architectures())+")")
	fs.StringVar(&f.UI, "ui", string(project.UICompose),
		"UI toolkit ("+joinEnum(project.UIToolkits())+")")
	fs.StringVar(&f.Networking, "networking", string(project.NetworkingRetrofit),
		"Networking library ("+joinEnum(project.NetworkingOptions())+")")
	fs.StringVar(&f.Database, "database", string(project.DatabaseRoom),
		"Database library ("+joinEnum(project.DatabaseOptions())+")")
	fs.StringVar(&f.DI, "di", string(project.DIHilt),
		"Dependency injection ("+joinEnum(project.DIOptions())+")")
	fs.StringVar(&f.ImageLoading, "image-loading", string(project.ImageLoadingCoil),
		"Image loading library ("+joinEnum(project.ImageLoadingOptions())+")")
	fs.StringVar(&f.Async, "async", string(project.AsyncCoroutines),
		"Async library ("+joinEnum(project.AsyncOptions())+")")
	fs.BoolVar(&f.Groovy, "groovy", false,
		"Use Groovy build scripts instead of the Kotlin DSL")
}

// Build assembles the project configuration for name. It starts from the
// resolved preset with the configured defaults, then applies every flag the
// user set explicitly. The result is not validated.
func (f *ProjectFlags) Build(cmd *cobra.Command, name string, cfg *config.Config) (project.Config, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	preset := config.Resolve(config.ResolveOptions{
		Key:          "defaults.preset",
		FlagValue:    f.Preset,
		EnvVar:       EnvPreset,
		ConfigValue:  cfg.Defaults.Preset,
		DefaultValue: project.DefaultPresetName,
	})
	config.LogResolvedValues([]config.ResolvedValue{preset})

	settings := *cfg
	settings.Defaults.Preset = preset.Value
	pc, err := settings.ProjectConfig(name)
	if err != nil {
		return project.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("package") {
		pc.PackageName = strings.TrimSpace(f.Package)
	}
	if changed("min-sdk") {
		pc.MinSdkVersion = f.MinSdk
	}
	if changed("target-sdk") {
		pc.TargetSdkVersion = f.TargetSdk
	}
	if changed("architecture") {
		pc.Architecture = project.Architecture(f.Architecture)
	}
	if changed("ui") {
		pc.UI = project.UIToolkit(f.UI)
	}
	if changed("networking") {
		pc.Networking = project.Networking(f.Networking)
	}
	if changed("database") {
		pc.Database = project.Database(f.Database)
	}
	if changed("di") {
		pc.DI = project.DI(f.DI)
	}
	if changed("image-loading") {
		pc.ImageLoading = project.ImageLoading(f.ImageLoading)
	}
	if changed("async") {
		pc.Async = project.Async(f.Async)
	}
	if changed("groovy") {
		pc.UseKotlinDsl = !f.Groovy
	}

	output.Debug("project configuration assembled",
		"preset", preset.Value,
		"project", pc.ProjectName,
		"package", pc.PackageName,
	)
	return pc, nil
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// OutputFlags holds the flags that control where new writes a project.
type OutputFlags struct {
	Format string
	Dir    string
	Force  bool
}

// AddTo registers the output flags on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", "",
		"Output format: "+output.JoinFormats(output.GenerateFormats())+" (default: from config, zip)")
	cmd.Flags().StringVarP(&f.Dir, "dir", "d", "",
		"Project directory, or the archive's parent directory (default: from config)")
	cmd.Flags().BoolVarP(&f.Force, "force", "f", false,
		"Overwrite an existing archive or write into a non-empty directory")
}

// Resolve fills unset output flags from cfg and parses the format.
func (f *OutputFlags) Resolve(cfg *config.Config) (output.OutputFormat, string, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	format := config.Resolve(config.ResolveOptions{
		Key:          "output.format",
		FlagValue:    f.Format,
		ConfigValue:  cfg.Output.Format,
		DefaultValue: config.DefaultOutputFormat,
	})
	dir := config.Resolve(config.ResolveOptions{
		Key:          "output.dir",
		FlagValue:    f.Dir,
		ConfigValue:  cfg.Output.Dir,
		DefaultValue: config.DefaultOutputDir,
	})
	config.LogResolvedValues([]config.ResolvedValue{format, dir})

	parsed, err := output.ParseOutputFormat(format.Value, output.GenerateFormats()...)
	if err != nil {
		return "", "", err
	}

	expanded, err := config.ExpandPath(dir.Value)
	if err != nil {
		return "", "", fmt.Errorf("expanding output dir: %w", err)
	}
	return parsed, expanded, nil
}

// ResolveProjectName returns the project name from command args,
// defaulting to project.DefaultProjectName.
func ResolveProjectName(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0])
	}
	return project.DefaultProjectName
}
