// Package config provides configuration loading and management.
package config

import (
	"github.com/opmodel/droidcraft/internal/project"
)

// DefaultsConfig holds the starting values for new projects.
type DefaultsConfig struct {
	// PackagePrefix is the reverse-domain prefix for derived package names.
	// Env: DROIDCRAFT_DEFAULTS_PACKAGEPREFIX, Default: com.example
	PackagePrefix string `mapstructure:"packagePrefix" yaml:"packagePrefix" validate:"omitempty,android_package"`

	// MinSdk is the default minimum SDK level.
	MinSdk int `mapstructure:"minSdk" yaml:"minSdk" validate:"min=16,max=34"`

	// TargetSdk is the default target SDK level.
	TargetSdk int `mapstructure:"targetSdk" yaml:"targetSdk" validate:"min=21,max=34"`

	// Preset names the preset new projects start from.
	Preset string `mapstructure:"preset" yaml:"preset" validate:"omitempty,preset"`

	// KotlinDsl selects Kotlin DSL build scripts over Groovy.
	KotlinDsl bool `mapstructure:"kotlinDsl" yaml:"kotlinDsl"`
}

// OutputConfig controls where and how generated projects are written.
type OutputConfig struct {
	// Dir is the parent directory for archives or project directories.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Format is "zip" or "dir".
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=zip dir"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// ServerConfig contains settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address. Env: DROIDCRAFT_SERVER_ADDR
	Addr string `mapstructure:"addr" yaml:"addr" validate:"omitempty,listen_addr"`
}

// Config represents the droidcraft CLI configuration, loaded from
// ~/.droidcraft/config.yaml.
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
}

// Default values.
const (
	DefaultOutputDir    = "."
	DefaultOutputFormat = "zip"
	DefaultServerAddr   = ":8080"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `droidcraft config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			PackagePrefix: project.DefaultPackagePrefix,
			MinSdk:        project.DefaultMinSdkVersion,
			TargetSdk:     project.DefaultTargetSdkVersion,
			Preset:        project.DefaultPresetName,
			KotlinDsl:     true,
		},
		Output: OutputConfig{
			Dir:    DefaultOutputDir,
			Format: DefaultOutputFormat,
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
	}
}

// ProjectConfig returns the configuration a new project named name starts
// from: the configured preset, overlaid with the configured SDK levels,
// dialect and a package derived from the prefix.
func (c *Config) ProjectConfig(name string) (project.Config, error) {
	presetName := c.Defaults.Preset
	if presetName == "" {
		presetName = project.DefaultPresetName
	}
	p, err := project.Get(presetName)
	if err != nil {
		return project.Config{}, err
	}

	pc := p.Config
	if name != "" {
		pc.ProjectName = name
	}
	pc.PackageName = project.DerivePackageName(c.Defaults.PackagePrefix, pc.ProjectName)
	if c.Defaults.MinSdk != 0 {
		pc.MinSdkVersion = c.Defaults.MinSdk
	}
	if c.Defaults.TargetSdk != 0 {
		pc.TargetSdkVersion = c.Defaults.TargetSdk
	}
	if presetName == project.DefaultPresetName {
		pc.UseKotlinDsl = c.Defaults.KotlinDsl
	}
	return pc, nil
}
