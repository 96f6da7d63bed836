package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for droidcraft configuration.
const envPrefix = "DROIDCRAFT"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with defaults and
// environment bindings registered.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("defaults.packagePrefix", d.Defaults.PackagePrefix)
	v.SetDefault("defaults.minSdk", d.Defaults.MinSdk)
	v.SetDefault("defaults.targetSdk", d.Defaults.TargetSdk)
	v.SetDefault("defaults.preset", d.Defaults.Preset)
	v.SetDefault("defaults.kotlinDsl", d.Defaults.KotlinDsl)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("server.addr", d.Server.Addr)

	// log.timestamps has no default; nil means "not configured".
	_ = v.BindEnv("log.timestamps", "DROIDCRAFT_LOG_TIMESTAMPS")
	for key, aliases := range envAliases {
		_ = v.BindEnv(append([]string{key, envKey(key)}, aliases...)...)
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// IsSet reports whether key was set by the config file or the environment.
func (l *Loader) IsSet(key string) bool {
	return l.v.InConfig(key) || l.envValue(key) != ""
}

// InConfig reports whether key was present in the loaded config file.
func (l *Loader) InConfig(key string) bool {
	return l.v.InConfig(key)
}

// envAliases are extra environment variables accepted for a key.
var envAliases = map[string][]string{
	"server.addr": {"DROIDCRAFT_ADDR"},
}

func envKey(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// envValue returns the environment override for key, if any.
func (l *Loader) envValue(key string) string {
	if v := os.Getenv(envKey(key)); v != "" {
		return v
	}
	for _, alias := range envAliases[key] {
		if v := os.Getenv(alias); v != "" {
			return v
		}
	}
	return ""
}
