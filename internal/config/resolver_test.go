package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/droidcraft/internal/output"
)

func TestResolve_Precedence(t *testing.T) {
	t.Setenv("DROIDCRAFT_TEST_VALUE", "from-env")

	tests := []struct {
		name         string
		opts         ResolveOptions
		wantValue    string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]string
	}{
		{
			name: "flag wins",
			opts: ResolveOptions{
				FlagValue:    "from-flag",
				EnvVar:       "DROIDCRAFT_TEST_VALUE",
				ConfigValue:  "from-config",
				DefaultValue: "from-default",
			},
			wantValue:  "from-flag",
			wantSource: SourceFlag,
			wantShadowed: map[ConfigSource]string{
				SourceEnv:     "from-env",
				SourceConfig:  "from-config",
				SourceDefault: "from-default",
			},
		},
		{
			name: "env beats config",
			opts: ResolveOptions{
				EnvVar:      "DROIDCRAFT_TEST_VALUE",
				ConfigValue: "from-config",
			},
			wantValue:    "from-env",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]string{SourceConfig: "from-config"},
		},
		{
			name: "config beats default",
			opts: ResolveOptions{
				ConfigValue:  "from-config",
				DefaultValue: "from-default",
			},
			wantValue:    "from-config",
			wantSource:   SourceConfig,
			wantShadowed: map[ConfigSource]string{SourceDefault: "from-default"},
		},
		{
			name:         "default fallback",
			opts:         ResolveOptions{DefaultValue: "from-default"},
			wantValue:    "from-default",
			wantSource:   SourceDefault,
			wantShadowed: map[ConfigSource]string{},
		},
		{
			name:         "nothing set",
			opts:         ResolveOptions{EnvVar: "DROIDCRAFT_TEST_UNSET"},
			wantShadowed: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.opts)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantShadowed, got.Shadowed)
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	t.Run("flag", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		got, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
		assert.Equal(t, paths.ConfigFile, got.Shadowed[SourceDefault])
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		got, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", got.Value)
		assert.Equal(t, SourceEnv, got.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		got, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)
		assert.Equal(t, paths.ConfigFile, got.Value)
		assert.Equal(t, SourceDefault, got.Source)
		assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), got.Value)
	})
}

func TestResolveTimestamps(t *testing.T) {
	off := false

	t.Run("explicit flag wins over config", func(t *testing.T) {
		got := ResolveTimestamps(true, true, &Config{Log: LogConfig{Timestamps: &off}})
		assert.Equal(t, "true", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "false", got.Shadowed[SourceConfig])
	})

	t.Run("config when flag unset", func(t *testing.T) {
		got := ResolveTimestamps(false, true, &Config{Log: LogConfig{Timestamps: &off}})
		assert.Equal(t, "false", got.Value)
		assert.Equal(t, SourceConfig, got.Source)
	})

	t.Run("default true", func(t *testing.T) {
		got := ResolveTimestamps(false, false, nil)
		assert.Equal(t, "true", got.Value)
		assert.Equal(t, SourceDefault, got.Source)
	})
}

func TestLogResolvedValues(t *testing.T) {
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Verbose: true})
	defer output.SetupLogging(output.LogConfig{})
	output.Logger().SetOutput(&buf)

	LogResolvedValues([]ResolvedValue{{
		Key:      "output.format",
		Value:    "dir",
		Source:   SourceFlag,
		Shadowed: map[ConfigSource]string{SourceDefault: "zip"},
	}})

	out := buf.String()
	assert.Contains(t, out, "config value resolved")
	assert.Contains(t, out, "output.format")
	assert.Contains(t, out, "shadowed by higher precedence")
}
