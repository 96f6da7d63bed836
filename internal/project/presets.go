package project

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/droidcraft/internal/errors"
)

// DefaultPresetName is the preset used when --preset is not specified.
const DefaultPresetName = "default"

// Preset is a named starting configuration.
type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Config      Config `json:"config" yaml:"config"`
}

func presetMinimal() Config {
	c := DefaultConfig()
	c.Networking = NetworkingNone
	c.Database = DatabaseNone
	c.DI = DINone
	c.ImageLoading = ImageLoadingNone
	c.Async = AsyncNone
	return c
}

func presetGroovy() Config {
	c := DefaultConfig()
	c.UseKotlinDsl = false
	return c
}

func presetXML() Config {
	c := DefaultConfig()
	c.UI = UIXML
	c.DI = DIKoin
	c.ImageLoading = ImageLoadingGlide
	return c
}

// presets is the internal registry of presets, in display order.
var presets = []Preset{
	{
		Name:        "default",
		Description: "Compose, Retrofit, Room, Hilt, Coil and Coroutines with Kotlin DSL",
		Config:      DefaultConfig(),
	},
	{
		Name:        "minimal",
		Description: "Compose only, no optional libraries",
		Config:      presetMinimal(),
	},
	{
		Name:        "groovy",
		Description: "The default stack with Groovy build scripts",
		Config:      presetGroovy(),
	},
	{
		Name:        "xml",
		Description: "XML views with ViewBinding, Koin and Glide",
		Config:      presetXML(),
	},
}

// Get returns a preset by name.
func Get(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, oerrors.NewNotFoundError(
		fmt.Sprintf("unknown preset %q", name),
		"",
		"valid presets: "+strings.Join(Names(), ", "),
	)
}

// Presets returns all presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Default returns the default preset.
func Default() Preset {
	p, _ := Get(DefaultPresetName)
	return p
}

// Names returns all preset names.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
