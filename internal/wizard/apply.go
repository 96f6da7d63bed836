package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opmodel/droidcraft/internal/project"
)

// setters assign a validated answer to its configuration field.
var setters = map[string]func(*project.Config, string){
	"projectName": func(c *project.Config, v string) { c.ProjectName = v },
	"packageName": func(c *project.Config, v string) { c.PackageName = v },
	"minSdkVersion": func(c *project.Config, v string) {
		c.MinSdkVersion, _ = strconv.Atoi(v)
	},
	"targetSdkVersion": func(c *project.Config, v string) {
		c.TargetSdkVersion, _ = strconv.Atoi(v)
	},
	"ui":           func(c *project.Config, v string) { c.UI = project.UIToolkit(v) },
	"networking":   func(c *project.Config, v string) { c.Networking = project.Networking(v) },
	"database":     func(c *project.Config, v string) { c.Database = project.Database(v) },
	"di":           func(c *project.Config, v string) { c.DI = project.DI(v) },
	"imageLoading": func(c *project.Config, v string) { c.ImageLoading = project.ImageLoading(v) },
	"async":        func(c *project.Config, v string) { c.Async = project.Async(v) },
}

// Apply records one answer in cfg. Configuration fields are validated with
// project.ValidateField before they are set.
func Apply(cfg *project.Config, id, value string) error {
	value = strings.TrimSpace(value)

	switch id {
	case IDArchitecture:
		// The generated layout is always MVVM.
		cfg.Architecture = project.ArchitectureMVVM
		return nil
	case IDBuildDsl:
		switch value {
		case DslKotlin:
			cfg.UseKotlinDsl = true
		case DslGroovy:
			cfg.UseKotlinDsl = false
		default:
			return fmt.Errorf("build script language must be %s or %s", DslKotlin, DslGroovy)
		}
		return nil
	case IDGenerate:
		ok, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if !ok {
			return ErrCancelled
		}
		return nil
	}

	set, ok := setters[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownQuestion)
	}
	if err := project.ValidateField(id, value); err != nil {
		return err
	}
	set(cfg, value)
	return nil
}
