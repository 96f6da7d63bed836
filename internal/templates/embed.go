// Package templates provides the embedded Android project templates and rendering.
package templates

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
	"text/template"
)

//go:embed android/*.tmpl
var androidFS embed.FS

// TemplateName identifies one embedded template file.
type TemplateName string

// Embedded template names.
const (
	RootBuildKts         TemplateName = "build.gradle.kts.tmpl"
	RootBuildGroovy      TemplateName = "build.gradle.tmpl"
	SettingsKts          TemplateName = "settings.gradle.kts.tmpl"
	SettingsGroovy       TemplateName = "settings.gradle.tmpl"
	AppBuildKts          TemplateName = "app.build.gradle.kts.tmpl"
	AppBuildGroovy       TemplateName = "app.build.gradle.tmpl"
	VersionCatalog       TemplateName = "libs.versions.toml.tmpl"
	Manifest             TemplateName = "AndroidManifest.xml.tmpl"
	MainActivityCompose  TemplateName = "MainActivity.compose.kt.tmpl"
	MainActivityViews    TemplateName = "MainActivity.xml.kt.tmpl"
	ThemeKt              TemplateName = "Theme.kt.tmpl"
	ColorKt              TemplateName = "Color.kt.tmpl"
	TypeKt               TemplateName = "Type.kt.tmpl"
	Application          TemplateName = "MyApplication.kt.tmpl"
	ItemModel            TemplateName = "Item.kt.tmpl"
	ItemRepository       TemplateName = "ItemRepository.kt.tmpl"
	MainViewModel        TemplateName = "MainViewModel.kt.tmpl"
	Readme               TemplateName = "README.md.tmpl"
	GradleProperties     TemplateName = "gradle.properties.tmpl"
	Strings              TemplateName = "strings.xml.tmpl"
	Colors               TemplateName = "colors.xml.tmpl"
	Themes               TemplateName = "themes.xml.tmpl"
	ActivityLayout       TemplateName = "activity_main.xml.tmpl"
	DataExtractionRules  TemplateName = "data_extraction_rules.xml.tmpl"
	BackupRules          TemplateName = "backup_rules.xml.tmpl"
	AdaptiveIcon         TemplateName = "adaptive_icon.xml.tmpl"
	LauncherBackground   TemplateName = "ic_launcher_background.xml.tmpl"
	LauncherForeground   TemplateName = "ic_launcher_foreground.xml.tmpl"
	pluginManagementFile TemplateName = "plugin_management.tmpl"
)

// android holds every embedded template, parsed once.
var android = template.Must(
	template.New("android").
		Funcs(FuncMap()).
		Option("missingkey=error").
		ParseFS(androidFS, "android/*.tmpl"),
)

// renderableNames returns the names of all renderable templates, sorted.
// Partials that only define shared blocks are excluded.
func renderableNames() []string {
	entries, err := fs.ReadDir(androidFS, "android")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tmpl") {
			continue
		}
		if TemplateName(e.Name()) == pluginManagementFile {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// source returns the raw text of an embedded template.
func source(name TemplateName) (string, error) {
	b, err := fs.ReadFile(androidFS, "android/"+string(name))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
