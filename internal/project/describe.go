package project

import (
	"path"
	"sort"
	"strings"
)

// Describe returns a short human description of a generated file, used in
// the file tree printed after generation.
func Describe(p string) string {
	descriptions := map[string]string{
		"build.gradle.kts":                 "Root build script",
		"build.gradle":                     "Root build script",
		"settings.gradle.kts":              "Gradle settings",
		"settings.gradle":                  "Gradle settings",
		"app/build.gradle.kts":             "App module build script",
		"app/build.gradle":                 "App module build script",
		"gradle/libs.versions.toml":        "Version catalog",
		"gradle.properties":                "Gradle properties",
		"README.md":                        "Project readme",
		"app/src/main/AndroidManifest.xml": "Application manifest",
	}
	if desc, ok := descriptions[p]; ok {
		return desc
	}

	base := path.Base(p)
	switch base {
	case "MainActivity.kt":
		return "Entry-point activity"
	case "MyApplication.kt":
		return "Application class"
	case "MainViewModel.kt":
		return "View model"
	case "ItemRepository.kt":
		return "Repository"
	case "Item.kt":
		return "Data model"
	}

	switch path.Ext(base) {
	case ".kt":
		return "Kotlin source"
	case ".xml":
		return "XML resource"
	case ".kts", ".gradle":
		return "Gradle build script"
	case ".properties":
		return "Properties"
	case ".md":
		return "Markdown"
	case ".webp", ".png":
		return "Launcher icon"
	}
	return ""
}

// SortForDisplay returns the paths ordered by top-level directory, then
// depth, then name. Generation order is left untouched.
func SortForDisplay(paths []string) []string {
	out := make([]string, len(paths))
	copy(out, paths)

	top := func(p string) string {
		if i := strings.IndexByte(p, '/'); i >= 0 {
			return p[:i]
		}
		return ""
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := top(out[i]), top(out[j])
		if ti != tj {
			return ti < tj
		}
		di, dj := strings.Count(out[i], "/"), strings.Count(out[j], "/")
		if di != dj {
			return di < dj
		}
		return out[i] < out[j]
	})
	return out
}
