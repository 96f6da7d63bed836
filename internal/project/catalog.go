package project

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Version is a named entry in the version catalog's [versions] table.
type Version struct {
	Key   string
	Value string
}

// Library is a catalog library entry.
type Library struct {
	// Alias is the catalog key, e.g. "androidx-core-ktx".
	Alias string
	Group string
	Name  string

	// VersionRef names a [versions] key. Empty when Version is literal
	// or the artifact is managed by a BOM.
	VersionRef string

	// Version is a literal version used when VersionRef is empty.
	Version string
}

// Accessor returns the Kotlin DSL accessor, e.g. "libs.androidx.core.ktx".
func (l Library) Accessor() string {
	return "libs." + strings.ReplaceAll(l.Alias, "-", ".")
}

// Coordinate returns the Maven coordinate with the resolved version, or
// group:name for BOM-managed artifacts.
func (l Library) Coordinate() string {
	v := l.Version
	if l.VersionRef != "" {
		v = versionValue(l.VersionRef)
	}
	if v == "" {
		return l.Group + ":" + l.Name
	}
	return l.Group + ":" + l.Name + ":" + v
}

// TOML renders the library as an inline catalog table.
func (l Library) TOML() string {
	switch {
	case l.VersionRef != "":
		return fmt.Sprintf(`%s = { group = %q, name = %q, version.ref = %q }`, l.Alias, l.Group, l.Name, l.VersionRef)
	case l.Version != "":
		return fmt.Sprintf(`%s = { group = %q, name = %q, version = %q }`, l.Alias, l.Group, l.Name, l.Version)
	default:
		return fmt.Sprintf(`%s = { group = %q, name = %q }`, l.Alias, l.Group, l.Name)
	}
}

// Plugin is a Gradle plugin entry in the catalog.
type Plugin struct {
	Alias      string
	ID         string
	VersionRef string
}

// Accessor returns the Kotlin DSL plugin accessor, e.g. "libs.plugins.hilt".
func (p Plugin) Accessor() string {
	return "libs.plugins." + strings.ReplaceAll(p.Alias, "-", ".")
}

// Version returns the resolved plugin version.
func (p Plugin) Version() string {
	return versionValue(p.VersionRef)
}

// TOML renders the plugin as an inline catalog table.
func (p Plugin) TOML() string {
	return fmt.Sprintf(`%s = { id = %q, version.ref = %q }`, p.Alias, p.ID, p.VersionRef)
}

// Dependency is one line of the app module's dependencies block.
type Dependency struct {
	// Configuration is the Gradle configuration, e.g. "implementation" or "kapt".
	Configuration string
	Library       Library

	// Platform wraps the dependency in platform(...) for BOM imports.
	Platform bool
}

// KotlinDSL renders the dependency for build.gradle.kts.
func (d Dependency) KotlinDSL() string {
	ref := d.Library.Accessor()
	if d.Platform {
		ref = "platform(" + ref + ")"
	}
	return d.Configuration + "(" + ref + ")"
}

// Groovy renders the dependency for build.gradle.
func (d Dependency) Groovy() string {
	ref := "'" + d.Library.Coordinate() + "'"
	if d.Platform {
		ref = "platform(" + ref + ")"
	}
	return d.Configuration + " " + ref
}

// Catalog is the subset of the version catalog selected by a configuration.
type Catalog struct {
	Versions  []Version
	Libraries []Library
	Plugins   []Plugin
}

var versionTable = []Version{
	{"agp", "8.10.0"},
	{"kotlin", "2.0.21"},
	{"coreKtx", "1.16.0"},
	{"junit", "4.13.2"},
	{"junitVersion", "1.2.1"},
	{"espressoCore", "3.6.1"},
	{"lifecycleRuntimeKtx", "2.9.0"},
	{"activityCompose", "1.10.1"},
	{"composeBom", "2024.09.00"},
	{"retrofit", "2.9.0"},
	{"okhttp", "4.12.0"},
	{"ktor", "2.3.7"},
	{"room", "2.6.1"},
	{"realm", "1.13.0"},
	{"sqldelight", "2.0.1"},
	{"hilt", "2.48"},
	{"koin", "3.5.3"},
	{"coil", "2.5.0"},
	{"glide", "4.16.0"},
	{"glideCompose", "1.0.0-beta01"},
	{"coroutines", "1.7.3"},
	{"rxjava", "3.1.8"},
	{"rxandroid", "3.0.2"},
}

func versionValue(key string) string {
	for _, v := range versionTable {
		if v.Key == key {
			return v.Value
		}
	}
	return ""
}

// Catalog libraries.
var (
	libCoreKtx          = Library{"androidx-core-ktx", "androidx.core", "core-ktx", "coreKtx", ""}
	libJunit            = Library{"junit", "junit", "junit", "junit", ""}
	libAndroidxJunit    = Library{"androidx-junit", "androidx.test.ext", "junit", "junitVersion", ""}
	libEspressoCore     = Library{"androidx-espresso-core", "androidx.test.espresso", "espresso-core", "espressoCore", ""}
	libLifecycleRuntime = Library{"androidx-lifecycle-runtime-ktx", "androidx.lifecycle", "lifecycle-runtime-ktx", "lifecycleRuntimeKtx", ""}
	libActivityCompose  = Library{"androidx-activity-compose", "androidx.activity", "activity-compose", "activityCompose", ""}
	libComposeBom       = Library{"androidx-compose-bom", "androidx.compose", "compose-bom", "composeBom", ""}
	libUI               = Library{"androidx-ui", "androidx.compose.ui", "ui", "", ""}
	libUIGraphics       = Library{"androidx-ui-graphics", "androidx.compose.ui", "ui-graphics", "", ""}
	libUITooling        = Library{"androidx-ui-tooling", "androidx.compose.ui", "ui-tooling", "", ""}
	libUIToolingPreview = Library{"androidx-ui-tooling-preview", "androidx.compose.ui", "ui-tooling-preview", "", ""}
	libUITestManifest   = Library{"androidx-ui-test-manifest", "androidx.compose.ui", "ui-test-manifest", "", ""}
	libUITestJunit4     = Library{"androidx-ui-test-junit4", "androidx.compose.ui", "ui-test-junit4", "", ""}
	libMaterial3        = Library{"androidx-material3", "androidx.compose.material3", "material3", "", ""}
	libAppcompat        = Library{"androidx-appcompat", "androidx.appcompat", "appcompat", "", "1.6.1"}
	libConstraintLayout = Library{"androidx-constraintlayout", "androidx.constraintlayout", "constraintlayout", "", "2.1.4"}
	libRetrofit         = Library{"retrofit", "com.squareup.retrofit2", "retrofit", "retrofit", ""}
	libRetrofitGson     = Library{"retrofit-gson", "com.squareup.retrofit2", "converter-gson", "retrofit", ""}
	libOkhttpLogging    = Library{"okhttp-logging", "com.squareup.okhttp3", "logging-interceptor", "okhttp", ""}
	libKtorCore         = Library{"ktor-client-core", "io.ktor", "ktor-client-core", "ktor", ""}
	libKtorOkhttp       = Library{"ktor-client-okhttp", "io.ktor", "ktor-client-okhttp", "ktor", ""}
	libKtorLogging      = Library{"ktor-client-logging", "io.ktor", "ktor-client-logging", "ktor", ""}
	libRoomRuntime      = Library{"room-runtime", "androidx.room", "room-runtime", "room", ""}
	libRoomKtx          = Library{"room-ktx", "androidx.room", "room-ktx", "room", ""}
	libRoomCompiler     = Library{"room-compiler", "androidx.room", "room-compiler", "room", ""}
	libRealm            = Library{"realm-library-base", "io.realm.kotlin", "library-base", "realm", ""}
	libSQLDelightDriver = Library{"sqldelight-android-driver", "app.cash.sqldelight", "android-driver", "sqldelight", ""}
	libSQLDelightCoro   = Library{"sqldelight-coroutines", "app.cash.sqldelight", "coroutines-extensions", "sqldelight", ""}
	libHiltAndroid      = Library{"hilt-android", "com.google.dagger", "hilt-android", "hilt", ""}
	libHiltCompiler     = Library{"hilt-compiler", "com.google.dagger", "hilt-android-compiler", "hilt", ""}
	libKoinAndroid      = Library{"koin-android", "io.insert-koin", "koin-android", "koin", ""}
	libKoinCompose      = Library{"koin-androidx-compose", "io.insert-koin", "koin-androidx-compose", "koin", ""}
	libCoil             = Library{"coil", "io.coil-kt", "coil", "coil", ""}
	libCoilCompose      = Library{"coil-compose", "io.coil-kt", "coil-compose", "coil", ""}
	libGlide            = Library{"glide", "com.github.bumptech.glide", "glide", "glide", ""}
	libGlideCompose     = Library{"glide-compose", "com.github.bumptech.glide", "compose", "glideCompose", ""}
	libCoroutines       = Library{"kotlinx-coroutines-android", "org.jetbrains.kotlinx", "kotlinx-coroutines-android", "coroutines", ""}
	libRxJava           = Library{"rxjava", "io.reactivex.rxjava3", "rxjava", "rxjava", ""}
	libRxAndroid        = Library{"rxandroid", "io.reactivex.rxjava3", "rxandroid", "rxandroid", ""}
	libMaterial         = Library{"material", "com.google.android.material", "material", "", "1.11.0"}
)

// Catalog plugins.
var (
	pluginAndroidApplication = Plugin{"android-application", "com.android.application", "agp"}
	pluginKotlinAndroid      = Plugin{"kotlin-android", "org.jetbrains.kotlin.android", "kotlin"}
	pluginKotlinCompose      = Plugin{"kotlin-compose", "org.jetbrains.kotlin.plugin.compose", "kotlin"}
	pluginHilt               = Plugin{"hilt", "com.google.dagger.hilt.android", "hilt"}
	pluginRealm              = Plugin{"realm", "io.realm.kotlin", "realm"}
	pluginSQLDelight         = Plugin{"sqldelight", "app.cash.sqldelight", "sqldelight"}
)

func impl(l Library) Dependency { return Dependency{Configuration: "implementation", Library: l} }

// Dependencies returns the app module's dependency lines in declaration order.
func Dependencies(c Config) []Dependency {
	deps := []Dependency{
		impl(libCoreKtx),
		impl(libLifecycleRuntime),
		impl(libActivityCompose),
		{Configuration: "implementation", Library: libComposeBom, Platform: true},
		impl(libUI),
		impl(libUIGraphics),
		impl(libUIToolingPreview),
		impl(libMaterial3),
		{Configuration: "debugImplementation", Library: libUITooling},
		{Configuration: "debugImplementation", Library: libUITestManifest},
	}

	if c.UI == UIXML {
		deps = append(deps, impl(libAppcompat), impl(libConstraintLayout))
	}

	switch c.Networking {
	case NetworkingRetrofit:
		deps = append(deps, impl(libRetrofit), impl(libRetrofitGson), impl(libOkhttpLogging))
	case NetworkingKtor:
		deps = append(deps, impl(libKtorCore), impl(libKtorOkhttp), impl(libKtorLogging))
	}

	switch c.Database {
	case DatabaseRoom:
		deps = append(deps, impl(libRoomRuntime), impl(libRoomKtx),
			Dependency{Configuration: "kapt", Library: libRoomCompiler})
	case DatabaseRealm:
		deps = append(deps, impl(libRealm))
	case DatabaseSQLDelight:
		deps = append(deps, impl(libSQLDelightDriver), impl(libSQLDelightCoro))
	}

	switch c.DI {
	case DIHilt:
		deps = append(deps, impl(libHiltAndroid),
			Dependency{Configuration: "kapt", Library: libHiltCompiler})
	case DIKoin:
		deps = append(deps, impl(libKoinAndroid), impl(libKoinCompose))
	}

	switch c.ImageLoading {
	case ImageLoadingCoil:
		deps = append(deps, impl(libCoil), impl(libCoilCompose))
	case ImageLoadingGlide:
		deps = append(deps, impl(libGlide), impl(libGlideCompose))
	}

	switch c.Async {
	case AsyncCoroutines:
		deps = append(deps, impl(libCoroutines))
	case AsyncRxJava:
		deps = append(deps, impl(libRxJava), impl(libRxAndroid))
	}

	deps = append(deps,
		Dependency{Configuration: "testImplementation", Library: libJunit},
		Dependency{Configuration: "androidTestImplementation", Library: libAndroidxJunit},
		Dependency{Configuration: "androidTestImplementation", Library: libEspressoCore},
		Dependency{Configuration: "androidTestImplementation", Library: libComposeBom, Platform: true},
		Dependency{Configuration: "androidTestImplementation", Library: libUITestJunit4},
		impl(libMaterial),
	)
	return deps
}

// Plugins returns the Gradle plugins applied to the app module, excluding
// the kotlin-kapt core plugin which has no catalog entry.
func Plugins(c Config) []Plugin {
	plugins := []Plugin{pluginAndroidApplication, pluginKotlinAndroid, pluginKotlinCompose}
	if c.DI == DIHilt {
		plugins = append(plugins, pluginHilt)
	}
	switch c.Database {
	case DatabaseRealm:
		plugins = append(plugins, pluginRealm)
	case DatabaseSQLDelight:
		plugins = append(plugins, pluginSQLDelight)
	}
	return plugins
}

// CatalogFor returns the catalog entries referenced by a configuration.
// Libraries keep first-use order; versions keep table order.
func CatalogFor(c Config) Catalog {
	var cat Catalog
	seenLib := make(map[string]bool)
	usedVersion := make(map[string]bool)

	for _, d := range Dependencies(c) {
		if seenLib[d.Library.Alias] {
			continue
		}
		seenLib[d.Library.Alias] = true
		cat.Libraries = append(cat.Libraries, d.Library)
		if d.Library.VersionRef != "" {
			usedVersion[d.Library.VersionRef] = true
		}
	}

	cat.Plugins = Plugins(c)
	for _, p := range cat.Plugins {
		usedVersion[p.VersionRef] = true
	}

	for _, v := range versionTable {
		if usedVersion[v.Key] {
			cat.Versions = append(cat.Versions, v)
		}
	}
	return cat
}

// CatalogDocument is the decoded shape of a libs.versions.toml file.
type CatalogDocument struct {
	Versions  map[string]string         `toml:"versions"`
	Libraries map[string]map[string]any `toml:"libraries"`
	Plugins   map[string]map[string]any `toml:"plugins"`
}

// ParseCatalog decodes a rendered version catalog and checks that every
// version.ref points at a declared version.
func ParseCatalog(text string) (*CatalogDocument, error) {
	var doc CatalogDocument
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parsing version catalog: %w", err)
	}

	check := func(kind, alias string, entry map[string]any) error {
		ver, ok := entry["version"].(map[string]any)
		if !ok {
			return nil
		}
		ref, _ := ver["ref"].(string)
		if _, ok := doc.Versions[ref]; !ok {
			return fmt.Errorf("%s %q references undeclared version %q", kind, alias, ref)
		}
		return nil
	}

	for alias, entry := range doc.Libraries {
		if err := check("library", alias, entry); err != nil {
			return nil, err
		}
	}
	for alias, entry := range doc.Plugins {
		if err := check("plugin", alias, entry); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}
