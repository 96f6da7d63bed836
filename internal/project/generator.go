package project

import (
	"github.com/opmodel/droidcraft/internal/templates"
)

// CompileSdk is the compile SDK level written into every app build file.
const CompileSdk = 35

// view is the data every template executes against.
type view struct {
	Config

	PackagePath string
	CompileSdk  int

	Catalog        Catalog
	Plugins        []Plugin
	BasePlugins    []Plugin
	LibraryPlugins []Plugin
	Dependencies   []Dependency

	Kapt     bool
	Hilt     bool
	Koin     bool
	XML      bool
	Internet bool

	ArchitectureDetail string
	LibraryDetails     []string
}

func newView(c Config) view {
	plugins := Plugins(c)
	return view{
		Config:             c,
		PackagePath:        PackagePath(c.PackageName),
		CompileSdk:         CompileSdk,
		Catalog:            CatalogFor(c),
		Plugins:            plugins,
		BasePlugins:        plugins[:3],
		LibraryPlugins:     plugins[3:],
		Dependencies:       Dependencies(c),
		Kapt:               c.NeedsKapt(),
		Hilt:               c.DI == DIHilt,
		Koin:               c.DI == DIKoin,
		XML:                c.UI == UIXML,
		Internet:           c.Networking != NetworkingNone,
		ArchitectureDetail: ArchitectureDetail(c.Architecture),
		LibraryDetails:     LibraryDetails(c),
	}
}

// fileFunc contributes zero or more files for one configuration.
type fileFunc func(c Config, r *templates.Renderer) []File

// contributions lists every file group in output order.
var contributions = []fileFunc{
	buildFiles,
	manifestFile,
	mainActivityFile,
	themeFiles,
	applicationFile,
	mvvmFiles,
	readmeFile,
	gradlePropertiesFile,
	valuesFiles,
	layoutFiles,
	xmlRuleFiles,
	adaptiveIconFiles,
	drawableFiles,
	func(Config, *templates.Renderer) []File { return iconFiles() },
}

// Generate produces the complete project file structure for c.
// It performs no validation and no I/O, and returns identical output for
// identical input.
func Generate(c Config) Structure {
	r := templates.NewRenderer(newView(c))

	var s Structure
	for _, fn := range contributions {
		s.Files = append(s.Files, fn(c, r)...)
	}
	return s
}

func render(r *templates.Renderer, path string, name templates.TemplateName) File {
	return TextFile(path, r.MustRender(name))
}

func buildFiles(c Config, r *templates.Renderer) []File {
	if c.UseKotlinDsl {
		return []File{
			render(r, "build.gradle.kts", templates.RootBuildKts),
			render(r, "settings.gradle.kts", templates.SettingsKts),
			render(r, "app/build.gradle.kts", templates.AppBuildKts),
			render(r, "gradle/libs.versions.toml", templates.VersionCatalog),
		}
	}
	return []File{
		render(r, "build.gradle", templates.RootBuildGroovy),
		render(r, "settings.gradle", templates.SettingsGroovy),
		render(r, "app/build.gradle", templates.AppBuildGroovy),
	}
}

func manifestFile(_ Config, r *templates.Renderer) []File {
	return []File{render(r, "app/src/main/AndroidManifest.xml", templates.Manifest)}
}

func mainActivityFile(c Config, r *templates.Renderer) []File {
	name := templates.MainActivityCompose
	if c.UI == UIXML {
		name = templates.MainActivityViews
	}
	return []File{render(r, joinPath(c.SourceDir(), "MainActivity.kt"), name)}
}

func themeFiles(c Config, r *templates.Renderer) []File {
	dir := joinPath(c.SourceDir(), "ui/theme")
	return []File{
		render(r, dir+"/Theme.kt", templates.ThemeKt),
		render(r, dir+"/Color.kt", templates.ColorKt),
		render(r, dir+"/Type.kt", templates.TypeKt),
	}
}

func applicationFile(c Config, r *templates.Renderer) []File {
	return []File{render(r, joinPath(c.SourceDir(), "MyApplication.kt"), templates.Application)}
}

func mvvmFiles(c Config, r *templates.Renderer) []File {
	src := c.SourceDir()
	return []File{
		render(r, joinPath(src, "data/model/Item.kt"), templates.ItemModel),
		render(r, joinPath(src, "data/repository/ItemRepository.kt"), templates.ItemRepository),
		render(r, joinPath(src, "ui/viewmodel/MainViewModel.kt"), templates.MainViewModel),
	}
}

func readmeFile(_ Config, r *templates.Renderer) []File {
	return []File{render(r, "README.md", templates.Readme)}
}

func gradlePropertiesFile(_ Config, r *templates.Renderer) []File {
	return []File{render(r, "gradle.properties", templates.GradleProperties)}
}

const resDir = "app/src/main/res"

func valuesFiles(_ Config, r *templates.Renderer) []File {
	return []File{
		render(r, resDir+"/values/strings.xml", templates.Strings),
		render(r, resDir+"/values/colors.xml", templates.Colors),
		render(r, resDir+"/values/themes.xml", templates.Themes),
	}
}

func layoutFiles(c Config, r *templates.Renderer) []File {
	if c.UI != UIXML {
		return nil
	}
	return []File{render(r, resDir+"/layout/activity_main.xml", templates.ActivityLayout)}
}

func xmlRuleFiles(_ Config, r *templates.Renderer) []File {
	return []File{
		render(r, resDir+"/xml/data_extraction_rules.xml", templates.DataExtractionRules),
		render(r, resDir+"/xml/backup_rules.xml", templates.BackupRules),
	}
}

func adaptiveIconFiles(_ Config, r *templates.Renderer) []File {
	icon := r.MustRender(templates.AdaptiveIcon)
	return []File{
		TextFile(resDir+"/mipmap-anydpi-v26/ic_launcher.xml", icon),
		TextFile(resDir+"/mipmap-anydpi-v26/ic_launcher_round.xml", icon),
	}
}

func drawableFiles(_ Config, r *templates.Renderer) []File {
	return []File{
		render(r, resDir+"/drawable/ic_launcher_background.xml", templates.LauncherBackground),
		render(r, resDir+"/drawable/ic_launcher_foreground.xml", templates.LauncherForeground),
	}
}
