package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoConfig() Config {
	return Config{
		ProjectName:      "Demo",
		PackageName:      "com.demo.app",
		MinSdkVersion:    21,
		TargetSdkVersion: 34,
		Architecture:     ArchitectureMVVM,
		UI:               UICompose,
		Networking:       NetworkingRetrofit,
		Database:         DatabaseRoom,
		DI:               DIHilt,
		ImageLoading:     ImageLoadingCoil,
		Async:            AsyncCoroutines,
		UseKotlinDsl:     true,
	}
}

// allConfigs returns every library and dialect combination on top of base.
func allConfigs(base Config) []Config {
	var out []Config
	for _, ui := range UIToolkits() {
		for _, n := range NetworkingOptions() {
			for _, db := range DatabaseOptions() {
				for _, di := range DIOptions() {
					for _, img := range ImageLoadingOptions() {
						for _, a := range AsyncOptions() {
							for _, kts := range []bool{true, false} {
								c := base
								c.UI, c.Networking, c.Database, c.DI = ui, n, db, di
								c.ImageLoading, c.Async, c.UseKotlinDsl = img, a, kts
								out = append(out, c)
							}
						}
					}
				}
			}
		}
	}
	return out
}

func fileText(t *testing.T, s Structure, path string) string {
	t.Helper()
	f, ok := s.Lookup(path)
	require.True(t, ok, "missing %s", path)
	require.False(t, f.Content.IsBinary(), "%s is binary", path)
	return f.Content.String()
}

func TestGenerateEndToEndDemo(t *testing.T) {
	s := Generate(demoConfig())

	for _, p := range []string{
		"build.gradle.kts",
		"settings.gradle.kts",
		"app/build.gradle.kts",
		"gradle/libs.versions.toml",
		"app/src/main/AndroidManifest.xml",
		"app/src/main/java/com/demo/app/MainActivity.kt",
		"app/src/main/java/com/demo/app/ui/theme/Theme.kt",
		"app/src/main/java/com/demo/app/ui/theme/Color.kt",
		"app/src/main/java/com/demo/app/ui/theme/Type.kt",
		"app/src/main/java/com/demo/app/MyApplication.kt",
		"app/src/main/java/com/demo/app/data/model/Item.kt",
		"app/src/main/java/com/demo/app/data/repository/ItemRepository.kt",
		"app/src/main/java/com/demo/app/ui/viewmodel/MainViewModel.kt",
		"README.md",
	} {
		_, ok := s.Lookup(p)
		assert.True(t, ok, "missing %s", p)
	}

	manifest := fileText(t, s, "app/src/main/AndroidManifest.xml")
	assert.Contains(t, manifest, `<uses-permission android:name="android.permission.INTERNET" />`)
	assert.Contains(t, manifest, `android:theme="@style/Theme.Demo"`)

	app := fileText(t, s, "app/build.gradle.kts")
	assert.Contains(t, app, `id("kotlin-kapt")`)
	assert.Contains(t, app, "alias(libs.plugins.hilt)")
	assert.Contains(t, app, "implementation(libs.retrofit)")
	assert.Contains(t, app, "kapt(libs.room.compiler)")
	assert.Contains(t, app, "kapt(libs.hilt.compiler)")
	assert.Contains(t, app, "implementation(platform(libs.androidx.compose.bom))")
	assert.Contains(t, app, "compileSdk = 35")
	assert.Contains(t, app, "targetSdk = 34")

	assert.Contains(t, fileText(t, s, "app/src/main/java/com/demo/app/MyApplication.kt"), "@HiltAndroidApp")
	assert.Contains(t, fileText(t, s, "app/src/main/java/com/demo/app/MainActivity.kt"), "@AndroidEntryPoint")
	assert.Contains(t, fileText(t, s, "app/src/main/java/com/demo/app/ui/viewmodel/MainViewModel.kt"),
		"class MainViewModel @Inject constructor(\n    private val itemRepository: ItemRepository")
}

func TestGenerateOrder(t *testing.T) {
	paths := Generate(demoConfig()).Paths()

	require.GreaterOrEqual(t, len(paths), 14)
	assert.Equal(t, []string{
		"build.gradle.kts",
		"settings.gradle.kts",
		"app/build.gradle.kts",
		"gradle/libs.versions.toml",
		"app/src/main/AndroidManifest.xml",
		"app/src/main/java/com/demo/app/MainActivity.kt",
	}, paths[:6])
	assert.Equal(t, "app/src/main/res/mipmap-xxxhdpi/ic_launcher_round.webp", paths[len(paths)-1])
}

func TestGenerateAllCombinations(t *testing.T) {
	for _, c := range allConfigs(demoConfig()) {
		s := Generate(c)
		require.NotZero(t, s.Len())

		seen := make(map[string]bool, s.Len())
		for _, f := range s.Files {
			require.False(t, seen[f.Path], "duplicate path %s for %+v", f.Path, c)
			seen[f.Path] = true

			assert.False(t, strings.HasPrefix(f.Path, "/"), f.Path)
			assert.NotContains(t, strings.Split(f.Path, "/"), "..", f.Path)
			assert.NotContains(t, f.Path, "//", f.Path)
			if !f.Content.IsBinary() {
				assert.True(t, strings.HasSuffix(f.Content.String(), "\n"), "%s lacks trailing newline", f.Path)
			}
		}

		if c.UseKotlinDsl {
			_, err := ParseCatalog(fileText(t, s, "gradle/libs.versions.toml"))
			require.NoError(t, err, "catalog for %+v", c)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, c := range []Config{demoConfig(), DefaultConfig(), {}} {
		assert.Equal(t, Generate(c), Generate(c))
	}
}

func TestGenerateDoesNotMutateConfig(t *testing.T) {
	c := demoConfig()
	before := c
	Generate(c)
	assert.Equal(t, before, c)
}

func TestDialectSelectsExactlyOneBuildSet(t *testing.T) {
	kts := []string{"build.gradle.kts", "settings.gradle.kts", "app/build.gradle.kts", "gradle/libs.versions.toml"}
	groovy := []string{"build.gradle", "settings.gradle", "app/build.gradle"}

	for _, useKts := range []bool{true, false} {
		c := demoConfig()
		c.UseKotlinDsl = useKts
		s := Generate(c)

		for _, p := range kts {
			_, ok := s.Lookup(p)
			assert.Equal(t, useKts, ok, p)
		}
		for _, p := range groovy {
			_, ok := s.Lookup(p)
			assert.Equal(t, !useKts, ok, p)
		}
	}
}

func TestGroovyBuildInlinesCoordinates(t *testing.T) {
	c := demoConfig()
	c.UseKotlinDsl = false
	s := Generate(c)

	app := fileText(t, s, "app/build.gradle")
	assert.Contains(t, app, "id 'kotlin-kapt'")
	assert.Contains(t, app, "implementation 'com.squareup.retrofit2:retrofit:2.9.0'")
	assert.Contains(t, app, "implementation platform('androidx.compose:compose-bom:2024.09.00')")
	assert.Contains(t, app, "implementation 'androidx.compose.ui:ui'")
	assert.Contains(t, app, "kapt 'com.google.dagger:hilt-android-compiler:2.48'")

	root := fileText(t, s, "build.gradle")
	assert.Contains(t, root, "id 'com.google.dagger.hilt.android' version '2.48' apply false")
	assert.Contains(t, fileText(t, s, "settings.gradle"), "include ':app'")
}

func TestKaptOnlyWithAnnotationProcessors(t *testing.T) {
	tests := []struct {
		name string
		di   DI
		db   Database
		want bool
	}{
		{"hilt and room", DIHilt, DatabaseRoom, true},
		{"hilt only", DIHilt, DatabaseNone, true},
		{"room only", DINone, DatabaseRoom, true},
		{"koin and realm", DIKoin, DatabaseRealm, false},
		{"none", DINone, DatabaseNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := demoConfig()
			c.DI, c.Database = tt.di, tt.db
			app := fileText(t, Generate(c), "app/build.gradle.kts")
			assert.Equal(t, tt.want, strings.Contains(app, `id("kotlin-kapt")`))
		})
	}
}

func TestLibraryPluginsAppearEverywhere(t *testing.T) {
	tests := []struct {
		name     string
		db       Database
		alias    string
		pluginID string
	}{
		{"realm", DatabaseRealm, "libs.plugins.realm", "io.realm.kotlin"},
		{"sqldelight", DatabaseSQLDelight, "libs.plugins.sqldelight", "app.cash.sqldelight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := demoConfig()
			c.Database = tt.db
			s := Generate(c)

			assert.Contains(t, fileText(t, s, "build.gradle.kts"), "alias("+tt.alias+") apply false")
			assert.Contains(t, fileText(t, s, "app/build.gradle.kts"), "alias("+tt.alias+")")
			assert.Contains(t, fileText(t, s, "gradle/libs.versions.toml"), tt.pluginID)
		})
	}
}

func TestInternetPermissionFollowsNetworking(t *testing.T) {
	for _, n := range NetworkingOptions() {
		t.Run(string(n), func(t *testing.T) {
			c := demoConfig()
			c.Networking = n
			manifest := fileText(t, Generate(c), "app/src/main/AndroidManifest.xml")
			assert.Equal(t, n != NetworkingNone, strings.Contains(manifest, "android.permission.INTERNET"))
		})
	}
}

func TestSanitizedNameUsedConsistently(t *testing.T) {
	c := demoConfig()
	c.ProjectName = "My App!"
	s := Generate(c)
	src := "app/src/main/java/com/demo/app/"

	assert.Contains(t, fileText(t, s, "app/src/main/AndroidManifest.xml"), "@style/Theme.MyApp")
	assert.Contains(t, fileText(t, s, "app/src/main/res/values/themes.xml"), `<style name="Theme.MyApp"`)
	assert.Contains(t, fileText(t, s, src+"ui/theme/Theme.kt"), "fun MyAppTheme(")
	assert.Contains(t, fileText(t, s, src+"MainActivity.kt"), "MyAppTheme {")
	assert.Contains(t, fileText(t, s, "app/src/main/res/values/strings.xml"), "My App!")
	assert.Contains(t, fileText(t, s, "settings.gradle.kts"), `rootProject.name = "My App!"`)
}

func TestGradleStringsAreEscaped(t *testing.T) {
	tests := []struct {
		name     string
		kotlin   bool
		project  string
		settings string
		want     string
	}{
		{name: "kotlin dsl", kotlin: true, project: `Say "$hi"`, settings: "settings.gradle.kts",
			want: `rootProject.name = "Say \"\$hi\""`},
		{name: "groovy dsl", kotlin: false, project: `Bob's \ App`, settings: "settings.gradle",
			want: `rootProject.name = 'Bob\'s \\ App'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := demoConfig()
			c.ProjectName = tt.project
			c.UseKotlinDsl = tt.kotlin
			s := Generate(c)

			assert.Contains(t, fileText(t, s, tt.settings), tt.want)
		})
	}
}

func TestGroovyPackageQuoting(t *testing.T) {
	c := demoConfig()
	c.UseKotlinDsl = false
	c.PackageName = "com.o'neil.app"
	app := fileText(t, Generate(c), "app/build.gradle")

	assert.Contains(t, app, `namespace 'com.o\'neil.app'`)
	assert.Contains(t, app, `applicationId 'com.o\'neil.app'`)
}

func TestPackagePathUsedInEverySourcePath(t *testing.T) {
	c := demoConfig()
	c.PackageName = "com.example.myapp"

	for _, p := range Generate(c).Paths() {
		if strings.HasPrefix(p, "app/src/main/java/") {
			assert.True(t, strings.HasPrefix(p, "app/src/main/java/com/example/myapp/"), p)
		}
	}
}

func TestXMLToolkit(t *testing.T) {
	c := demoConfig()
	c.UI = UIXML
	s := Generate(c)

	activity := fileText(t, s, "app/src/main/java/com/demo/app/MainActivity.kt")
	assert.Contains(t, activity, "AppCompatActivity")
	assert.Contains(t, activity, "ActivityMainBinding")
	assert.NotContains(t, activity, "setContent {")

	assert.Contains(t, fileText(t, s, "app/src/main/res/layout/activity_main.xml"), "ConstraintLayout")
	assert.Contains(t, fileText(t, s, "app/src/main/res/values/strings.xml"), "hello_android")
	assert.Contains(t, fileText(t, s, "app/build.gradle.kts"), "viewBinding = true")

	_, ok := Generate(demoConfig()).Lookup("app/src/main/res/layout/activity_main.xml")
	assert.False(t, ok, "compose projects have no layout")
}

func TestDependencyInjectionVariants(t *testing.T) {
	src := "app/src/main/java/com/demo/app/"

	c := demoConfig()
	c.DI = DIKoin
	s := Generate(c)
	application := fileText(t, s, src+"MyApplication.kt")
	assert.Contains(t, application, "startKoin {")
	assert.Contains(t, application, "viewModel { MainViewModel(get()) }")
	assert.NotContains(t, application, "@HiltAndroidApp")
	assert.Contains(t, fileText(t, s, src+"data/repository/ItemRepository.kt"), "class ItemRepository {")

	c.DI = DINone
	s = Generate(c)
	application = fileText(t, s, src+"MyApplication.kt")
	assert.Contains(t, application, "class MyApplication : Application() {")
	assert.NotContains(t, application, "startKoin")
	assert.NotContains(t, fileText(t, s, src+"ui/viewmodel/MainViewModel.kt"), "@HiltViewModel")
}

func TestIconsAreBinary(t *testing.T) {
	s := Generate(demoConfig())
	icon := LauncherIcon()

	var n int
	for _, f := range s.Files {
		if !f.Content.IsBinary() {
			continue
		}
		n++
		assert.True(t, strings.HasSuffix(f.Path, ".webp"), f.Path)
		assert.Equal(t, icon, f.Content.Bytes())
	}
	assert.Equal(t, 10, n)
	assert.Equal(t, []byte("\x89PNG"), icon[:4])
}

func TestGenerateIsTotal(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "zero config", cfg: Config{}, want: "app/src/main/java/MainActivity.kt"},
		{name: "unknown enums", cfg: Config{
			ProjectName: "X", PackageName: "a.b", Architecture: "hexagonal", UI: "flutter",
			Networking: "grpc", Database: "mongo", DI: "dagger", ImageLoading: "fresco", Async: "flow",
		}, want: "app/src/main/java/a/b/MainActivity.kt"},
		{name: "dotted garbage", cfg: Config{PackageName: ".a..b."}, want: "app/src/main/java/a/b/MainActivity.kt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Structure
			require.NotPanics(t, func() { s = Generate(tt.cfg) })
			_, ok := s.Lookup(tt.want)
			assert.True(t, ok)
		})
	}
}

func TestUnknownNetworkingContributesNoLibrary(t *testing.T) {
	c := demoConfig()
	c.Networking = "volley"
	s := Generate(c)

	assert.Contains(t, fileText(t, s, "app/src/main/AndroidManifest.xml"), "android.permission.INTERNET")
	assert.NotContains(t, fileText(t, s, "app/build.gradle.kts"), "retrofit")
	assert.NotContains(t, fileText(t, s, "app/build.gradle.kts"), "ktor")
}
