// Package project holds the Android project configuration model and the
// generator that turns a configuration into a project file structure.
package project

// Architecture selects the architectural pattern described in the readme.
type Architecture string

// Architecture values.
const (
	ArchitectureMVVM   Architecture = "mvvm"
	ArchitectureClean  Architecture = "clean"
	ArchitectureMVI    Architecture = "mvi"
	ArchitectureMVP    Architecture = "mvp"
	ArchitectureSimple Architecture = "simple"
)

// UIToolkit selects the UI toolkit used by the entry-point activity.
type UIToolkit string

// UIToolkit values.
const (
	UICompose UIToolkit = "compose"
	UIXML     UIToolkit = "xml"
)

// Networking selects the HTTP client library.
type Networking string

// Networking values.
const (
	NetworkingRetrofit Networking = "retrofit"
	NetworkingKtor     Networking = "ktor"
	NetworkingNone     Networking = "none"
)

// Database selects the persistence library.
type Database string

// Database values.
const (
	DatabaseRoom       Database = "room"
	DatabaseRealm      Database = "realm"
	DatabaseSQLDelight Database = "sqldelight"
	DatabaseNone       Database = "none"
)

// DI selects the dependency injection framework.
type DI string

// DI values.
const (
	DIHilt DI = "hilt"
	DIKoin DI = "koin"
	DINone DI = "none"
)

// ImageLoading selects the image loading library.
type ImageLoading string

// ImageLoading values.
const (
	ImageLoadingGlide ImageLoading = "glide"
	ImageLoadingCoil  ImageLoading = "coil"
	ImageLoadingNone  ImageLoading = "none"
)

// Async selects the asynchronous programming library.
type Async string

// Async values.
const (
	AsyncCoroutines Async = "coroutines"
	AsyncRxJava     Async = "rxjava"
	AsyncNone       Async = "none"
)

// Default field values.
const (
	DefaultProjectName      = "MyAndroidApp"
	DefaultPackageName      = "com.example.myandroidapp"
	DefaultMinSdkVersion    = 21
	DefaultTargetSdkVersion = 34
)

// Config is the full set of user choices driving generation.
// It is consumed by value; Generate never mutates it.
type Config struct {
	ProjectName      string       `json:"projectName" yaml:"projectName" validate:"required,android_project"`
	PackageName      string       `json:"packageName" yaml:"packageName" validate:"required,android_package"`
	MinSdkVersion    int          `json:"minSdkVersion" yaml:"minSdkVersion" validate:"min=16,max=34"`
	TargetSdkVersion int          `json:"targetSdkVersion" yaml:"targetSdkVersion" validate:"min=21,max=34"`
	Architecture     Architecture `json:"architecture" yaml:"architecture" validate:"oneof=mvvm clean mvi mvp simple"`
	UI               UIToolkit    `json:"ui" yaml:"ui" validate:"oneof=compose xml"`
	Networking       Networking   `json:"networking" yaml:"networking" validate:"oneof=retrofit ktor none"`
	Database         Database     `json:"database" yaml:"database" validate:"oneof=room realm sqldelight none"`
	DI               DI           `json:"di" yaml:"di" validate:"oneof=hilt koin none"`
	ImageLoading     ImageLoading `json:"imageLoading" yaml:"imageLoading" validate:"oneof=glide coil none"`
	Async            Async        `json:"async" yaml:"async" validate:"oneof=coroutines rxjava none"`
	UseKotlinDsl     bool         `json:"useKotlinDsl" yaml:"useKotlinDsl"`
}

// DefaultConfig returns the configuration the wizard starts from.
func DefaultConfig() Config {
	return Config{
		ProjectName:      DefaultProjectName,
		PackageName:      DefaultPackageName,
		MinSdkVersion:    DefaultMinSdkVersion,
		TargetSdkVersion: DefaultTargetSdkVersion,
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

// ThemeName returns the sanitized project name used in style and theme identifiers.
func (c Config) ThemeName() string {
	return SanitizeIdentifier(c.ProjectName)
}

// SourceDir returns the Kotlin source root for the configured package.
func (c Config) SourceDir() string {
	return joinPath("app/src/main/java", PackagePath(c.PackageName))
}

// NeedsKapt reports whether a selected library requires annotation processing.
func (c Config) NeedsKapt() bool {
	return c.DI == DIHilt || c.Database == DatabaseRoom
}

// Architectures returns every architecture value.
func Architectures() []Architecture {
	return []Architecture{ArchitectureMVVM, ArchitectureClean, ArchitectureMVI, ArchitectureMVP, ArchitectureSimple}
}

// UIToolkits returns every UI toolkit value.
func UIToolkits() []UIToolkit {
	return []UIToolkit{UICompose, UIXML}
}

// NetworkingOptions returns every networking value.
func NetworkingOptions() []Networking {
	return []Networking{NetworkingRetrofit, NetworkingKtor, NetworkingNone}
}

// DatabaseOptions returns every database value.
func DatabaseOptions() []Database {
	return []Database{DatabaseRoom, DatabaseRealm, DatabaseSQLDelight, DatabaseNone}
}

// DIOptions returns every dependency injection value.
func DIOptions() []DI {
	return []DI{DIHilt, DIKoin, DINone}
}

// ImageLoadingOptions returns every image loading value.
func ImageLoadingOptions() []ImageLoading {
	return []ImageLoading{ImageLoadingGlide, ImageLoadingCoil, ImageLoadingNone}
}

// AsyncOptions returns every async value.
func AsyncOptions() []Async {
	return []Async{AsyncCoroutines, AsyncRxJava, AsyncNone}
}
