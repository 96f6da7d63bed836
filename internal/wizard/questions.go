package wizard

import (
	"strconv"

	"github.com/opmodel/droidcraft/internal/project"
)

var steps = []Step{
	{Title: "Project Settings", Description: "Name, package and SDK levels"},
	{Title: "MVVM Architecture", Description: "Model, View, ViewModel with a repository layer"},
	{Title: "Libraries", Description: "UI toolkit and supporting libraries"},
	{Title: "Features", Description: "Build configuration"},
	{Title: "Generate", Description: "Create the project"},
}

// Steps returns the wizard steps in order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Questions returns the wizard questions in order, with defaults taken from
// base. The package default is derived from the project name entered so far
// using prefix.
func Questions(base project.Config, prefix string) []Question {
	return []Question{
		{
			ID:          "projectName",
			Step:        0,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Letters, numbers and underscores, starting with a letter",
			Default:     base.ProjectName,
		},
		{
			ID:          "packageName",
			Step:        0,
			Type:        QuestionTypeInput,
			Title:       "Package name",
			Description: "Reverse-domain application ID, e.g. com.example.myapp",
			DefaultFunc: func(c project.Config) string {
				return project.DerivePackageName(prefix, c.ProjectName)
			},
		},
		{
			ID:          "minSdkVersion",
			Step:        0,
			Type:        QuestionTypeInput,
			Title:       "Minimum SDK",
			Description: "Lowest Android API level supported (16-34)",
			Default:     strconv.Itoa(base.MinSdkVersion),
		},
		{
			ID:          "targetSdkVersion",
			Step:        0,
			Type:        QuestionTypeInput,
			Title:       "Target SDK",
			Description: "API level the app is tested against (21-34)",
			Default:     strconv.Itoa(base.TargetSdkVersion),
		},
		{
			ID:          IDArchitecture,
			Step:        1,
			Type:        QuestionTypeConfirm,
			Title:       "Use MVVM architecture?",
			Description: project.ArchitectureDetail(project.ArchitectureMVVM),
			Default:     "true",
		},
		selectQuestion("ui", "UI toolkit", string(base.UI), enumOptions(project.UIToolkits())),
		selectQuestion("networking", "Networking", string(base.Networking), enumOptions(project.NetworkingOptions())),
		selectQuestion("database", "Database", string(base.Database), enumOptions(project.DatabaseOptions())),
		selectQuestion("di", "Dependency injection", string(base.DI), enumOptions(project.DIOptions())),
		selectQuestion("imageLoading", "Image loading", string(base.ImageLoading), enumOptions(project.ImageLoadingOptions())),
		selectQuestion("async", "Async", string(base.Async), enumOptions(project.AsyncOptions())),
		{
			ID:    IDBuildDsl,
			Step:  3,
			Type:  QuestionTypeSelect,
			Title: "Build script language",
			Options: []Option{
				{Label: "Kotlin DSL", Value: DslKotlin, Desc: "build.gradle.kts with a version catalog"},
				{Label: "Groovy", Value: DslGroovy, Desc: "build.gradle"},
			},
			Default: dslAnswer(base.UseKotlinDsl),
		},
		{
			ID:      IDGenerate,
			Step:    4,
			Type:    QuestionTypeConfirm,
			Title:   "Generate project?",
			Default: "true",
		},
	}
}

func selectQuestion(id, title, def string, opts []Option) Question {
	return Question{
		ID:      id,
		Step:    2,
		Type:    QuestionTypeSelect,
		Title:   title,
		Options: opts,
		Default: def,
	}
}

func enumOptions[T ~string](values []T) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Label: optionLabels[string(v)], Value: string(v)}
		if opts[i].Label == "" {
			opts[i].Label = string(v)
		}
	}
	return opts
}

var optionLabels = map[string]string{
	"compose":    "Jetpack Compose",
	"xml":        "XML views",
	"retrofit":   "Retrofit",
	"ktor":       "Ktor",
	"room":       "Room",
	"realm":      "Realm",
	"sqldelight": "SQLDelight",
	"hilt":       "Hilt",
	"koin":       "Koin",
	"glide":      "Glide",
	"coil":       "Coil",
	"coroutines": "Coroutines",
	"rxjava":     "RxJava",
	"none":       "None",
}

func dslAnswer(kotlin bool) string {
	if kotlin {
		return DslKotlin
	}
	return DslGroovy
}
