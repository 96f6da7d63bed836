package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names := renderableNames()
	assert.Len(t, names, 28)
	assert.Contains(t, names, string(VersionCatalog))
	assert.Contains(t, names, string(Manifest))
	assert.NotContains(t, names, string(pluginManagementFile))
	assert.IsIncreasing(t, names)
}

func TestEveryNamedConstantIsEmbedded(t *testing.T) {
	all := []TemplateName{
		RootBuildKts, RootBuildGroovy, SettingsKts, SettingsGroovy,
		AppBuildKts, AppBuildGroovy, VersionCatalog, Manifest,
		MainActivityCompose, MainActivityViews, ThemeKt, ColorKt, TypeKt,
		Application, ItemModel, ItemRepository, MainViewModel, Readme,
		GradleProperties, Strings, Colors, Themes, ActivityLayout,
		DataExtractionRules, BackupRules, AdaptiveIcon,
		LauncherBackground, LauncherForeground,
	}
	for _, name := range all {
		t.Run(string(name), func(t *testing.T) {
			assert.Contains(t, renderableNames(), string(name))
			src, err := source(name)
			require.NoError(t, err)
			assert.NotEmpty(t, src)
		})
	}
}

func TestSourceUnknown(t *testing.T) {
	_, err := source("missing.tmpl")
	assert.Error(t, err)
}

func TestSettingsIncludesPluginManagement(t *testing.T) {
	r := NewRenderer(map[string]any{"ProjectName": "Demo"})

	kts, err := r.Render(SettingsKts)
	require.NoError(t, err)
	groovy, err := r.Render(SettingsGroovy)
	require.NoError(t, err)

	for _, out := range []string{kts, groovy} {
		assert.True(t, strings.HasPrefix(out, "pluginManagement {"))
		assert.Contains(t, out, "FAIL_ON_PROJECT_REPOS")
		assert.Contains(t, out, "Demo")
	}
	assert.Contains(t, kts, `rootProject.name = "Demo"`)
	assert.Contains(t, groovy, `rootProject.name = 'Demo'`)
}
