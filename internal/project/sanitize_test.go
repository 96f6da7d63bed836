package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My App!", "MyApp"},
		{"Demo", "Demo"},
		{"my_app_2", "myapp2"},
		{"Café", "Caf"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeIdentifier(tt.in))
		})
	}
}

func TestPackagePath(t *testing.T) {
	assert.Equal(t, "com/example/myapp", PackagePath("com.example.myapp"))
	assert.Equal(t, "app", PackagePath("app"))
	assert.Equal(t, "", PackagePath(""))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "app/src/main/java/a/b", joinPath("app/src/main/java", "/a//b/"))
	assert.Equal(t, "x", joinPath("", "x", ""))
}

func TestConfigHelpers(t *testing.T) {
	c := demoConfig()
	assert.Equal(t, "Demo", c.ThemeName())
	assert.Equal(t, "app/src/main/java/com/demo/app", c.SourceDir())
	assert.True(t, c.NeedsKapt())
}

func TestDerivePackageName(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"com.example", "My App", "com.example.myapp"},
		{"com.example", "MyAndroidApp", "com.example.myandroidapp"},
		{"", "Demo", "com.example.demo"},
		{" Org.Acme. ", "Shop_2", "org.acme.shop2"},
		{"com.example", "!!!", "com.example.app"},
		{"com.example", "2048", "com.example.app2048"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePackageName(tt.prefix, tt.name)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, ValidateField("packageName", got))
		})
	}
}
