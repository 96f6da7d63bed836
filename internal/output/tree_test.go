package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree(t *testing.T) {
	entries := []FileEntry{
		{Path: "README.md", Description: "Project readme"},
		{Path: "app/build.gradle.kts", Description: "App module build script"},
		{Path: "app/src/main/AndroidManifest.xml", Description: "Application manifest"},
		{Path: "build.gradle.kts", Description: "Root build script"},
	}

	out := stripAnsi(RenderFileTree("Demo", entries))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 8)
	assert.Equal(t, "Demo/", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "├── app/"), "directories first")
	assert.Equal(t, "│   ├── src/", lines[2])
	assert.True(t, strings.HasPrefix(lines[5], "│   └── build.gradle.kts"))
	assert.True(t, strings.HasPrefix(lines[6], "├── README.md"))
	assert.True(t, strings.HasPrefix(lines[7], "└── build.gradle.kts"))

	for _, l := range lines {
		if i := strings.Index(l, "Root build script"); i >= 0 {
			assert.Equal(t, DescriptionColumn, len([]rune(l[:i])), "description aligned at column")
		}
	}
}

func TestRenderFileTreeEmpty(t *testing.T) {
	assert.Empty(t, RenderFileTree("Demo", nil))
}

func TestBuildTree(t *testing.T) {
	root := BuildTree("x", []FileEntry{
		{Path: "b.txt"},
		{Path: "a/c.txt"},
		{Path: "/a/d.txt/"},
	})

	require.Len(t, root.Children, 2)
	assert.Equal(t, "a", root.Children[0].Name)
	assert.True(t, root.Children[0].IsDir)
	assert.Len(t, root.Children[0].Children, 2)
	assert.Equal(t, "b.txt", root.Children[1].Name)
}
