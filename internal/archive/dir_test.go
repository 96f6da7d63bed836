package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/droidcraft/internal/errors"
	"github.com/opmodel/droidcraft/internal/project"
	"github.com/opmodel/droidcraft/internal/testutil"
)

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Demo")
	s := demoStructure()

	result, err := WriteDir(dir, s, DirOptions{})
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, s.Paths(), result.Files)

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# Demo")

	icon, err := os.ReadFile(filepath.Join(dir, "app/src/main/res/mipmap-hdpi/ic_launcher.webp"))
	require.NoError(t, err)
	assert.Equal(t, project.LauncherIcon(), icon)
}

func TestWriteDirRefusesNonEmpty(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFile(t, dir, "keep.txt", "keep")

	_, err := WriteDir(dir, demoStructure(), DirOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirNotEmpty))
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	_, err = os.Stat(filepath.Join(dir, "keep.txt"))
	assert.NoError(t, err, "existing content untouched")
}

func TestWriteDirForce(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFile(t, dir, "README.md", "old")

	result, err := WriteDir(dir, demoStructure(), DirOptions{Force: true})
	require.NoError(t, err)
	assert.False(t, result.Created)

	assert.NotEqual(t, "old", testutil.ReadFile(t, filepath.Join(dir, "README.md")))
	assert.Contains(t, testutil.ListFiles(t, dir), "gradle/libs.versions.toml")
}

func TestWriteDirRejectsTraversal(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"parent segment", "../escape.txt"},
		{"nested parent", "app/../../escape.txt"},
		{"absolute", "/tmp/escape.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			dir := filepath.Join(root, "out")
			s := project.Structure{Files: []project.File{
				project.TextFile("README.md", "ok\n"),
				project.TextFile(tt.path, "bad"),
			}}

			_, err := WriteDir(dir, s, DirOptions{})
			assert.True(t, errors.Is(err, ErrPathTraversal))

			_, statErr := os.Stat(dir)
			assert.True(t, os.IsNotExist(statErr), "nothing written before rejection")
			_, statErr = os.Stat(filepath.Join(root, "escape.txt"))
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestWriteDirCleansUpCreatedDirOnFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Demo")
	s := project.Structure{Files: []project.File{
		project.TextFile("a/file.txt", "x"),
		// A file cannot also be a directory.
		project.TextFile("a/file.txt/child.txt", "y"),
	}}

	_, err := WriteDir(dir, s, DirOptions{})
	require.Error(t, err)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
