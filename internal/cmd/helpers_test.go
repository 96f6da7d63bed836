package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/opmodel/droidcraft/internal/output"
)

// runCLI executes the root command with args in an isolated home and
// returns what the command printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DROIDCRAFT_CONFIG", filepath.Join(home, ".droidcraft", "config.yaml"))
	t.Setenv("DROIDCRAFT_PRESET", "")

	prevPrompt := canPrompt
	canPrompt = func() bool { return false }
	t.Cleanup(func() { canPrompt = prevPrompt })

	var buf bytes.Buffer
	prev := output.SetOutput(&buf)
	t.Cleanup(func() { output.SetOutput(prev) })

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return buf.String(), err
}
