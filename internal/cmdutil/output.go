package cmdutil

import (
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/opmodel/droidcraft/internal/errors"
	"github.com/opmodel/droidcraft/internal/output"
	"github.com/opmodel/droidcraft/internal/project"
)

// ValidationFailure converts a project.Validate error into an ExitError with
// exit code 2. The message lists one failing field per line.
func ValidationFailure(err error) *oerrors.ExitError {
	var verrs project.ValidationErrors
	if !errors.As(err, &verrs) {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	lines := make([]string, len(verrs))
	for i, fe := range verrs {
		lines[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}

	return oerrors.NewExitError(&oerrors.DetailError{
		Type:    "validation failed",
		Message: strings.Join(lines, "\n"),
		Field:   strings.Join(verrs.Fields(), ", "),
		Hint:    "Fix the listed fields with flags or run the interactive wizard.",
		Cause:   err,
	}, oerrors.ExitValidationError)
}

// FileEntries returns display entries for the structure's files, grouped by
// top directory and described by file type.
func FileEntries(s project.Structure) []output.FileEntry {
	paths := project.SortForDisplay(s.Paths())
	entries := make([]output.FileEntry, len(paths))
	for i, p := range paths {
		entries[i] = output.FileEntry{Path: p, Description: project.Describe(p)}
	}
	return entries
}

// FileTree renders the structure as a tree rooted at rootName.
func FileTree(rootName string, s project.Structure) string {
	return output.RenderFileTree(rootName, FileEntries(s))
}

// SummaryRows returns the configuration as key/value rows for a table.
func SummaryRows(c project.Config) [][2]string {
	dsl := "Kotlin DSL"
	if !c.UseKotlinDsl {
		dsl = "Groovy"
	}
	return [][2]string{
		{"Project", c.ProjectName},
		{"Package", c.PackageName},
		{"SDK", fmt.Sprintf("min %d, target %d, compile %d", c.MinSdkVersion, c.TargetSdkVersion, project.CompileSdk)},
		{"Architecture", string(c.Architecture)},
		{"UI", string(c.UI)},
		{"Networking", string(c.Networking)},
		{"Database", string(c.Database)},
		{"DI", string(c.DI)},
		{"Image loading", string(c.ImageLoading)},
		{"Async", string(c.Async)},
		{"Build scripts", dsl},
	}
}
