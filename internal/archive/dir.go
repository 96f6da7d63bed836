package archive

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/droidcraft/internal/errors"
	"github.com/opmodel/droidcraft/internal/project"
)

// ErrPathTraversal is returned for a file path that is absolute or escapes
// the target directory.
var ErrPathTraversal = errors.New("path escapes target directory")

// ErrDirNotEmpty is returned when the target directory has content and
// DirOptions.Force is not set.
var ErrDirNotEmpty = errors.New("directory is not empty")

// DirOptions controls how WriteDir treats the target directory.
type DirOptions struct {
	// Force allows writing into a non-empty directory, overwriting files.
	Force bool
}

// DirResult reports what WriteDir wrote.
type DirResult struct {
	// Dir is the absolute target directory.
	Dir string

	// Files are the written paths, relative to Dir, in structure order.
	Files []string

	// Created reports whether WriteDir created Dir.
	Created bool
}

// checkPath rejects absolute paths and paths with ".." segments.
func checkPath(p string) error {
	if p == "" || strings.HasPrefix(p, "/") || filepath.IsAbs(p) {
		return fmt.Errorf("%q: %w", p, ErrPathTraversal)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("%q: %w", p, ErrPathTraversal)
		}
	}
	if cleaned := path.Clean(p); cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%q: %w", p, ErrPathTraversal)
	}
	return nil
}

// WriteDir writes every file of s under dir. A directory created by WriteDir
// is removed again when writing fails.
func WriteDir(dir string, s project.Structure, opts DirOptions) (*DirResult, error) {
	for _, f := range s.Files {
		if err := checkPath(f.Path); err != nil {
			return nil, err
		}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	created := false
	entries, err := os.ReadDir(absDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		created = true
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", absDir, err)
	case len(entries) > 0 && !opts.Force:
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("directory is not empty: %s", absDir),
			Location: absDir,
			Hint:     "Choose a different directory or pass --force to overwrite.",
			Cause:    errors.Join(oerrors.ErrValidation, ErrDirNotEmpty),
		}
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", absDir, err)
	}

	result := &DirResult{Dir: absDir, Created: created}
	for _, f := range s.Files {
		if err := writeFile(absDir, f); err != nil {
			if created {
				_ = os.RemoveAll(absDir)
			}
			return nil, err
		}
		result.Files = append(result.Files, f.Path)
	}
	return result, nil
}

func writeFile(root string, f project.File) error {
	target := filepath.Join(root, filepath.FromSlash(f.Path))

	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%q: %w", f.Path, ErrPathTraversal)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(target, f.Content.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}
