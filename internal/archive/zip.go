// Package archive packages a generated project structure as a zip archive or
// as files on disk.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/opmodel/droidcraft/internal/project"
)

// DefaultModified is the timestamp stamped on every zip entry when
// ZipOptions.Modified is zero.
var DefaultModified = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// ZipOptions controls archive layout.
type ZipOptions struct {
	// Root nests every entry under Root/ when set.
	Root string

	// Modified is the modification time of every entry.
	Modified time.Time
}

// ArchiveName returns the download file name for a configuration.
func ArchiveName(cfg project.Config) string {
	return cfg.ProjectName + ".zip"
}

// WriteZip writes one entry per file of s, in structure order. Text is stored
// as UTF-8 and binary content as raw bytes. Identical structures produce
// identical archives.
func WriteZip(w io.Writer, s project.Structure, opts ZipOptions) error {
	modified := opts.Modified
	if modified.IsZero() {
		modified = DefaultModified
	}

	zw := zip.NewWriter(w)
	for _, f := range s.Files {
		if err := checkPath(f.Path); err != nil {
			return err
		}

		name := f.Path
		if opts.Root != "" {
			name = path.Join(opts.Root, f.Path)
		}

		hdr := &zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modified,
		}
		hdr.SetMode(0o644)

		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("creating zip entry %s: %w", name, err)
		}
		if _, err := fw.Write(f.Content.Bytes()); err != nil {
			return fmt.Errorf("writing zip entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing zip archive: %w", err)
	}
	return nil
}

// WriteZipFile writes the archive to dest through a temporary file in the
// same directory, so a failed write never leaves a partial archive at dest.
func WriteZipFile(dest string, s project.Structure, opts ZipOptions) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".droidcraft-*.zip")
	if err != nil {
		return fmt.Errorf("creating temporary archive: %w", err)
	}
	tmpName := tmp.Name()

	if err := WriteZip(tmp, s, opts); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temporary archive: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("setting archive permissions: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("moving archive into place: %w", err)
	}
	return nil
}
