package project

import (
	"encoding/base64"
)

// ContentKind distinguishes text from binary file content.
type ContentKind string

const (
	// KindText is UTF-8 text content.
	KindText ContentKind = "text"

	// KindBinary is raw byte content.
	KindBinary ContentKind = "binary"
)

// Content is the body of a generated file. It is either Text or Binary;
// the kind travels with the value so packagers never guess.
type Content struct {
	kind ContentKind
	text string
	data []byte
}

// Text returns text content.
func Text(s string) Content {
	return Content{kind: KindText, text: s}
}

// Binary returns binary content. The slice is copied.
func Binary(b []byte) Content {
	data := make([]byte, len(b))
	copy(data, b)
	return Content{kind: KindBinary, data: data}
}

// Kind returns the content kind.
func (c Content) Kind() ContentKind {
	if c.kind == "" {
		return KindText
	}
	return c.kind
}

// IsBinary reports whether the content is binary.
func (c Content) IsBinary() bool {
	return c.kind == KindBinary
}

// String returns the text content. Binary content is returned base64-encoded.
func (c Content) String() string {
	if c.IsBinary() {
		return base64.StdEncoding.EncodeToString(c.data)
	}
	return c.text
}

// Bytes returns the raw bytes of the content.
func (c Content) Bytes() []byte {
	if c.IsBinary() {
		out := make([]byte, len(c.data))
		copy(out, c.data)
		return out
	}
	return []byte(c.text)
}

// Len returns the size of the content in bytes.
func (c Content) Len() int {
	if c.IsBinary() {
		return len(c.data)
	}
	return len(c.text)
}

// File is a single generated file.
type File struct {
	// Path is forward-slash separated and relative to the project root.
	Path string

	// Content is the file body.
	Content Content
}

// TextFile builds a text file record.
func TextFile(path, text string) File {
	return File{Path: path, Content: Text(text)}
}

// BinaryFile builds a binary file record.
func BinaryFile(path string, data []byte) File {
	return File{Path: path, Content: Binary(data)}
}

// Structure is the ordered output of one generation.
type Structure struct {
	Files []File
}

// Len returns the number of files.
func (s Structure) Len() int {
	return len(s.Files)
}

// Paths returns the file paths in generation order.
func (s Structure) Paths() []string {
	paths := make([]string, len(s.Files))
	for i, f := range s.Files {
		paths[i] = f.Path
	}
	return paths
}

// Lookup returns the file at path.
func (s Structure) Lookup(path string) (File, bool) {
	for _, f := range s.Files {
		if f.Path == path {
			return f, true
		}
	}
	return File{}, false
}
