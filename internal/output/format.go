package output

import (
	"fmt"
	"strings"
)

// OutputFormat specifies how a command presents its result.
type OutputFormat string

const (
	// FormatTree prints a file tree with descriptions.
	FormatTree OutputFormat = "tree"

	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"

	// FormatZip writes a zip archive.
	FormatZip OutputFormat = "zip"

	// FormatDir writes a directory structure.
	FormatDir OutputFormat = "dir"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is known.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTree, FormatYAML, FormatJSON, FormatZip, FormatDir:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses s and checks it against the allowed formats.
func ParseOutputFormat(s string, allowed ...OutputFormat) (OutputFormat, error) {
	var f OutputFormat
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		f = FormatYAML
	case "json":
		f = FormatJSON
	case "tree":
		f = FormatTree
	case "zip":
		f = FormatZip
	case "dir", "directory":
		f = FormatDir
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}

	if len(allowed) == 0 {
		return f, nil
	}
	for _, a := range allowed {
		if a == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("output format %q not supported here; valid formats: %s", s, JoinFormats(allowed))
}

// JoinFormats renders formats as a comma-separated list.
func JoinFormats(formats []OutputFormat) string {
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}

// PreviewFormats are the formats accepted by preview.
func PreviewFormats() []OutputFormat {
	return []OutputFormat{FormatTree, FormatJSON, FormatYAML}
}

// GenerateFormats are the formats accepted by new.
func GenerateFormats() []OutputFormat {
	return []OutputFormat{FormatZip, FormatDir}
}
