package project

import (
	"strings"

	"github.com/gosimple/slug"
)

// DefaultPackagePrefix is the reverse-domain prefix used when deriving a
// package name from a project name.
const DefaultPackagePrefix = "com.example"

// SanitizeIdentifier strips every character outside [A-Za-z0-9].
// Distinct names that sanitize to the same identifier collide; callers that
// need distinct theme names must choose distinct alphanumeric names.
func SanitizeIdentifier(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// PackagePath converts a dotted package name into a source directory path.
func PackagePath(packageName string) string {
	return strings.ReplaceAll(packageName, ".", "/")
}

// joinPath joins forward-slash paths, dropping empty segments so that a
// malformed package name never yields a leading or doubled slash.
func joinPath(parts ...string) string {
	kept := make([]string, 0, len(parts)*2)
	for _, p := range parts {
		for _, seg := range strings.Split(p, "/") {
			if seg != "" {
				kept = append(kept, seg)
			}
		}
	}
	return strings.Join(kept, "/")
}

// DerivePackageName builds a package name from a reverse-domain prefix and a
// project name, e.g. ("com.example", "My App") gives "com.example.myapp".
func DerivePackageName(prefix, projectName string) string {
	prefix = strings.Trim(strings.ToLower(strings.TrimSpace(prefix)), ".")
	if prefix == "" {
		prefix = DefaultPackagePrefix
	}

	segment := strings.ToLower(SanitizeIdentifier(slug.Make(projectName)))
	switch {
	case segment == "":
		segment = "app"
	case segment[0] >= '0' && segment[0] <= '9':
		segment = "app" + segment
	}
	return prefix + "." + segment
}
