// Package uri renders picked paths as file URIs.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// GenerateFileURI generates a file URI for the given path.
// Relative paths are resolved against the working directory.
func GenerateFileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return "file:///" + strings.TrimPrefix(strings.Join(segments, "/"), "/")
}
