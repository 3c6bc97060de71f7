package picker

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ResolveRoot resolves a directory relative to base and rejects paths that
// escape it, either textually or through a symlink.
func ResolveRoot(base, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}

	normalizedPath := strings.TrimSpace(relativePath)
	normalizedPath = strings.TrimPrefix(normalizedPath, "/")

	absPath, err := filepath.Abs(filepath.Join(baseAbs, normalizedPath))
	if err != nil {
		return "", err
	}
	if !within(baseAbs, absPath) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	// A symlinked root would be followed by the walk.
	realBase, err := filepath.EvalSymlinks(baseAbs)
	if err != nil {
		return "", err
	}
	realPath, err := filepath.EvalSymlinks(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		// left for the walk to report
		return absPath, nil
	}
	if err != nil {
		return "", err
	}
	if !within(realBase, realPath) {
		return "", fmt.Errorf("path traversal not allowed: %s resolves outside the served root", relativePath)
	}

	return absPath, nil
}

func within(base, path string) bool {
	relPath, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return relPath != ".." && !strings.HasPrefix(relPath, ".."+string(filepath.Separator))
}
