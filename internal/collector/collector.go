// Package collector walks a directory tree and gathers the files eligible for a pick.
package collector

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taigrr/randpick/internal/pathfilter"
)

var (
	// ErrIO marks a walk aborted by a failed filesystem operation.
	ErrIO = errors.New("filesystem error")

	// ErrUnsupportedEntryKind marks a walk aborted by an entry that is not a
	// regular file, a directory, or a symlink (devices, sockets, pipes).
	ErrUnsupportedEntryKind = errors.New("unsupported entry kind")
)

// WalkError reports why a walk stopped. Kind is ErrIO or
// ErrUnsupportedEntryKind; Err holds the underlying cause, if any.
type WalkError struct {
	Kind error
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// Is matches the error's Kind sentinel.
func (e *WalkError) Is(target error) bool {
	return target == e.Kind
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Kind classifies a directory entry.
type Kind int

const (
	KindOther Kind = iota
	KindFile
	KindDirectory
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindOf classifies a file mode without following symlinks.
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Collect recursively gathers the regular files under root that pass filter,
// in depth-first order following directory listing order. Symlinks are never
// followed or reported. Any read failure or unsupported entry aborts the walk
// and no partial results are returned.
func Collect(root string, filter *pathfilter.Filter) ([]string, error) {
	w := walker{root: root, filter: filter}
	files, err := w.walk(root)
	if err != nil {
		return nil, err
	}
	return files, nil
}

type walker struct {
	root   string
	filter *pathfilter.Filter
}

func (w *walker) walk(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, &WalkError{Kind: ErrIO, Path: dirPath, Err: err}
	}

	var files []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())
		kind := KindOf(entry.Type())

		switch kind {
		case KindDirectory:
			if w.excluded(fullPath, true) {
				continue
			}
			subFiles, err := w.walk(fullPath)
			if err != nil {
				return nil, err
			}
			files = append(files, subFiles...)
		case KindFile:
			if w.excluded(fullPath, false) || !w.filter.Matches(entry.Name()) {
				continue
			}
			files = append(files, fullPath)
		case KindSymlink:
			// never followed
		default:
			return nil, &WalkError{Kind: ErrUnsupportedEntryKind, Path: fullPath}
		}
	}

	return files, nil
}

func (w *walker) excluded(fullPath string, isDir bool) bool {
	if w.filter == nil {
		return false
	}
	relPath, err := filepath.Rel(w.root, fullPath)
	if err != nil {
		return false
	}
	return w.filter.Excluded(filepath.ToSlash(relPath), isDir)
}
