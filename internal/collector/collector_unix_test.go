//go:build unix

package collector

import (
	"errors"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/taigrr/randpick/internal/pathfilter"
)

func TestCollect_UnsupportedEntryKind(t *testing.T) {
	root := setupTree(t, "a.txt", "sub/b.txt")
	pipe := filepath.Join(root, "sub", "pipe")
	if err := syscall.Mkfifo(pipe, 0o644); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}

	files, err := Collect(root, nil)
	if files != nil {
		t.Errorf("Collect() = %q, want nil", files)
	}
	if !errors.Is(err, ErrUnsupportedEntryKind) {
		t.Fatalf("Collect() error = %v, want ErrUnsupportedEntryKind", err)
	}
	if errors.Is(err, ErrIO) {
		t.Errorf("Collect() error = %v, should not be ErrIO", err)
	}

	var walkErr *WalkError
	if !errors.As(err, &walkErr) {
		t.Fatalf("Collect() error type = %T, want *WalkError", err)
	}
	if walkErr.Path != pipe {
		t.Errorf("WalkError.Path = %q, want %q", walkErr.Path, pipe)
	}
}

func TestCollect_UnsupportedEntryKindIgnoresExclude(t *testing.T) {
	root := setupTree(t, "a.txt")
	pipe := filepath.Join(root, "pipe.tmp")
	if err := syscall.Mkfifo(pipe, 0o644); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}

	filter := pathfilter.New(nil, pathfilter.WithExclude("*.tmp"))
	_, err := Collect(root, filter)
	if !errors.Is(err, ErrUnsupportedEntryKind) {
		t.Errorf("Collect() error = %v, want ErrUnsupportedEntryKind", err)
	}
}
