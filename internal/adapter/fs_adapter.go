// Package adapter contains infrastructure adapters for the alsgen CLI.
package adapter

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	m "github.com/mouse-blink/alsgen/internal/model"
)

// FSAdapter abstracts the filesystem operations the workflow relies on so the
// generation logic can be tested without touching the disk.
type FSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFileAtomic replaces path with content. Readers observe either the
	// previous file or the complete new one, never a partial write.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error
}

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter instance ready to be wired
// into the workflow.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFileAtomic writes content to a temporary file next to path and renames
// it over path. As with os.WriteFile, perm is subject to the process umask.
func (a *LocalFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	target := string(path)

	tmp, err := createTemp(filepath.Dir(target), filepath.Base(target), perm)
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	committed = true

	return nil
}

// createTemp opens a new hidden file next to base. Unlike os.CreateTemp, the
// file is created with perm so the umask applies at creation time.
func createTemp(dir, base string, perm os.FileMode) (*os.File, error) {
	for i := 0; i < maxTempAttempts; i++ {
		name := filepath.Join(dir, "."+base+".tmp-"+strconv.FormatUint(uint64(rand.Uint32()), 10))

		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if os.IsExist(err) {
			continue
		}

		return f, err
	}

	return nil, &os.PathError{Op: "createtemp", Path: filepath.Join(dir, "."+base+".tmp-*"), Err: os.ErrExist}
}

const maxTempAttempts = 10000
