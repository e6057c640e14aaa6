package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalArchive stores CSV archives on the local filesystem, one file per
// upload reference.
type LocalArchive struct {
	dir string
}

func NewLocalArchive(dir string) (*LocalArchive, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &LocalArchive{dir: dir}, nil
}

func (a *LocalArchive) path(key string) string {
	// Base strips any path components a malformed key might carry.
	return filepath.Join(a.dir, filepath.Base(key)+".csv")
}

func (a *LocalArchive) Save(ctx context.Context, key string, reader io.Reader) error {
	f, err := os.Create(a.path(key))
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write archive file: %w", err)
	}
	return nil
}

func (a *LocalArchive) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(a.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive file: %w", err)
	}
	return f, nil
}

func (a *LocalArchive) Delete(ctx context.Context, key string) error {
	if err := os.Remove(a.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete archive file: %w", err)
	}
	return nil
}
