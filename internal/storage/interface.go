package storage

import (
	"context"
	"io"
)

// ArchiveStore persists raw uploaded CSV payloads for audit. Keys are the
// upload record references; the backing store may be local disk or a cloud
// bucket.
type ArchiveStore interface {
	Save(ctx context.Context, key string, reader io.Reader) error
	Read(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
