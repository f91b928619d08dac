package service

import (
	"context"
	"io"
)

// StoredFile describes an object written to file storage.
type StoredFile struct {
	Key  string
	URL  string
	Size int64
}

// FileStorage defines the interface for storing customer attachments
type FileStorage interface {
	// Upload writes r under a generated key derived from filename and returns where it can be fetched
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (*StoredFile, error)

	// Delete removes a stored object
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket
	Close() error
}
