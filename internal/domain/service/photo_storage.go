package service

import (
	"context"

	"ridingcourse/internal/errors"
)

// ErrObjectNotFound is returned by PhotoStorage.Download for a missing key.
var ErrObjectNotFound = errors.New("object not found")

// PhotoStorage stores image bytes and returns the public URL of the stored object.
type PhotoStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Download returns the stored bytes and their content type.
	Download(ctx context.Context, key string) ([]byte, string, error)
}
