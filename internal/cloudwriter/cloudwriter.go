// Package cloudwriter stores engine exports as objects in a bucket. An object
// is assembled in memory and uploaded in one request when it is closed.
package cloudwriter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chrisdamba/menuengine/internal/models"
)

const ContentTypeParquet = "application/vnd.apache.parquet"

var (
	ErrUnsupportedProvider = errors.New("unsupported cloud storage provider")
	ErrNoBucket            = errors.New("no bucket configured")
	ErrObjectClosed        = errors.New("object already closed")
)

// ObjectWriter is one object being written. Close uploads it.
type ObjectWriter interface {
	io.WriteCloser
	Key() string
}

// Store creates objects under a fixed bucket and key prefix.
type Store interface {
	Create(ctx context.Context, key, contentType string) (ObjectWriter, error)
}

// NewStore returns the store for cfg.Provider, or nil for local output.
func NewStore(ctx context.Context, cfg models.CloudStorageConfig) (Store, error) {
	switch cfg.Provider {
	case "", "local":
		return nil, nil
	case "s3":
		store, err := NewS3Store(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
}
