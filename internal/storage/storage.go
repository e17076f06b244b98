package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// SignedURLExpiry is the lifetime of presigned download URLs. Blobs are
// never served through direct credentials.
const SignedURLExpiry = 3600 * time.Second

// Storage is the single object-storage abstraction. Keys are the
// deterministic strings built by keys.go; the relational rows hold no
// other linkage to their blobs.
type Storage interface {
	// Save stores a blob under the given key.
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Get retrieves a blob. Caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a blob. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a blob is stored under the key.
	Exists(ctx context.Context, key string) (bool, error)

	// SignedURL returns a time-limited download URL.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Config selects and parameterizes the backend.
type Config struct {
	Type      string // local, minio
	BasePath  string // local
	Bucket    string // minio
	Endpoint  string // minio
	AccessKey string // minio
	SecretKey string // minio
	UseSSL    bool   // minio
}

// NewStorage builds the configured backend.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "minio":
		return NewMinioStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
