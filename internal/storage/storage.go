package storage

import (
	"context"
	"fmt"
	"io"

	"travelcms/internal/config"
)

// ObjectStore is the blob backend behind every uploaded image.
type ObjectStore interface {
	Upload(ctx context.Context, path string, body io.Reader, contentType string) error
	PublicURL(path string) string
	Remove(ctx context.Context, paths ...string) error
}

func New(cfg *config.Config) (ObjectStore, error) {
	switch cfg.Storage.Driver {
	case "supabase":
		return NewSupabaseStore(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.Bucket), nil
	case "local":
		store, err := NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
}
