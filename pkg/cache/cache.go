package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// TTLs for the cached stages.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with optional expiry.
// A zero ttl stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultDir returns the CLI cache directory: $XDG_CACHE_HOME/graphloom,
// falling back to ~/.cache/graphloom.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "graphloom")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "graphloom-cache")
	}
	return filepath.Join(home, ".cache", "graphloom")
}
