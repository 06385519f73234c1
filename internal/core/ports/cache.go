package ports

import (
	"time"

	"go.trai.ch/pactester/internal/core/domain"
)

// ContentCache defines the interface for the content-addressed PAC document cache.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ContentCache interface {
	// KeyForURL derives the key of a downloaded document from its URL.
	KeyForURL(url string) domain.CacheKey

	// KeyForFile derives the key of a local document from its absolute path and mtime.
	KeyForFile(path string) (domain.CacheKey, error)

	// Get returns the path of the cached entry for key.
	// URL entries older than the cache TTL are removed and reported as a miss.
	Get(key domain.CacheKey) (string, bool)

	// Put writes content under key, replacing any previous entry, and returns its path.
	Put(key domain.CacheKey, content []byte) (string, error)

	// Purge removes every regular file in the cache directory and returns how many were removed.
	Purge() int
}

// CacheFactory opens a ContentCache once the cache directory and TTL are known.
type CacheFactory interface {
	Open(dir string, expires time.Duration) ContentCache
}
