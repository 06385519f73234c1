// Package cas implements the on-disk content cache for PAC documents.
// Entries are flat files named after an xxhash of their source.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/facebookgo/atomicfile"
	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache implements ports.ContentCache on top of a single directory.
type Cache struct {
	dir     string
	expires time.Duration
	logger  ports.Logger
	now     func() time.Time
}

// NewCache creates a Cache rooted at dir. dir must already exist.
func NewCache(dir string, expires time.Duration, logger ports.Logger) *Cache {
	return &Cache{
		dir:     filepath.Clean(dir),
		expires: expires,
		logger:  logger,
		now:     time.Now,
	}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// KeyForURL derives the cache key of a downloaded document from its URL.
func (c *Cache) KeyForURL(url string) domain.CacheKey {
	return domain.CacheKey{Hash: hashString(url), Source: domain.SourceURL}
}

// KeyForFile derives the cache key of a local document from its absolute
// path and modification time, so editing the file yields a new key.
func (c *Cache) KeyForFile(path string) (domain.CacheKey, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.CacheKey{}, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.CacheKey{}, domain.NewError(domain.KindSourceNotFound,
				zerr.With(domain.ErrSourceNotFound, "path", path))
		}
		return domain.CacheKey{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	seed := fmt.Sprintf("%s:%d", abs, info.ModTime().UnixNano())
	return domain.CacheKey{Hash: hashString(seed), Source: domain.SourceFile}, nil
}

// Get returns the path of the cached entry for key. Expired URL entries
// are deleted and reported as a miss.
func (c *Cache) Get(key domain.CacheKey) (string, bool) {
	path := c.entryPath(key)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		c.logger.Debug(fmt.Sprintf("Cache miss for '%s'.", key))
		return "", false
	}

	if key.Source == domain.SourceURL {
		if age := c.now().Sub(info.ModTime()); age >= c.expires {
			c.logger.Debug(fmt.Sprintf("Cache entry '%s' expired %s ago.", key, (age - c.expires).Round(time.Second)))
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				c.logger.Warn(fmt.Sprintf("Could not delete expired cache entry '%s': %v", path, err))
			}
			return "", false
		}
	}

	c.logger.Debug(fmt.Sprintf("Cache hit for '%s'.", key))
	return path, true
}

// Put stores content under key, replacing any previous entry atomically,
// and returns the entry path.
func (c *Cache) Put(key domain.CacheKey, content []byte) (string, error) {
	path := c.entryPath(key)

	f, err := atomicfile.New(path, domain.FilePerm)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Abort()
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	if err := f.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	c.logger.Debug(fmt.Sprintf("Stored cache entry '%s'.", key))
	return path, nil
}

// Purge removes every regular file in the cache directory and returns how
// many were removed. Subdirectories are left alone.
func (c *Cache) Purge() int {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("Could not list cache directory '%s': %v", c.dir, err))
		return 0
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(c.dir, entry.Name())
		if !purgeable(entry, path) {
			continue
		}
		if err := os.Remove(path); err != nil {
			c.logger.Warn(fmt.Sprintf("Could not delete cache entry '%s': %v", path, err))
			continue
		}
		removed++
	}

	return removed
}

// purgeable reports whether entry is a regular file or a symlink to one.
// Removing a symlink leaves its target in place.
func purgeable(entry fs.DirEntry, path string) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (c *Cache) entryPath(key domain.CacheKey) string {
	return filepath.Join(c.dir, key.Hash)
}

func hashString(s string) string {
	return fmt.Sprintf("%0*x", domain.CacheKeyLength, xxhash.Sum64String(s))
}

// Factory opens Cache instances once the cache directory is known.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// Open implements ports.CacheFactory.
func (f *Factory) Open(dir string, expires time.Duration) ports.ContentCache {
	return NewCache(dir, expires, f.logger)
}
