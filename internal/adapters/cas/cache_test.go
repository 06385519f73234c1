package cas_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pactester/internal/adapters/cas"
	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var hexKey = regexp.MustCompile(`^[0-9a-f]{16}$`)

func newCache(t *testing.T, expires time.Duration) (*cas.Cache, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	return cas.NewCache(dir, expires, mockLogger), dir
}

func assertContent(t *testing.T, path, expected string) {
	t.Helper()
	//nolint:gosec // Test file with controlled path
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))
}

func TestCache_PutAndGet(t *testing.T) {
	cache, dir := newCache(t, time.Hour)
	key := cache.KeyForURL("http://h/wpad.dat")

	body := "function FindProxyForURL(u, h) { return \"DIRECT\"; }"
	path, err := cache.Put(key, []byte(body))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, key.Hash), path)

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, path, got)
	assertContent(t, got, body)
}

func TestCache_PutReplacesEntry(t *testing.T) {
	cache, dir := newCache(t, time.Hour)
	key := cache.KeyForURL("http://h/wpad.dat")

	_, err := cache.Put(key, []byte("old"))
	require.NoError(t, err)
	_, err = cache.Put(key, []byte("new"))
	require.NoError(t, err)

	path, ok := cache.Get(key)
	require.True(t, ok)
	assertContent(t, path, "new")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files should be left behind")
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := newCache(t, time.Hour)

	_, ok := cache.Get(cache.KeyForURL("http://never-stored/wpad.dat"))
	assert.False(t, ok)
}

func TestCache_URLEntryExpires(t *testing.T) {
	cache, dir := newCache(t, time.Minute)
	key := cache.KeyForURL("http://h/wpad.dat")
	_, err := cache.Put(key, []byte("content"))
	require.NoError(t, err)

	path := filepath.Join(dir, key.Hash)
	old := time.Now().Add(-2 * time.Minute)
	require.NoError(t, os.Chtimes(path, old, old))

	_, ok := cache.Get(key)
	assert.False(t, ok)
	assert.NoFileExists(t, path, "expired entry should be deleted")
}

func TestCache_ExpiryUsesClock(t *testing.T) {
	cache, _ := newCache(t, time.Hour)
	key := cache.KeyForURL("http://h/wpad.dat")
	_, err := cache.Put(key, []byte("content"))
	require.NoError(t, err)

	cache.WithClock(func() time.Time { return time.Now().Add(30 * time.Minute) })
	_, ok := cache.Get(key)
	assert.True(t, ok)

	cache.WithClock(func() time.Time { return time.Now().Add(2 * time.Hour) })
	_, ok = cache.Get(key)
	assert.False(t, ok)
}

func TestCache_FileEntryNeverExpires(t *testing.T) {
	cache, dir := newCache(t, time.Second)
	pacPath := filepath.Join(t.TempDir(), "wpad.dat")
	require.NoError(t, os.WriteFile(pacPath, []byte("content"), 0o600))

	key, err := cache.KeyForFile(pacPath)
	require.NoError(t, err)
	_, err = cache.Put(key, []byte("content"))
	require.NoError(t, err)

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, key.Hash), old, old))

	path, ok := cache.Get(key)
	require.True(t, ok)
	assertContent(t, path, "content")
}

func TestCache_Keys(t *testing.T) {
	cache, _ := newCache(t, time.Hour)

	a := cache.KeyForURL("http://h/wpad.dat")
	b := cache.KeyForURL("http://h/wpad.dat")
	c := cache.KeyForURL("http://other/wpad.dat")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Hash, c.Hash)
	assert.Regexp(t, hexKey, a.Hash)
	assert.Equal(t, domain.SourceURL, a.Source)
}

func TestCache_FileKeyChangesWithMtime(t *testing.T) {
	cache, _ := newCache(t, time.Hour)
	pacPath := filepath.Join(t.TempDir(), "wpad.dat")
	require.NoError(t, os.WriteFile(pacPath, []byte("v1"), 0o600))

	first, err := cache.KeyForFile(pacPath)
	require.NoError(t, err)
	again, err := cache.KeyForFile(pacPath)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, domain.SourceFile, first.Source)
	assert.Regexp(t, hexKey, first.Hash)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(pacPath, later, later))

	second, err := cache.KeyForFile(pacPath)
	require.NoError(t, err)
	assert.NotEqual(t, first.Hash, second.Hash)
}

func TestCache_FileKeyMissingFile(t *testing.T) {
	cache, _ := newCache(t, time.Hour)

	_, err := cache.KeyForFile(filepath.Join(t.TempDir(), "missing.dat"))
	require.Error(t, err)
	assert.Equal(t, domain.KindSourceNotFound, domain.KindOf(err))
}

func TestCache_Purge(t *testing.T) {
	cache, dir := newCache(t, time.Hour)
	for _, u := range []string{"http://a/wpad.dat", "http://b/wpad.dat", "http://c/wpad.dat"} {
		_, err := cache.Put(cache.KeyForURL(u), []byte(u))
		require.NoError(t, err)
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o750))

	assert.Equal(t, 3, cache.Purge())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())

	assert.Equal(t, 0, cache.Purge())
}

func TestCache_PurgeSymlinks(t *testing.T) {
	cache, dir := newCache(t, time.Hour)
	outside := t.TempDir()

	target := filepath.Join(outside, "wpad.dat")
	require.NoError(t, os.WriteFile(target, []byte("pac"), 0o600))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "file-link")))
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "dir-link")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "gone"), filepath.Join(dir, "dangling")))

	assert.Equal(t, 1, cache.Purge())

	_, err := os.Lstat(filepath.Join(dir, "file-link"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.FileExists(t, target)

	_, err = os.Lstat(filepath.Join(dir, "dir-link"))
	assert.NoError(t, err)
	_, err = os.Lstat(filepath.Join(dir, "dangling"))
	assert.NoError(t, err)
}

func TestFactory_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	cache := cas.NewFactory(mockLogger).Open(dir, time.Hour)

	key := cache.KeyForURL("http://h/wpad.dat")
	_, err := cache.Put(key, []byte("x"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, key.Hash))
}
