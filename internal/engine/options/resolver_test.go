package options_test

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports/mocks"
	"go.trai.ch/pactester/internal/engine/options"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newResolver(t *testing.T) *options.Resolver {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return options.NewResolver(mockLogger).WithDefaultCacheDir(filepath.Join(t.TempDir(), "default-cache"))
}

func fullArgs(tmp string) domain.CLIArgs {
	return domain.CLIArgs{
		Hostnames:    []string{"fake-host.com", "http://fake-url.int"},
		PACURL:       ptr("http://fake-url/wpad.dat"),
		CheckDNS:     ptr(true),
		NoCache:      ptr(false),
		CacheDir:     ptr(filepath.Join(tmp, "fake_cache_dir")),
		CacheExpires: ptr(12345),
	}
}

func missingArgs() domain.CLIArgs {
	return domain.CLIArgs{Hostnames: []string{"fake-host.com", "http://fake-url.int"}}
}

func fullConfig(tmp string) domain.RawConfig {
	return domain.RawConfig{
		PACURL:       ptr("http://fake-url-config-file/wpad.dat"),
		CheckDNS:     ptr(false),
		UseCache:     ptr(false),
		CacheDir:     ptr(filepath.Join(tmp, "fake_cache_dir_2")),
		CacheExpires: ptr(67890),
	}
}

func TestResolve_FromCLIOnly(t *testing.T) {
	tmp := t.TempDir()

	opts, err := newResolver(t).Resolve(fullArgs(tmp), domain.RawConfig{})
	require.NoError(t, err)

	assert.Equal(t, "http://fake-url/wpad.dat", opts.PACURL())
	assert.Empty(t, opts.PACFile())
	assert.Equal(t, domain.SourceURL, opts.Source())
	assert.True(t, opts.CheckDNS())
	assert.True(t, opts.UseCache())
	assert.False(t, opts.PurgeCache())
	assert.Equal(t, filepath.Join(tmp, "fake_cache_dir"), opts.CacheDir())
	assert.Equal(t, 12345*time.Second, opts.CacheExpires())
	assert.Equal(t, []string{"fake-host.com", "http://fake-url.int"}, opts.Hostnames())
}

func TestResolve_ConfigFillsMissingCLI(t *testing.T) {
	tmp := t.TempDir()

	opts, err := newResolver(t).Resolve(missingArgs(), fullConfig(tmp))
	require.NoError(t, err)

	assert.Equal(t, "http://fake-url-config-file/wpad.dat", opts.PACURL())
	assert.Empty(t, opts.PACFile())
	assert.False(t, opts.CheckDNS())
	assert.False(t, opts.UseCache())
	assert.Equal(t, filepath.Join(tmp, "fake_cache_dir_2"), opts.CacheDir())
	assert.Equal(t, 67890*time.Second, opts.CacheExpires())
}

func TestResolve_CLIOverridesConfig(t *testing.T) {
	tmp := t.TempDir()

	opts, err := newResolver(t).Resolve(fullArgs(tmp), fullConfig(tmp))
	require.NoError(t, err)

	assert.Equal(t, "http://fake-url/wpad.dat", opts.PACURL())
	assert.True(t, opts.CheckDNS())
	// --no-cache was not set, so the config (use_cache = false) applies.
	assert.False(t, opts.UseCache())
	assert.Equal(t, filepath.Join(tmp, "fake_cache_dir"), opts.CacheDir())
	assert.Equal(t, 12345*time.Second, opts.CacheExpires())
}

func TestResolve_Defaults(t *testing.T) {
	r := newResolver(t)
	args := missingArgs()
	args.PACURL = ptr("http://h/wpad.dat")
	args.Hostnames = []string{"a.com"}

	opts, err := r.Resolve(args, domain.RawConfig{})
	require.NoError(t, err)

	assert.Equal(t, "http://h/wpad.dat", opts.PACURL())
	assert.Empty(t, opts.PACFile())
	assert.True(t, opts.UseCache())
	assert.False(t, opts.CheckDNS())
	assert.Equal(t, domain.DefaultCacheExpires, opts.CacheExpires())
	assert.DirExists(t, opts.CacheDir())
}

func TestResolve_CacheExpiresFromConfig(t *testing.T) {
	args := missingArgs()
	args.PACURL = ptr("http://h/wpad.dat")

	opts, err := newResolver(t).Resolve(args, domain.RawConfig{CacheExpires: ptr(67890)})
	require.NoError(t, err)

	assert.Equal(t, 67890*time.Second, opts.CacheExpires())
}

func TestResolve_NonPositiveExpiresSkipped(t *testing.T) {
	args := missingArgs()
	args.PACURL = ptr("http://h/wpad.dat")
	args.CacheExpires = ptr(0)

	opts, err := newResolver(t).Resolve(args, domain.RawConfig{CacheExpires: ptr(-5)})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCacheExpires, opts.CacheExpires())
}

func TestResolve_UseCache(t *testing.T) {
	tests := []struct {
		name     string
		noCache  *bool
		useCache *bool
		expected bool
	}{
		{name: "default", expected: true},
		{name: "no-cache flag", noCache: ptr(true), expected: false},
		{name: "no-cache flag beats config", noCache: ptr(true), useCache: ptr(true), expected: false},
		{name: "config off", useCache: ptr(false), expected: false},
		{name: "config on", useCache: ptr(true), expected: true},
		{name: "explicit false flag defers to config", noCache: ptr(false), useCache: ptr(false), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := missingArgs()
			args.PACURL = ptr("http://h/wpad.dat")
			args.NoCache = tt.noCache

			opts, err := newResolver(t).Resolve(args, domain.RawConfig{UseCache: tt.useCache})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts.UseCache())
		})
	}
}

func TestResolve_SourcePrecedence(t *testing.T) {
	tests := []struct {
		name       string
		cliURL     *string
		cliFile    *string
		cfgURL     *string
		cfgFile    *string
		expectURL  string
		expectFile string
		expectKind domain.SourceKind
	}{
		{
			name:       "cli file beats config url",
			cliFile:    ptr("local.dat"),
			cfgURL:     ptr("http://cfg/wpad.dat"),
			expectFile: "local.dat",
			expectKind: domain.SourceFile,
		},
		{
			name:       "cli url beats config file",
			cliURL:     ptr("http://cli/wpad.dat"),
			cfgFile:    ptr("cfg.dat"),
			expectURL:  "http://cli/wpad.dat",
			expectKind: domain.SourceURL,
		},
		{
			name:       "config file beats config url",
			cfgURL:     ptr("http://cfg/wpad.dat"),
			cfgFile:    ptr("cfg.dat"),
			expectFile: "cfg.dat",
			expectKind: domain.SourceFile,
		},
		{
			name:       "empty cli value falls through to config",
			cliURL:     ptr(""),
			cfgURL:     ptr("http://cfg/wpad.dat"),
			expectURL:  "http://cfg/wpad.dat",
			expectKind: domain.SourceURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := missingArgs()
			args.PACURL, args.PACFile = tt.cliURL, tt.cliFile

			opts, err := newResolver(t).Resolve(args, domain.RawConfig{PACURL: tt.cfgURL, PACFile: tt.cfgFile})
			require.NoError(t, err)
			assert.Equal(t, tt.expectURL, opts.PACURL())
			assert.Equal(t, tt.expectFile, opts.PACFile())
			assert.Equal(t, tt.expectKind, opts.Source())
		})
	}
}

func TestResolve_MissingSource(t *testing.T) {
	_, err := newResolver(t).Resolve(missingArgs(), domain.RawConfig{CacheDir: ptr(t.TempDir())})

	require.Error(t, err)
	assert.Equal(t, domain.KindMissingSource, domain.KindOf(err))
}

func TestResolve_CacheDirIsCreated(t *testing.T) {
	tmp := t.TempDir()

	opts, err := newResolver(t).Resolve(fullArgs(tmp), fullConfig(tmp))
	require.NoError(t, err)

	assert.DirExists(t, opts.CacheDir())
}

func TestResolve_CacheDirFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	defaultDir := filepath.Join(tmp, "default-cache")
	r := newResolver(t).WithDefaultCacheDir(defaultDir).WithMkdirAll(func(path string, perm os.FileMode) error {
		if path != defaultDir {
			return errors.New("permission denied")
		}
		return os.MkdirAll(path, perm)
	})

	opts, err := r.Resolve(fullArgs(tmp), domain.RawConfig{})
	require.NoError(t, err)

	assert.Equal(t, defaultDir, opts.CacheDir())
	assert.DirExists(t, defaultDir)
}

func TestResolve_CacheDirCreationFailed(t *testing.T) {
	tmp := t.TempDir()
	defaultDir := filepath.Join(tmp, "default-cache")
	r := newResolver(t).WithDefaultCacheDir(defaultDir).WithMkdirAll(func(string, os.FileMode) error {
		return errors.New("permission denied")
	})

	args := fullArgs(tmp)
	_, err := r.Resolve(args, domain.RawConfig{})

	require.Error(t, err)
	assert.Equal(t, domain.KindCacheDirCreation, domain.KindOf(err))
	assert.Contains(t, err.Error(), "all attempts to create cache directory failed")
	assert.Contains(t, err.Error(), *args.CacheDir)
	assert.Contains(t, err.Error(), defaultDir)
}

func TestOptions_All(t *testing.T) {
	tmp := t.TempDir()

	opts, err := newResolver(t).Resolve(fullArgs(tmp), fullConfig(tmp))
	require.NoError(t, err)

	values := maps.Collect(opts.All())
	for _, key := range []string{
		"hostnames", "pac_url", "pac_file", "check_dns",
		"purge_cache", "use_cache", "cache_dir", "cache_expires",
	} {
		assert.Contains(t, values, key)
	}
	assert.Equal(t, 12345, values["cache_expires"])
}
