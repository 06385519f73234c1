package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pactester/internal/app"
	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports/mocks"
	"go.trai.ch/pactester/internal/engine/options"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	store     *mocks.MockConfigStore
	caches    *mocks.MockCacheFactory
	cache     *mocks.MockContentCache
	fetcher   *mocks.MockSourceFetcher
	evaluator *mocks.MockEvaluator
	finder    *mocks.MockProxyFinder
	hosts     *mocks.MockHostResolver
	logger    *mocks.MockLogger
}

func newProvider(t *testing.T) (*testMocks, ComponentProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		store:     mocks.NewMockConfigStore(ctrl),
		caches:    mocks.NewMockCacheFactory(ctrl),
		cache:     mocks.NewMockContentCache(ctrl),
		fetcher:   mocks.NewMockSourceFetcher(ctrl),
		evaluator: mocks.NewMockEvaluator(ctrl),
		finder:    mocks.NewMockProxyFinder(ctrl),
		hosts:     mocks.NewMockHostResolver(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	application := app.New(
		m.store,
		options.NewResolver(m.logger).WithDefaultCacheDir(t.TempDir()),
		m.caches,
		m.fetcher,
		m.evaluator,
		m.hosts,
		m.logger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, func() {}, nil
	}
	return m, provider
}

// TestRun_Success verifies that run returns 0 and prints one result per hostname.
func TestRun_Success(t *testing.T) {
	m, provider := newProvider(t)
	m.logger.EXPECT().SetLevel(gomock.Any())
	m.store.EXPECT().Load().Return(domain.RawConfig{})
	m.caches.EXPECT().Open(gomock.Any(), gomock.Any()).Return(m.cache)
	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), m.cache).Return("/cache/entry", nil)
	m.evaluator.EXPECT().Compile("/cache/entry").Return(m.finder, nil)
	m.finder.EXPECT().FindProxyForURL(gomock.Any(), "http://a.com", "a.com").Return("DIRECT", nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(),
		[]string{"-u", "http://h/wpad.dat", "-c", t.TempDir(), "a.com"},
		new(bytes.Buffer), provider,
		func(a *app.App) { a.WithOutput(stdout) },
	)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "RESULT: a.com -> DIRECT\n", stdout.String())
}

// TestRun_Version verifies that --version exits 0 without running the app.
func TestRun_Version(t *testing.T) {
	_, provider := newProvider(t)

	exitCode := run(context.Background(), []string{"--version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 64 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"a.com"}, stderr, provider)

	assert.Equal(t, 64, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_UsageError verifies that argument errors are logged and exit with 64.
func TestRun_UsageError(t *testing.T) {
	m, provider := newProvider(t)
	m.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"-u", "http://h/wpad.dat"}, new(bytes.Buffer), provider)
	assert.Equal(t, 64, exitCode)
}

// TestRun_MissingSource verifies that a run without source exits with 2.
func TestRun_MissingSource(t *testing.T) {
	m, provider := newProvider(t)
	m.logger.EXPECT().SetLevel(gomock.Any())
	m.store.EXPECT().Load().Return(domain.RawConfig{})
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Equal(t, domain.KindMissingSource, domain.KindOf(err))
	})

	exitCode := run(context.Background(), []string{"a.com"}, new(bytes.Buffer), provider)
	assert.Equal(t, 2, exitCode)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		kind     domain.ErrorKind
		expected int
	}{
		{domain.KindSourceNotFound, 1},
		{domain.KindMissingSource, 2},
		{domain.KindFetch, 3},
		{domain.KindEvaluation, 4},
		{domain.KindCacheDirCreation, 5},
		{domain.KindInvalidOption, 64},
		{domain.KindUnknown, 64},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCode(domain.NewError(tt.kind, errors.New("x"))))
		})
	}

	assert.Equal(t, 64, exitCode(errors.New("plain")))
}
