// Package app implements the application layer for pactester.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports"
	"go.trai.ch/pactester/internal/engine/options"
)

// App represents the main application logic.
type App struct {
	store     ports.ConfigStore
	resolver  *options.Resolver
	caches    ports.CacheFactory
	fetcher   ports.SourceFetcher
	evaluator ports.Evaluator
	hosts     ports.HostResolver
	logger    ports.Logger
	out       io.Writer
}

// New creates a new App instance.
func New(
	store ports.ConfigStore,
	resolver *options.Resolver,
	caches ports.CacheFactory,
	fetcher ports.SourceFetcher,
	evaluator ports.Evaluator,
	hosts ports.HostResolver,
	log ports.Logger,
) *App {
	return &App{
		store:     store,
		resolver:  resolver,
		caches:    caches,
		fetcher:   fetcher,
		evaluator: evaluator,
		hosts:     hosts,
		logger:    log,
		out:       os.Stdout,
	}
}

// WithOutput sets where RESULT lines are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run resolves the options, obtains the PAC document and prints the proxy
// chosen for every hostname, in order.
func (a *App) Run(ctx context.Context, args domain.CLIArgs) error {
	// 1. Logging
	a.logger.SetLevel(levelFor(args))

	// 2. Options
	opts, err := a.resolver.Resolve(args, a.store.Load())
	if err != nil {
		return err
	}

	for key, value := range opts.All() {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		a.logger.Debug(fmt.Sprintf("Selected '%s: %v'.", key, value))
	}

	// 3. Cache
	cache := a.caches.Open(opts.CacheDir(), opts.CacheExpires())
	if opts.PurgeCache() {
		removed := cache.Purge()
		a.logger.Info(fmt.Sprintf("Removed %d file(s) from cache directory '%s'.", removed, opts.CacheDir()))
	}

	// 4. PAC document
	path, err := a.fetcher.Fetch(ctx, opts, cache)
	if err != nil {
		return err
	}

	finder, err := a.evaluator.Compile(path)
	if err != nil {
		return err
	}

	// 5. Lookups
	for _, hostname := range opts.Hostnames() {
		target, host := normalizeHostname(hostname)

		proxy, err := finder.FindProxyForURL(ctx, target, host)
		if err != nil {
			return err
		}

		if opts.CheckDNS() {
			if _, err := a.hosts.Resolve(ctx, host); err != nil {
				a.logger.Warn(fmt.Sprintf("Hostname '%s' could not be resolved via DNS.", hostname))
			}
		}

		if _, err := fmt.Fprintf(a.out, "RESULT: %s -> %s\n", hostname, proxy); err != nil {
			return err
		}
	}

	return nil
}

func levelFor(args domain.CLIArgs) slog.Level {
	switch {
	case args.Debug:
		return slog.LevelDebug
	case args.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// normalizeHostname returns the URL to evaluate for hostname and its host part.
// Values without an http or https scheme are treated as http://<hostname>.
func normalizeHostname(hostname string) (target, host string) {
	lower := strings.ToLower(hostname)
	target = hostname
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		target = "http://" + hostname
	}

	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		return target, hostname
	}
	return target, u.Hostname()
}
