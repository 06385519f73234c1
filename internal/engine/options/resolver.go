// Package options merges CLI arguments, the persisted config and built-in
// defaults into the effective options of a run.
package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver builds domain.Options with CLI > config > default precedence.
type Resolver struct {
	logger          ports.Logger
	mkdirAll        func(path string, perm os.FileMode) error
	defaultCacheDir string
}

// NewResolver creates a Resolver using the system default cache directory.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{
		logger:          logger,
		mkdirAll:        os.MkdirAll,
		defaultCacheDir: domain.DefaultCacheDir(),
	}
}

// WithMkdirAll replaces the directory creation function.
func (r *Resolver) WithMkdirAll(fn func(path string, perm os.FileMode) error) *Resolver {
	r.mkdirAll = fn
	return r
}

// WithDefaultCacheDir replaces the fallback cache directory.
func (r *Resolver) WithDefaultCacheDir(dir string) *Resolver {
	r.defaultCacheDir = dir
	return r
}

// Resolve applies precedence per key and creates the cache directory.
func (r *Resolver) Resolve(args domain.CLIArgs, raw domain.RawConfig) (*domain.Options, error) {
	pacURL, pacFile := resolveSource(args, raw)
	if pacURL == "" && pacFile == "" {
		return nil, domain.NewError(domain.KindMissingSource, domain.ErrMissingSource)
	}

	cacheDir, err := r.ensureCacheDir(firstString(args.CacheDir, raw.CacheDir, r.defaultCacheDir))
	if err != nil {
		return nil, err
	}

	expires := time.Duration(r.resolveExpires(args, raw)) * time.Second

	r.logger.Info(fmt.Sprintf("Cache directory is: '%s'", cacheDir))
	r.logger.Info(fmt.Sprintf("Cache expiration time is: '%d'", int(expires/time.Second)))

	return domain.NewOptions(domain.OptionsParams{
		Hostnames:    args.Hostnames,
		PACURL:       pacURL,
		PACFile:      pacFile,
		CheckDNS:     firstBool(args.CheckDNS, raw.CheckDNS, false),
		UseCache:     resolveUseCache(args, raw),
		PurgeCache:   args.PurgeCache,
		CacheDir:     cacheDir,
		CacheExpires: expires,
	})
}

// resolveSource picks the PAC source. A source given on the CLI replaces
// both config sources; among config sources, pac_file wins.
func resolveSource(args domain.CLIArgs, raw domain.RawConfig) (pacURL, pacFile string) {
	cliURL, cliFile := value(args.PACURL), value(args.PACFile)
	if cliURL != "" || cliFile != "" {
		if cliFile != "" {
			return "", cliFile
		}
		return cliURL, ""
	}

	if cfgFile := value(raw.PACFile); cfgFile != "" {
		return "", cfgFile
	}
	return value(raw.PACURL), ""
}

// resolveUseCache: --no-cache forces caching off; otherwise the config decides; default on.
func resolveUseCache(args domain.CLIArgs, raw domain.RawConfig) bool {
	if args.NoCache != nil && *args.NoCache {
		return false
	}
	if raw.UseCache != nil {
		return *raw.UseCache
	}
	return true
}

func (r *Resolver) resolveExpires(args domain.CLIArgs, raw domain.RawConfig) int {
	sources := []struct {
		name  string
		value *int
	}{
		{"command line", args.CacheExpires},
		{"config file", raw.CacheExpires},
	}

	for _, src := range sources {
		if src.value == nil {
			continue
		}
		if *src.value <= 0 {
			r.logger.Warn(fmt.Sprintf("Ignoring %s value of '%s': %d is not a positive number of seconds.",
				src.name, domain.KeyCacheExpires, *src.value))
			continue
		}
		return *src.value
	}

	return int(domain.DefaultCacheExpires / time.Second)
}

// ensureCacheDir creates path, falling back to the default cache directory.
func (r *Resolver) ensureCacheDir(path string) (string, error) {
	attempts := []string{path}
	if filepath.Clean(path) != filepath.Clean(r.defaultCacheDir) {
		attempts = append(attempts, r.defaultCacheDir)
	}

	var errs []error
	for i, dir := range attempts {
		err := r.mkdirAll(dir, domain.DirPerm)
		if err == nil {
			return dir, nil
		}
		errs = append(errs, err)
		if i < len(attempts)-1 {
			r.logger.Warn(fmt.Sprintf("Could not create cache directory '%s': %v. Falling back to '%s'.",
				dir, err, attempts[i+1]))
		}
	}

	quoted := make([]string, len(attempts))
	for i, dir := range attempts {
		quoted[i] = "'" + dir + "'"
	}
	msg := fmt.Sprintf("%s: tried %s", domain.ErrCacheDirCreationFailed.Error(), strings.Join(quoted, ", "))
	err := zerr.With(zerr.Wrap(errors.Join(errs...), msg), "attempted_paths", attempts)

	return "", domain.NewError(domain.KindCacheDirCreation, err)
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// firstString returns the first non-empty candidate, then def.
func firstString(cli, cfg *string, def string) string {
	if v := value(cli); v != "" {
		return v
	}
	if v := value(cfg); v != "" {
		return v
	}
	return def
}

func firstBool(cli, cfg *bool, def bool) bool {
	if cli != nil {
		return *cli
	}
	if cfg != nil {
		return *cfg
	}
	return def
}
