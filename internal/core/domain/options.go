package domain

import (
	"iter"
	"slices"
	"time"

	"go.trai.ch/zerr"
)

// OptionsParams carries the already-resolved values used to build Options.
type OptionsParams struct {
	Hostnames    []string
	PACURL       string
	PACFile      string
	CheckDNS     bool
	UseCache     bool
	PurgeCache   bool
	CacheDir     string
	CacheExpires time.Duration
}

// Options is the effective, immutable configuration of a run.
// Precedence between CLI, config file and defaults is fully resolved
// before an Options value exists.
type Options struct {
	hostnames    []string
	pacURL       string
	pacFile      string
	checkDNS     bool
	useCache     bool
	purgeCache   bool
	cacheDir     string
	cacheExpires time.Duration
}

// NewOptions validates params and freezes them.
func NewOptions(params OptionsParams) (*Options, error) {
	switch {
	case params.PACURL == "" && params.PACFile == "":
		return nil, NewError(KindMissingSource, ErrMissingSource)
	case params.PACURL != "" && params.PACFile != "":
		err := zerr.With(ErrMutuallyExclusiveOptions, "pac_url", params.PACURL)
		return nil, NewError(KindMutuallyExclusive, zerr.With(err, "pac_file", params.PACFile))
	case len(params.Hostnames) == 0:
		return nil, zerr.New("at least one hostname is required")
	case params.CacheExpires <= 0:
		return nil, NewError(KindInvalidOption, zerr.With(ErrInvalidOption, KeyCacheExpires, params.CacheExpires))
	case params.CacheDir == "":
		return nil, NewError(KindInvalidOption, zerr.With(ErrInvalidOption, KeyCacheDir, params.CacheDir))
	}

	return &Options{
		hostnames:    slices.Clone(params.Hostnames),
		pacURL:       params.PACURL,
		pacFile:      params.PACFile,
		checkDNS:     params.CheckDNS,
		useCache:     params.UseCache,
		purgeCache:   params.PurgeCache,
		cacheDir:     params.CacheDir,
		cacheExpires: params.CacheExpires,
	}, nil
}

// Hostnames returns a copy of the hostnames to evaluate, in order.
func (o *Options) Hostnames() []string { return slices.Clone(o.hostnames) }

// PACURL returns the PAC document URL, or "" when a file is used.
func (o *Options) PACURL() string { return o.pacURL }

// PACFile returns the local PAC document path, or "" when a URL is used.
func (o *Options) PACFile() string { return o.pacFile }

// Source reports which of PACURL and PACFile is set.
func (o *Options) Source() SourceKind {
	if o.pacFile != "" {
		return SourceFile
	}
	return SourceURL
}

// CheckDNS reports whether hostnames must be checked for DNS resolution.
func (o *Options) CheckDNS() bool { return o.checkDNS }

// UseCache reports whether cached entries may be served.
func (o *Options) UseCache() bool { return o.useCache }

// PurgeCache reports whether the cache directory is emptied before fetching.
func (o *Options) PurgeCache() bool { return o.purgeCache }

// CacheDir returns the cache directory. It exists when Options is built by the resolver.
func (o *Options) CacheDir() string { return o.cacheDir }

// CacheExpires returns the TTL of URL cache entries.
func (o *Options) CacheExpires() time.Duration { return o.cacheExpires }

// All yields every option as a key/value pair, for diagnostics.
func (o *Options) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		pairs := []struct {
			key   string
			value any
		}{
			{"hostnames", o.Hostnames()},
			{KeyPACURL, o.pacURL},
			{KeyPACFile, o.pacFile},
			{KeyCheckDNS, o.checkDNS},
			{KeyUseCache, o.useCache},
			{"purge_cache", o.purgeCache},
			{KeyCacheDir, o.cacheDir},
			{KeyCacheExpires, int(o.cacheExpires / time.Second)},
		}
		for _, p := range pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
