package domain

// Config file keys.
const (
	KeyPACURL       = "pac_url"
	KeyPACFile      = "pac_file"
	KeyCheckDNS     = "check_dns"
	KeyUseCache     = "use_cache"
	KeyCacheDir     = "cache_dir"
	KeyCacheExpires = "cache_expires"
)

// ValidConfigKeys is the allow-list of keys accepted in the config file.
var ValidConfigKeys = []string{
	KeyPACURL,
	KeyPACFile,
	KeyCheckDNS,
	KeyUseCache,
	KeyCacheDir,
	KeyCacheExpires,
}

// MutuallyExclusiveKeys lists config key groups of which at most one may be set.
var MutuallyExclusiveKeys = [][]string{
	{KeyPACURL, KeyPACFile},
}

// RawConfig is the validated content of the persisted config file.
// A nil field means the key was absent.
type RawConfig struct {
	Path string

	PACURL       *string
	PACFile      *string
	CheckDNS     *bool
	UseCache     *bool
	CacheDir     *string
	CacheExpires *int

	// Unknown holds keys outside ValidConfigKeys, sorted.
	Unknown []string
}

// CLIArgs is the command line as the user typed it.
// A nil field means the flag was not provided.
type CLIArgs struct {
	Hostnames []string

	PACURL       *string
	PACFile      *string
	CheckDNS     *bool
	NoCache      *bool
	CacheDir     *string
	CacheExpires *int

	PurgeCache bool
	Verbose    bool
	Debug      bool
}
