package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// ProgName is the program name, used for the config directory.
	ProgName = "pactester"

	// ConfigFileName is the name of the persisted configuration file.
	ConfigFileName = "config.toml"

	// ConfigPathEnv overrides the configuration file location.
	ConfigPathEnv = "PACTESTER_CONFIG"

	// CacheDirName is the name of the default cache directory under the temp dir.
	CacheDirName = "pactester-cache"

	// DefaultCacheExpires is how long a downloaded PAC document stays fresh.
	DefaultCacheExpires = 24 * time.Hour

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDir returns the default cache directory.
// It joins the system temp dir and pactester-cache.
func DefaultCacheDir() string {
	return filepath.Join(os.TempDir(), CacheDirName)
}

// DefaultConfigPath returns the configuration file location.
// $PACTESTER_CONFIG wins; otherwise it is config.toml in the user config dir.
// It returns "" when no config dir can be determined.
func DefaultConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ProgName, ConfigFileName)
}
