// Package config provides the persisted configuration store for pactester.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ConfigStore on top of a TOML or YAML file.
type Store struct {
	path   string
	logger ports.Logger
}

// NewStore creates a Store reading the file at path.
// An empty path means no configuration file.
func NewStore(path string, logger ports.Logger) *Store {
	if path != "" {
		path = filepath.Clean(path)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the configuration file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the configuration file.
// Problems are logged and never returned: the result is an empty config instead.
func (s *Store) Load() domain.RawConfig {
	if s.path == "" {
		s.logger.Info("Configuration file was not found: no config directory available.")
		return domain.RawConfig{}
	}

	//nolint:gosec // Path is provided by the user or the platform config dir
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info(fmt.Sprintf("Configuration file '%s' was not found.", s.path))
			return domain.RawConfig{}
		}
		s.warnDecode(zerr.Wrap(err, domain.ErrConfigDecodeFailed.Error()))
		return domain.RawConfig{}
	}

	values, err := decoderFor(s.path).decode(data)
	if err != nil {
		s.warnDecode(err)
		return domain.RawConfig{}
	}

	cfg := s.validate(values)
	cfg.Path = s.path

	s.logger.Info(fmt.Sprintf("Loaded configuration file '%s'. This config may be overridden by CLI.", s.path))

	return cfg
}

func (s *Store) warnDecode(err error) {
	tagged := domain.NewError(domain.KindConfigDecode, err)
	s.logger.Warn(fmt.Sprintf("Config file couldn't be loaded. Check file syntax: %v", tagged))
}

// validate turns the generic document into a RawConfig.
// Unknown keys and ill-typed values are reported and left out of the typed fields.
func (s *Store) validate(values map[string]any) domain.RawConfig {
	var cfg domain.RawConfig

	cfg.Unknown = DetectInvalidOptions(values)
	for _, key := range cfg.Unknown {
		s.logger.Warn(fmt.Sprintf("Invalid option found in config file: '%s'.", key))
	}

	for _, group := range DetectMutuallyExclusive(values) {
		quoted := make([]string, len(group))
		for i, key := range group {
			quoted[i] = "'" + key + "'"
		}
		s.logger.Warn(fmt.Sprintf(
			"Mutually exclusive options found together in config file: %s. "+
				"This may cause unexpected behaviour. Please, choose only one of them.",
			strings.Join(quoted, ", "),
		))
	}

	cfg.PACURL = s.stringValue(values, domain.KeyPACURL)
	cfg.PACFile = s.stringValue(values, domain.KeyPACFile)
	cfg.CheckDNS = s.boolValue(values, domain.KeyCheckDNS)
	cfg.UseCache = s.boolValue(values, domain.KeyUseCache)
	cfg.CacheDir = s.stringValue(values, domain.KeyCacheDir)
	cfg.CacheExpires = s.intValue(values, domain.KeyCacheExpires)

	return cfg
}

// DetectInvalidOptions returns the keys of values outside the allow-list, sorted.
func DetectInvalidOptions(values map[string]any) []string {
	var invalid []string
	for key := range values {
		if !slices.Contains(domain.ValidConfigKeys, key) {
			invalid = append(invalid, key)
		}
	}
	slices.Sort(invalid)
	return invalid
}

// DetectMutuallyExclusive returns, for every exclusive group, the keys that are set together.
func DetectMutuallyExclusive(values map[string]any) [][]string {
	var conflicts [][]string
	for _, group := range domain.MutuallyExclusiveKeys {
		var present []string
		for _, key := range group {
			if _, ok := values[key]; ok {
				present = append(present, key)
			}
		}
		if len(present) > 1 {
			conflicts = append(conflicts, present)
		}
	}
	return conflicts
}

func (s *Store) warnType(key, expected string) {
	err := domain.NewError(domain.KindInvalidOption, zerr.With(domain.ErrInvalidOption, "key", key))
	s.logger.Warn(fmt.Sprintf("Invalid value for option '%s' in config file: expected %s (%v).", key, expected, err))
}

func (s *Store) stringValue(values map[string]any, key string) *string {
	raw, ok := values[key]
	if !ok {
		return nil
	}
	v, ok := raw.(string)
	if !ok {
		s.warnType(key, "string")
		return nil
	}
	return &v
}

func (s *Store) boolValue(values map[string]any, key string) *bool {
	raw, ok := values[key]
	if !ok {
		return nil
	}
	v, ok := raw.(bool)
	if !ok {
		s.warnType(key, "boolean")
		return nil
	}
	return &v
}

func (s *Store) intValue(values map[string]any, key string) *int {
	raw, ok := values[key]
	if !ok {
		return nil
	}

	var v int
	switch n := raw.(type) {
	case int:
		v = n
	case int64:
		v = int(n)
	case uint64:
		v = int(n) //nolint:gosec // Config values are small
	default:
		s.warnType(key, "integer")
		return nil
	}
	return &v
}
