// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/pactester/internal/core/domain"

// ConfigStore defines the interface for loading the persisted configuration.
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Load reads the configuration file.
	// It never fails: a missing or malformed file is reported and yields an empty config.
	Load() domain.RawConfig
}
