// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pactester/internal/adapters/cas"
	_ "go.trai.ch/pactester/internal/adapters/config"
	_ "go.trai.ch/pactester/internal/adapters/dns"
	_ "go.trai.ch/pactester/internal/adapters/fetch"
	_ "go.trai.ch/pactester/internal/adapters/logger"
	_ "go.trai.ch/pactester/internal/adapters/pac"
	// Register app and engine nodes.
	_ "go.trai.ch/pactester/internal/app"
	_ "go.trai.ch/pactester/internal/engine/options"
)
