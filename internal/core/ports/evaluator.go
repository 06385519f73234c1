package ports

import "context"

// Evaluator defines the interface for the PAC evaluation engine.
//
//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// Compile loads the PAC document at path.
	Compile(path string) (ProxyFinder, error)
}

// ProxyFinder answers proxy lookups for a compiled PAC document.
type ProxyFinder interface {
	// FindProxyForURL returns the proxy string the document selects for url.
	FindProxyForURL(ctx context.Context, url, host string) (string, error)
}
