package ports

import "context"

// HostResolver defines the interface for resolving hostnames through DNS.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type HostResolver interface {
	// Resolve returns the addresses of host.
	Resolve(ctx context.Context, host string) ([]string, error)
}
