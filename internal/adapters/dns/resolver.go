// Package dns resolves hostnames through the system resolver.
package dns

import (
	"context"
	"net"

	"go.trai.ch/zerr"
)

// Resolver implements ports.HostResolver with net.Resolver.
type Resolver struct {
	resolver *net.Resolver
}

// NewResolver creates a Resolver. A nil resolver means net.DefaultResolver.
func NewResolver(resolver *net.Resolver) *Resolver {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &Resolver{resolver: resolver}
}

// Resolve returns the addresses of host.
func (r *Resolver) Resolve(ctx context.Context, host string) ([]string, error) {
	addrs, err := r.resolver.LookupHost(ctx, host)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve host"), "host", host)
	}
	return addrs, nil
}
