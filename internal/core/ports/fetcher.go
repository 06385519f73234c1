package ports

import (
	"context"

	"go.trai.ch/pactester/internal/core/domain"
)

// SourceFetcher defines the interface for turning the configured source into a local PAC file.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type SourceFetcher interface {
	// Fetch returns the path of a UTF-8 PAC document ready for evaluation.
	// The file exists when Fetch returns.
	Fetch(ctx context.Context, opts *domain.Options, cache ContentCache) (string, error)
}
