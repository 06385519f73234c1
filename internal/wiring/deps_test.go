package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pactester/internal/core/ports"
	"go.trai.ch/pactester/internal/engine/options"
	_ "go.trai.ch/pactester/internal/wiring"
)

// TestGraftNodes ensures every registered node can be built from the graph.
// graft.AssertDepsValid infers dependency IDs from the package name of the
// type passed to Dep[T], which conflicts with many nodes sharing ports.
func TestGraftNodes(t *testing.T) {
	ctx := context.Background()

	t.Run("logger", func(t *testing.T) { execute[ports.Logger](ctx, t) })
	t.Run("config store", func(t *testing.T) { execute[ports.ConfigStore](ctx, t) })
	t.Run("options resolver", func(t *testing.T) { execute[*options.Resolver](ctx, t) })
	t.Run("cache factory", func(t *testing.T) { execute[ports.CacheFactory](ctx, t) })
	t.Run("source fetcher", func(t *testing.T) { execute[ports.SourceFetcher](ctx, t) })
	t.Run("host resolver", func(t *testing.T) { execute[ports.HostResolver](ctx, t) })
	t.Run("evaluator", func(t *testing.T) { execute[ports.Evaluator](ctx, t) })
}

func execute[T any](ctx context.Context, t *testing.T) {
	t.Helper()
	v, _, err := graft.ExecuteFor[T](ctx)
	require.NoError(t, err)
	require.NotNil(t, v)
}
