package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pactester/internal/adapters/logger"
	"go.trai.ch/pactester/internal/core/ports"
)

// NodeID is the unique identifier for the cache factory Graft node.
const NodeID graft.ID = "adapter.cache_factory"

func init() {
	graft.Register(graft.Node[ports.CacheFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
