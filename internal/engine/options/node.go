package options

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pactester/internal/adapters/logger"
	"go.trai.ch/pactester/internal/core/ports"
)

// NodeID is the unique identifier for the options resolver Graft node.
const NodeID graft.ID = "engine.options"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
