package pac

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pactester/internal/adapters/dns"
	"go.trai.ch/pactester/internal/adapters/logger"
	"go.trai.ch/pactester/internal/core/ports"
)

// NodeID is the unique identifier for the PAC evaluator Graft node.
const NodeID graft.ID = "adapter.evaluator"

func init() {
	graft.Register(graft.Node[ports.Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{dns.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Evaluator, error) {
			hosts, err := graft.Dep[ports.HostResolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvaluator(hosts, log), nil
		},
	})
}
