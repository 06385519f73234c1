package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pactester/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pactester/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/pactester/internal/adapters/dns"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pactester/internal/adapters/fetch"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pactester/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/pactester/internal/adapters/pac"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pactester/internal/core/ports"
	"go.trai.ch/pactester/internal/engine/options"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			options.NodeID,
			cas.NodeID,
			fetch.NodeID,
			pac.NodeID,
			dns.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.ConfigStore](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*options.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	caches, err := graft.Dep[ports.CacheFactory](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.SourceFetcher](ctx)
	if err != nil {
		return nil, err
	}

	evaluator, err := graft.Dep[ports.Evaluator](ctx)
	if err != nil {
		return nil, err
	}

	hosts, err := graft.Dep[ports.HostResolver](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, resolver, caches, fetcher, evaluator, hosts, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
