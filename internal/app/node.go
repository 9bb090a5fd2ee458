package app

import (
	"context"

	"github.com/condatools/condasnap/internal/adapters/conda"    //nolint:depguard // Wired in app layer
	"github.com/condatools/condasnap/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/condatools/condasnap/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"github.com/condatools/condasnap/internal/core/ports"
	"github.com/grindlemire/graft"
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
			conda.NodeID,
			manifest.StoreNodeID,
			manifest.HasherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manager, err := graft.Dep[ports.EnvironmentManager](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manager, store, hasher, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    a,
				Logger: log,
			}, nil
		},
	})
}
