package manifest

import (
	"context"

	"github.com/condatools/condasnap/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	StoreNodeID  graft.ID = "adapter.manifest.store"
	HasherNodeID graft.ID = "adapter.manifest.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
