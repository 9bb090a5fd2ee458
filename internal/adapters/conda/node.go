package conda

import (
	"context"

	"github.com/condatools/condasnap/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.conda.manager"

func init() {
	graft.Register(graft.Node[ports.EnvironmentManager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EnvironmentManager, error) {
			return NewManager(), nil
		},
	})
}
