package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/internal/adapters/logger"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
)

const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.PortNodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(log), nil
		},
	})
}
