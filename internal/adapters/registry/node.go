package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/internal/adapters/config"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
)

const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.DistributionRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.DistributionRegistry, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if settings.Registry != "" {
				return LoadFile(settings.Registry)
			}
			return Default()
		},
	})
}
