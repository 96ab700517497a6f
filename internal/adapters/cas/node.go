package cas

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/internal/adapters/config"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
)

const NodeID graft.ID = "adapter.distribution_store"

func init() {
	graft.Register(graft.Node[ports.DistributionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.DistributionStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(filepath.Join(filepath.Dir(settings.DistributionsPath), domain.StoreFileName))
		},
	})
}
