package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/internal/adapters/logger"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	NodeID         graft.ID = "adapter.config_loader"
	SettingsNodeID graft.ID = "adapter.config.settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.PortNodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get working directory")
			}
			return loader.Load(FindProjectRoot(cwd))
		},
	})
}
