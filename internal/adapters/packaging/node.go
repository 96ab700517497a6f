package packaging

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/internal/adapters/config"
	"github.com/mfraile/PyOxidizer/internal/adapters/fs"
	"github.com/mfraile/PyOxidizer/internal/adapters/logger"
	"github.com/mfraile/PyOxidizer/internal/adapters/shell"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
)

const NodeID graft.ID = "adapter.packaging"

func init() {
	graft.Register(graft.Node[ports.PackagingTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.ScannerNodeID, logger.PortNodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.PackagingTool, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			finder, err := graft.Dep[ports.ResourceFinder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			staging := filepath.Join(filepath.Dir(settings.DistributionsPath), domain.StagingDirName)
			return NewTool(executor, finder, log, staging), nil
		},
	})
}
