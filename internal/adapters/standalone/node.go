package standalone

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/internal/adapters/cas"
	"github.com/mfraile/PyOxidizer/internal/adapters/fetch"
	"github.com/mfraile/PyOxidizer/internal/adapters/fs"
	"github.com/mfraile/PyOxidizer/internal/adapters/logger"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
)

const NodeID graft.ID = "adapter.standalone.resolver"

func init() {
	graft.Register(graft.Node[ports.DistributionResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			cas.NodeID,
			fs.ScannerNodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			logger.PortNodeID,
		},
		Run: func(ctx context.Context) (ports.DistributionResolver, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.DistributionStore](ctx)
			if err != nil {
				return nil, err
			}
			finder, err := graft.Dep[ports.ResourceFinder](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[*fs.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fetcher, store, finder, hasher, verifier, log), nil
		},
	})
}
