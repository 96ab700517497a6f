package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
)

const (
	// NodeID provides the concrete logger so the CLI can switch modes.
	NodeID graft.ID = "adapter.logger"
	// PortNodeID exposes the same instance as ports.Logger.
	PortNodeID graft.ID = "adapter.logger.port"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        PortNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			return graft.Dep[*Logger](ctx)
		},
	})
}
