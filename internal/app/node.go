package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/internal/adapters/cas"        //nolint:depguard // Wired in app layer
	"github.com/mfraile/PyOxidizer/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"github.com/mfraile/PyOxidizer/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"github.com/mfraile/PyOxidizer/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/mfraile/PyOxidizer/internal/adapters/packaging"  //nolint:depguard // Wired in app layer
	"github.com/mfraile/PyOxidizer/internal/adapters/registry"   //nolint:depguard // Wired in app layer
	"github.com/mfraile/PyOxidizer/internal/adapters/standalone" //nolint:depguard // Wired in app layer
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
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
			standalone.NodeID,
			registry.NodeID,
			packaging.NodeID,
			fs.ScannerNodeID,
			cas.NodeID,
			logger.PortNodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.DistributionResolver](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[ports.DistributionRegistry](ctx)
	if err != nil {
		return nil, err
	}

	tool, err := graft.Dep[ports.PackagingTool](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.ResourceFinder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.DistributionStore](ctx)
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

	return New(resolver, reg, tool, finder, store, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, settings), nil
}
