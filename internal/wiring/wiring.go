// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/mfraile/PyOxidizer/internal/adapters/cas"
	_ "github.com/mfraile/PyOxidizer/internal/adapters/config"
	_ "github.com/mfraile/PyOxidizer/internal/adapters/fetch"
	_ "github.com/mfraile/PyOxidizer/internal/adapters/fs"
	_ "github.com/mfraile/PyOxidizer/internal/adapters/logger"
	_ "github.com/mfraile/PyOxidizer/internal/adapters/packaging"
	_ "github.com/mfraile/PyOxidizer/internal/adapters/registry"
	_ "github.com/mfraile/PyOxidizer/internal/adapters/shell"
	_ "github.com/mfraile/PyOxidizer/internal/adapters/standalone"
	// Register app nodes.
	_ "github.com/mfraile/PyOxidizer/internal/app"
)
