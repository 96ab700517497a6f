package app

import (
	"github.com/mfraile/PyOxidizer/internal/adapters/logger"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   *logger.Logger
	Settings *domain.Settings
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log *logger.Logger, settings *domain.Settings) *Components {
	return &Components{
		App:      app,
		Logger:   log,
		Settings: settings,
	}
}
