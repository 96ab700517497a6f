package ports

import "github.com/mfraile/PyOxidizer/internal/core/domain"

// ConfigLoader defines the interface for loading project settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads pyoxidizer.yaml from dir. A missing file yields zero settings.
	Load(dir string) (*domain.Settings, error)
}
