package ports

import (
	"context"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=packaging.go -destination=mocks/mock_packaging.go -package=mocks

// PackagingTool installs Python packages with a distribution and collects the results.
type PackagingTool interface {
	PipInstall(ctx context.Context, dist Distribution, args []string, extraEnvs map[string]string) ([]domain.Resource, error)
	ReadVirtualenv(ctx context.Context, dist Distribution, path string) ([]domain.Resource, error)
	SetupPyInstall(
		ctx context.Context,
		dist Distribution,
		packagePath string,
		extraEnvs map[string]string,
		extraGlobalArgs []string,
	) ([]domain.Resource, error)
}

// ResourceFinder discovers Python resources in a directory tree.
type ResourceFinder interface {
	// FindResources returns resources under root in lexical walk order.
	FindResources(ctx context.Context, root string) ([]domain.Resource, error)
}
