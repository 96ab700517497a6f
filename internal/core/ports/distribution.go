package ports

import (
	"context"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=distribution.go -destination=mocks/mock_distribution.go -package=mocks

// DistributionResolver turns a flavor and location into a usable distribution.
type DistributionResolver interface {
	// Resolve fetches, verifies and extracts the distribution under destDir.
	Resolve(
		ctx context.Context,
		flavor domain.DistributionFlavor,
		location domain.DistributionLocation,
		destDir string,
	) (Distribution, error)
}

// Distribution is a resolved, immutable Python distribution.
type Distribution interface {
	Flavor() domain.DistributionFlavor
	// PythonExe is the path of the distribution's interpreter.
	PythonExe() string
	// CreateCompiler starts a bytecode compiler backed by the distribution's interpreter.
	CreateCompiler(ctx context.Context) (BytecodeCompiler, error)
	FilterExtensionModules(
		filter domain.ExtensionModuleFilter,
		preferred map[string]string,
	) ([]domain.ExtensionModule, error)
	SourceModules() ([]domain.SourceModule, error)
	ResourceDatas() ([]domain.PackageResource, error)
	// IsTestPackage reports whether the named package only holds the
	// distribution's own test suite.
	IsTestPackage(name string) bool
	BuildExecutable(params domain.ExecutableParams) (*domain.ExecutableBuilder, error)
}

// BytecodeCompiler compiles Python source to bytecode.
// Implementations are not safe for concurrent use.
type BytecodeCompiler interface {
	Compile(
		ctx context.Context,
		source []byte,
		filename string,
		optimize domain.OptimizationLevel,
		mode domain.CompileMode,
	) ([]byte, error)
	Close() error
}

// DistributionRegistry knows the default distribution for each flavor and target.
type DistributionRegistry interface {
	DefaultLocation(flavor domain.DistributionFlavor, triple string) (domain.DistributionLocation, error)
	Entries() []domain.RegistryEntry
}

// Fetcher makes a distribution archive available on the local filesystem.
type Fetcher interface {
	// Fetch returns the path of a local archive whose SHA-256 matches the location's checksum.
	Fetch(ctx context.Context, location domain.DistributionLocation, destDir string) (string, error)
}
