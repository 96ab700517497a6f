package script

import (
	"context"
	"sync"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
)

// Handle is a script-owned reference to a distribution that is resolved on
// first use. A successful resolution is kept for the life of the handle;
// a failed one is retried on the next use.
type Handle struct {
	mu sync.Mutex

	flavor   domain.DistributionFlavor
	location domain.DistributionLocation
	destDir  string
	resolver ports.DistributionResolver

	dist     ports.Distribution
	compiler ports.BytecodeCompiler
}

// NewHandle creates an unresolved handle.
func NewHandle(
	flavor domain.DistributionFlavor,
	location domain.DistributionLocation,
	destDir string,
	resolver ports.DistributionResolver,
) *Handle {
	return &Handle{
		flavor:   flavor,
		location: location,
		destDir:  destDir,
		resolver: resolver,
	}
}

// Flavor returns the requested flavor.
func (h *Handle) Flavor() domain.DistributionFlavor { return h.flavor }

// Location returns where the distribution archive lives.
func (h *Handle) Location() domain.DistributionLocation { return h.location }

// Resolved reports whether the distribution has been resolved.
func (h *Handle) Resolved() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dist != nil
}

// EnsureResolved resolves the distribution once and returns the shared snapshot.
func (h *Handle) EnsureResolved(ctx context.Context) (ports.Distribution, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ensureResolved(ctx)
}

func (h *Handle) ensureResolved(ctx context.Context) (ports.Distribution, error) {
	if h.dist != nil {
		return h.dist, nil
	}
	dist, err := h.resolver.Resolve(ctx, h.flavor, h.location, h.destDir)
	if err != nil {
		return nil, err
	}
	h.dist = dist
	return dist, nil
}

// CompileBytecode compiles source with the handle's compiler, starting it on first use.
func (h *Handle) CompileBytecode(
	ctx context.Context,
	source []byte,
	filename string,
	optimize domain.OptimizationLevel,
	mode domain.CompileMode,
) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.compiler == nil {
		dist, err := h.ensureResolved(ctx)
		if err != nil {
			return nil, err
		}
		compiler, err := dist.CreateCompiler(ctx)
		if err != nil {
			return nil, err
		}
		h.compiler = compiler
	}
	return h.compiler.Compile(ctx, source, filename, optimize, mode)
}

// Close stops the compiler if one was started.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.compiler == nil {
		return nil
	}
	err := h.compiler.Close()
	h.compiler = nil
	return err
}
