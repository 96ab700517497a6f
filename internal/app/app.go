// Package app implements the application layer for pyoxidizer.
package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"github.com/mfraile/PyOxidizer/internal/script"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App evaluates configuration scripts against the configured collaborators.
type App struct {
	resolver  ports.DistributionResolver
	registry  ports.DistributionRegistry
	packaging ports.PackagingTool
	finder    ports.ResourceFinder
	store     ports.DistributionStore
	logger    ports.Logger
	settings  *domain.Settings
	newID     func() string
}

// New creates a new App instance.
func New(
	resolver ports.DistributionResolver,
	registry ports.DistributionRegistry,
	packaging ports.PackagingTool,
	finder ports.ResourceFinder,
	store ports.DistributionStore,
	logger ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		resolver:  resolver,
		registry:  registry,
		packaging: packaging,
		finder:    finder,
		store:     store,
		logger:    logger,
		settings:  settings,
		newID:     uuid.NewString,
	}
}

// EvalOptions overrides the project settings for one evaluation.
type EvalOptions struct {
	Script      string
	BuildTarget string
}

// Result is the outcome of a successful evaluation.
type Result struct {
	SessionID   string
	Script      string
	Executables []*domain.ExecutableBuilder
}

// Evaluate runs the configuration script on a worker goroutine. Cancelling
// ctx aborts the script and every collaborator call it has in flight.
func (a *App) Evaluate(ctx context.Context, opts EvalOptions) (*Result, error) {
	path := opts.Script
	if path == "" {
		path = a.settings.Script
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve script path"), "path", path)
	}

	source, err := os.ReadFile(path) //nolint:gosec // script path comes from the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrScriptNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScriptNotFound.Error()), "path", path)
	}

	target := opts.BuildTarget
	if target == "" {
		target = a.settings.BuildTarget
	}

	session := a.newID()
	a.logger.Debug("evaluation session " + session + " for " + path)

	engine := script.NewEngine(script.Env{
		Resolver:         a.resolver,
		Registry:         a.registry,
		Packaging:        a.packaging,
		Finder:           a.finder,
		Logger:           a.logger,
		DistributionsDir: a.settings.DistributionsPath,
		BuildTarget:      target,
		HostTriple:       domain.HostTriple(),
		Cwd:              filepath.Dir(path),
		ConfigPath:       path,
	})
	defer func() {
		if err := engine.Close(); err != nil {
			a.logger.Warn("failed to stop bytecode compiler: " + err.Error())
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Eval(gctx, path, string(source))
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	executables := engine.Executables()
	a.logger.Info("evaluated " + filepath.Base(path) + " (" + strconv.Itoa(len(executables)) + " executables)")

	return &Result{
		SessionID:   session,
		Script:      path,
		Executables: executables,
	}, nil
}

// KnownDistributions returns the registry's published distributions.
func (a *App) KnownDistributions() []domain.RegistryEntry {
	return a.registry.Entries()
}

// ResolvedDistributions returns the distributions extracted on this machine.
func (a *App) ResolvedDistributions() ([]domain.DistributionRecord, error) {
	records, err := a.store.List()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list resolved distributions")
	}
	return records, nil
}
