// Package packaging runs Python packaging tools with a distribution's interpreter
// and collects the resources they install.
package packaging

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackagingTool = (*Tool)(nil)

// Tool implements ports.PackagingTool. Every install goes into a fresh
// directory under stagingDir so resources can reference their files lazily.
type Tool struct {
	executor   ports.Executor
	finder     ports.ResourceFinder
	logger     ports.Logger
	stagingDir string
	newID      func() string
}

// NewTool creates a new Tool.
func NewTool(executor ports.Executor, finder ports.ResourceFinder, logger ports.Logger, stagingDir string) *Tool {
	return &Tool{
		executor:   executor,
		finder:     finder,
		logger:     logger,
		stagingDir: stagingDir,
		newID:      uuid.NewString,
	}
}

// PipInstall runs `pip install --target` and returns the resources found in the target.
func (t *Tool) PipInstall(
	ctx context.Context,
	dist ports.Distribution,
	args []string,
	extraEnvs map[string]string,
) ([]domain.Resource, error) {
	target, err := t.stage("pip")
	if err != nil {
		return nil, err
	}

	cmd := domain.Command{
		Args: slices.Concat(
			[]string{dist.PythonExe(), "-m", "pip", "--disable-pip-version-check", "install", "--target", target},
			args,
		),
		Env: pythonEnv(extraEnvs),
	}
	if _, err := t.executor.Run(ctx, cmd); err != nil {
		return nil, zerr.With(err, "target", target)
	}

	t.logger.Debug("collecting resources from " + target)
	return t.finder.FindResources(ctx, target)
}

// ReadVirtualenv returns the resources installed in the virtualenv at path.
func (t *Tool) ReadVirtualenv(ctx context.Context, _ ports.Distribution, path string) ([]domain.Resource, error) {
	site, err := findSitePackages(path)
	if err != nil {
		return nil, err
	}
	return t.finder.FindResources(ctx, site)
}

// SetupPyInstall runs `setup.py install --prefix` from packagePath and returns
// the resources found in the prefix's site-packages.
func (t *Tool) SetupPyInstall(
	ctx context.Context,
	dist ports.Distribution,
	packagePath string,
	extraEnvs map[string]string,
	extraGlobalArgs []string,
) ([]domain.Resource, error) {
	prefix, err := t.stage("setup-py")
	if err != nil {
		return nil, err
	}

	args := []string{dist.PythonExe(), "setup.py"}
	args = append(args, extraGlobalArgs...)
	args = append(args, "install", "--prefix", prefix, "--no-compile")

	cmd := domain.Command{
		Args: args,
		Dir:  packagePath,
		Env:  pythonEnv(extraEnvs),
	}
	if _, err := t.executor.Run(ctx, cmd); err != nil {
		return nil, zerr.With(err, "package_path", packagePath)
	}

	site, err := findSitePackages(prefix)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("collecting resources from " + site)
	return t.finder.FindResources(ctx, site)
}

// stage creates an empty, uniquely named install directory.
func (t *Tool) stage(kind string) (string, error) {
	dir, err := filepath.Abs(filepath.Join(t.stagingDir, kind+"-"+t.newID()))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve staging directory"), "path", t.stagingDir)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create staging directory"), "path", dir)
	}
	return dir, nil
}

// pythonEnv keeps installs away from the user's site and bytecode caches.
func pythonEnv(extra map[string]string) map[string]string {
	env := map[string]string{
		"PYTHONNOUSERSITE":        "1",
		"PYTHONDONTWRITEBYTECODE": "1",
		"PIP_NO_INPUT":            "1",
	}
	for k, v := range extra {
		env[k] = v
	}
	return env
}

// findSitePackages locates site-packages under an install prefix or virtualenv.
func findSitePackages(prefix string) (string, error) {
	candidates, err := filepath.Glob(filepath.Join(prefix, "lib", "python*", "site-packages"))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSitePackagesNotFound.Error()), "path", prefix)
	}
	candidates = append(candidates, filepath.Join(prefix, "Lib", "site-packages"))

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c, nil
		}
	}
	return "", zerr.With(domain.ErrSitePackagesNotFound, "path", prefix)
}
