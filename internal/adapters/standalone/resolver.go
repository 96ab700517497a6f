// Package standalone resolves python-build-standalone distributions.
package standalone

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mfraile/PyOxidizer/internal/adapters/fs"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// archivesDirName holds downloaded archives under the distributions directory.
const archivesDirName = "archives"

var _ ports.DistributionResolver = (*Resolver)(nil)

// Resolver implements ports.DistributionResolver for standalone distributions.
// Extractions are keyed by source, checksum and flavor, and reused while their
// digest matches the recorded one.
type Resolver struct {
	fetcher  ports.Fetcher
	store    ports.DistributionStore
	finder   ports.ResourceFinder
	hasher   *fs.Hasher
	verifier *fs.Verifier
	logger   ports.Logger

	requestGroup singleflight.Group
	now          func() time.Time
}

// NewResolver creates a new Resolver.
func NewResolver(
	fetcher ports.Fetcher,
	store ports.DistributionStore,
	finder ports.ResourceFinder,
	hasher *fs.Hasher,
	verifier *fs.Verifier,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		fetcher:  fetcher,
		store:    store,
		finder:   finder,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Resolve implements ports.DistributionResolver.
func (r *Resolver) Resolve(
	ctx context.Context,
	flavor domain.DistributionFlavor,
	location domain.DistributionLocation,
	destDir string,
) (ports.Distribution, error) {
	key := fs.ComputeKey(location.Source(), location.Checksum, flavor.String())

	// The shared resolution outlives any one caller; each caller stops waiting
	// when its own context ends.
	flight := r.requestGroup.DoChan(key, func() (any, error) {
		return r.resolve(context.WithoutCancel(ctx), key, flavor, location, destDir)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Distribution), nil
	}
}

func (r *Resolver) resolve(
	ctx context.Context,
	key string,
	flavor domain.DistributionFlavor,
	location domain.DistributionLocation,
	destDir string,
) (*Distribution, error) {
	root := filepath.Join(destDir, key)

	if dist, ok := r.reuse(ctx, key, root, flavor); ok {
		r.logger.Debug(fmt.Sprintf("reusing extracted distribution %s", root))
		return dist, nil
	}

	archive, err := r.fetcher.Fetch(ctx, location, filepath.Join(destDir, archivesDirName))
	if err != nil {
		return nil, err
	}

	if err := r.extract(archive, root); err != nil {
		return nil, err
	}

	dist, digest, err := r.load(ctx, root, flavor)
	if err != nil {
		return nil, err
	}

	record := domain.DistributionRecord{
		Key:        key,
		Flavor:     flavor,
		Source:     location.Source(),
		Checksum:   location.Checksum,
		Path:       root,
		PythonExe:  dist.PythonExe(),
		Version:    dist.meta.PythonVersion,
		Digest:     digest,
		ResolvedAt: r.now().UTC(),
	}
	if err := r.store.Put(record); err != nil {
		r.logger.Warn(fmt.Sprintf("failed to record distribution %s: %v", key, err))
	}

	r.logger.Info(fmt.Sprintf("resolved Python %s distribution (%s)", dist.meta.PythonVersion, flavor))
	return dist, nil
}

// reuse loads a previous extraction when its record and on-disk metadata agree.
func (r *Resolver) reuse(
	ctx context.Context,
	key, root string,
	flavor domain.DistributionFlavor,
) (*Distribution, bool) {
	record, err := r.store.Get(key)
	if err != nil || record == nil || record.Digest == "" {
		return nil, false
	}

	ok, err := r.verifier.VerifyPaths(root, []string{filepath.Join(distDirName, metadataFileName)})
	if err != nil || !ok {
		return nil, false
	}

	dist, digest, err := r.load(ctx, root, flavor)
	if err != nil {
		r.logger.Debug(fmt.Sprintf("discarding extracted distribution %s: %v", root, err))
		return nil, false
	}
	if digest != record.Digest {
		return nil, false
	}
	return dist, true
}

// extract unpacks archive into a staging directory and moves it over root.
func (r *Resolver) extract(archive, root string) error {
	staging := root + ".partial"
	if err := os.RemoveAll(staging); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear staging directory"), "path", staging)
	}

	r.logger.Debug(fmt.Sprintf("extracting %s", archive))
	if err := Extract(archive, staging); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	if err := os.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear extraction directory"), "path", root)
	}
	if err := os.Rename(staging, root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move extracted distribution"), "path", root)
	}
	return nil
}

// load parses metadata, then scans the standard library while checking the
// extension module files. The digest covers PYTHON.json and the standard
// library tree.
func (r *Resolver) load(
	ctx context.Context,
	root string,
	flavor domain.DistributionFlavor,
) (*Distribution, string, error) {
	meta, err := ReadMetadata(root)
	if err != nil {
		return nil, "", err
	}
	if err := checkFlavor(meta, flavor); err != nil {
		return nil, "", err
	}

	dist := &Distribution{root: root, flavor: flavor, meta: meta}
	var digest string
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := r.finder.FindResources(groupCtx, meta.PythonStdlib)
		if err != nil {
			return err
		}
		var sources []domain.SourceModule
		var resources []domain.PackageResource
		for _, res := range found {
			switch v := res.(type) {
			case domain.SourceModule:
				sources = append(sources, v)
			case domain.PackageResource:
				resources = append(resources, v)
			}
		}
		mu.Lock()
		dist.sources, dist.resources = sources, resources
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		var libs []string
		for _, name := range meta.ExtensionNames() {
			for _, em := range meta.Extensions[name] {
				if em.Filename == "" {
					continue
				}
				rel, err := filepath.Rel(root, em.Filename)
				if err != nil {
					return zerr.With(zerr.Wrap(err, domain.ErrMetadataInvalid.Error()), "path", em.Filename)
				}
				libs = append(libs, rel)
			}
		}
		ok, err := r.verifier.VerifyPaths(root, libs)
		if err != nil {
			return err
		}
		if !ok {
			return zerr.With(domain.ErrMetadataInvalid, "reason", "extension module file missing")
		}

		sum, err := r.hasher.ComputeFileHash(metadataPath(root))
		if err != nil {
			return err
		}
		tree, err := r.hasher.ComputeTreeHash(meta.PythonStdlib)
		if err != nil {
			return err
		}
		mu.Lock()
		digest = fmt.Sprintf("%016x-%s", sum, tree)
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, "", err
	}
	return dist, digest, nil
}
