package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResourceFinder = (*Scanner)(nil)

var extensionSuffixes = []string{".so", ".pyd", ".dylib"}

// Scanner discovers Python resources in a directory tree.
type Scanner struct {
	walker *Walker
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker) *Scanner {
	return &Scanner{walker: walker}
}

// FindResources classifies every file under root. Source files become
// source modules, native libraries become extension modules and any other
// file inside a package becomes a package resource. Files outside of any
// package that are not modules are ignored. Results follow lexical walk order.
func (s *Scanner) FindResources(ctx context.Context, root string) ([]domain.Resource, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrResourceScanFailed.Error()), "path", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrResourceScanFailed, "path", root)
	}

	// Directories holding an __init__.py, keyed by slash-separated relative path.
	packages := map[string]bool{}
	var resources []domain.Resource

	for entry, err := range s.walker.Walk(root) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrResourceScanFailed.Error()), "path", root)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.Dir {
			if isPackageDir(entry.Path) && parentIsPackageOrRoot(entry.Rel, packages) {
				packages[entry.Rel] = true
			}
			continue
		}

		if r, ok := classify(entry, packages); ok {
			resources = append(resources, r)
		}
	}

	return resources, nil
}

func classify(entry Entry, packages map[string]bool) (domain.Resource, bool) {
	dir, base := path.Split(entry.Rel)
	dir = strings.TrimSuffix(dir, "/")

	switch {
	case strings.HasSuffix(base, ".py"):
		if !isImportable(dir, packages) {
			return nil, false
		}
		stem := strings.TrimSuffix(base, ".py")
		if stem == "__init__" {
			return domain.SourceModule{
				Name:      dottedName(dir),
				Source:    domain.FilePath(entry.Path),
				IsPackage: true,
			}, dir != ""
		}
		return domain.SourceModule{
			Name:   joinName(dottedName(dir), stem),
			Source: domain.FilePath(entry.Path),
		}, true

	case isExtension(base):
		if !isImportable(dir, packages) {
			return nil, false
		}
		stem, _, _ := strings.Cut(base, ".")
		return domain.ExtensionModule{
			Name:     joinName(dottedName(dir), stem),
			Filename: entry.Path,
			Module:   domain.FilePath(entry.Path),
		}, true

	default:
		pkg, ok := leafPackage(dir, packages)
		if !ok {
			return nil, false
		}
		relName := strings.TrimPrefix(strings.TrimPrefix(entry.Rel, pkg), "/")
		return domain.PackageResource{
			LeafPackage:  domain.NewInternedString(dottedName(pkg)),
			RelativeName: relName,
			Data:         domain.FilePath(entry.Path),
		}, true
	}
}

// isImportable reports whether modules in dir can be imported: dir is the
// root or a package reachable from it.
func isImportable(dir string, packages map[string]bool) bool {
	return dir == "" || packages[dir]
}

// leafPackage returns the nearest package enclosing dir.
func leafPackage(dir string, packages map[string]bool) (string, bool) {
	for dir != "" && dir != "." {
		if packages[dir] {
			return dir, true
		}
		dir = path.Dir(dir)
	}
	return "", false
}

func parentIsPackageOrRoot(rel string, packages map[string]bool) bool {
	parent := path.Dir(rel)
	return parent == "." || packages[parent]
}

func isPackageDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "__init__.py"))
	return err == nil && !info.IsDir()
}

func isExtension(base string) bool {
	for _, suffix := range extensionSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

func dottedName(rel string) string {
	return strings.ReplaceAll(rel, "/", ".")
}

func joinName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
