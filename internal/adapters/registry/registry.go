// Package registry provides the known distributions for each flavor and target triple.
package registry

import (
	_ "embed"
	"os"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed distributions.yaml
var embedded []byte

var _ ports.DistributionRegistry = (*Registry)(nil)

// Registryfile represents the structure of a distributions registry file.
type Registryfile struct {
	Version       string     `yaml:"version"`
	Distributions []EntryDTO `yaml:"distributions"`
}

// EntryDTO is a registry entry as written in YAML.
type EntryDTO struct {
	Flavor    string `yaml:"flavor"`
	Target    string `yaml:"target"`
	URL       string `yaml:"url"`
	LocalPath string `yaml:"local_path"`
	SHA256    string `yaml:"sha256"`
}

// Registry implements ports.DistributionRegistry over an ordered entry list.
type Registry struct {
	entries []domain.RegistryEntry
}

// Default returns the registry compiled into the binary.
func Default() (*Registry, error) {
	return Parse(embedded)
}

// LoadFile reads a registry from path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from project settings
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()), "path", path)
	}
	return Parse(data)
}

// Parse builds a registry from YAML.
func Parse(data []byte) (*Registry, error) {
	var file Registryfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
	}

	entries := make([]domain.RegistryEntry, 0, len(file.Distributions))
	for i, dto := range file.Distributions {
		flavor, err := domain.ParseFlavor(dto.Flavor)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()), "entry", i)
		}
		if dto.Target == "" {
			return nil, zerr.With(zerr.With(domain.ErrRegistryParseFailed, "entry", i), "reason", "missing target")
		}

		var location domain.DistributionLocation
		switch {
		case dto.URL != "" && dto.LocalPath != "":
			return nil, zerr.With(zerr.With(domain.ErrRegistryParseFailed, "entry", i), "reason", "both url and local_path set")
		case dto.URL != "":
			location = domain.URLLocation(dto.URL, dto.SHA256)
		case dto.LocalPath != "":
			location = domain.LocalLocation(dto.LocalPath, dto.SHA256)
		default:
			return nil, zerr.With(zerr.With(domain.ErrRegistryParseFailed, "entry", i), "reason", "missing url or local_path")
		}

		entries = append(entries, domain.RegistryEntry{
			Flavor:   flavor,
			Triple:   dto.Target,
			Location: location,
		})
	}

	return &Registry{entries: entries}, nil
}

// DefaultLocation returns the first entry matching flavor and triple.
func (r *Registry) DefaultLocation(flavor domain.DistributionFlavor, triple string) (domain.DistributionLocation, error) {
	for _, e := range r.entries {
		if e.Flavor == flavor && e.Triple == triple {
			return e.Location, nil
		}
	}
	err := zerr.With(domain.ErrNoDefaultDistribution, "flavor", flavor.String())
	return domain.DistributionLocation{}, zerr.With(err, "target", triple)
}

// Entries returns every entry in file order.
func (r *Registry) Entries() []domain.RegistryEntry {
	out := make([]domain.RegistryEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
