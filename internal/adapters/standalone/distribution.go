package standalone

import (
	"context"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Distribution = (*Distribution)(nil)

// Distribution is an extracted python-build-standalone distribution.
type Distribution struct {
	root      string
	flavor    domain.DistributionFlavor
	meta      *Metadata
	sources   []domain.SourceModule
	resources []domain.PackageResource
}

// Root returns the extraction directory.
func (d *Distribution) Root() string { return d.root }

// Metadata returns the parsed PYTHON.json.
func (d *Distribution) Metadata() *Metadata { return d.meta }

// Flavor implements ports.Distribution.
func (d *Distribution) Flavor() domain.DistributionFlavor { return d.flavor }

// PythonExe implements ports.Distribution.
func (d *Distribution) PythonExe() string { return d.meta.PythonExe }

// CreateCompiler implements ports.Distribution.
func (d *Distribution) CreateCompiler(ctx context.Context) (ports.BytecodeCompiler, error) {
	return StartCompiler(ctx, d.meta.PythonExe)
}

// SourceModules implements ports.Distribution.
func (d *Distribution) SourceModules() ([]domain.SourceModule, error) {
	return append([]domain.SourceModule(nil), d.sources...), nil
}

// ResourceDatas implements ports.Distribution.
func (d *Distribution) ResourceDatas() ([]domain.PackageResource, error) {
	return append([]domain.PackageResource(nil), d.resources...), nil
}

// IsTestPackage implements ports.Distribution.
func (d *Distribution) IsTestPackage(name string) bool {
	return d.meta.IsTestPackage(name)
}

// FilterExtensionModules implements ports.Distribution.
// Modules are returned by name; each name resolves to its preferred variant or the first declared one.
func (d *Distribution) FilterExtensionModules(
	filter domain.ExtensionModuleFilter,
	preferred map[string]string,
) ([]domain.ExtensionModule, error) {
	var out []domain.ExtensionModule

	for _, name := range d.meta.ExtensionNames() {
		em, err := pickVariant(d.meta.Extensions[name], preferred[name])
		if err != nil {
			return nil, err
		}
		keep, err := keepExtension(em, filter)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, em)
		}
	}
	return out, nil
}

func pickVariant(variants []domain.ExtensionModule, want string) (domain.ExtensionModule, error) {
	if want == "" {
		return variants[0], nil
	}
	for _, v := range variants {
		if v.Variant == want {
			return v, nil
		}
	}
	err := zerr.With(domain.ErrMetadataInvalid, "extension", variants[0].Name)
	return domain.ExtensionModule{}, zerr.With(err, "unknown_variant", want)
}

func keepExtension(em domain.ExtensionModule, filter domain.ExtensionModuleFilter) (bool, error) {
	var keep bool
	switch filter {
	case domain.FilterAll:
		keep = true
	case domain.FilterMinimal:
		keep = em.Builtin
	case domain.FilterNoLibraries:
		keep = !em.LinksNonSystemLibraries()
	case domain.FilterNoGPL:
		keep = !em.IsGPL()
	default:
		err := zerr.Wrap(domain.ErrUnknownExtensionFilter, "cannot filter extension modules")
		return false, zerr.With(err, "filter", int(filter))
	}
	return keep || em.Required, nil
}

// BuildExecutable implements ports.Distribution.
func (d *Distribution) BuildExecutable(params domain.ExecutableParams) (*domain.ExecutableBuilder, error) {
	if d.meta.TargetTriple != "" && params.TargetTriple != "" && params.TargetTriple != d.meta.TargetTriple {
		err := zerr.With(domain.ErrUnsupportedFlavor, "target_triple", params.TargetTriple)
		return nil, zerr.With(err, "distribution_triple", d.meta.TargetTriple)
	}

	if _, err := params.ResourcesPolicy.Locations(); err != nil {
		return nil, err
	}

	extensions, err := d.FilterExtensionModules(params.ExtensionFilter, params.PreferredVariants)
	if err != nil {
		return nil, err
	}

	builder := &domain.ExecutableBuilder{
		Params:           params,
		PythonExe:        d.meta.PythonExe,
		ExtensionModules: extensions,
	}

	if params.IncludeSources {
		for _, m := range d.sources {
			if !params.IncludeTest && d.IsTestPackage(m.Package()) {
				continue
			}
			builder.AddResource(m)
		}
	}
	if params.IncludeResources {
		for _, r := range d.resources {
			if !params.IncludeTest && d.IsTestPackage(r.LeafPackage.String()) {
				continue
			}
			builder.AddResource(r)
		}
	}
	return builder, nil
}

// checkFlavor reports whether the distribution's libpython linkage satisfies flavor.
func checkFlavor(meta *Metadata, flavor domain.DistributionFlavor) error {
	switch {
	case flavor == domain.FlavorStandaloneStatic && meta.LibpythonLink == "shared",
		flavor == domain.FlavorStandaloneDynamic && meta.LibpythonLink == "static":
		err := zerr.With(domain.ErrUnsupportedFlavor, "flavor", flavor.String())
		return zerr.With(err, "libpython_link_mode", meta.LibpythonLink)
	default:
		return nil
	}
}
