package standalone

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/tidwall/gjson"
	"go.trai.ch/zerr"
)

const (
	// distDirName is the top level directory of a standalone archive.
	distDirName = "python"
	// metadataFileName describes the distribution layout.
	metadataFileName = "PYTHON.json"
	// minFormatVersion is the oldest PYTHON.json layout that carries build_info.
	minFormatVersion = 5
)

// Metadata is the parsed content of a distribution's PYTHON.json.
type Metadata struct {
	FormatVersion   int
	TargetTriple    string
	PythonVersion   string
	PythonExe       string
	PythonStdlib    string
	LibpythonLink   string
	ExtensionSuffix string
	TestPackages    []string

	// Extensions maps an extension module name to its variants in declaration order.
	Extensions map[string][]domain.ExtensionModule
}

// metadataPath returns the path of PYTHON.json inside an extracted distribution.
func metadataPath(root string) string {
	return filepath.Join(root, distDirName, metadataFileName)
}

// ReadMetadata loads PYTHON.json from an extracted distribution rooted at root.
func ReadMetadata(root string) (*Metadata, error) {
	p := metadataPath(root)
	data, err := os.ReadFile(p) //nolint:gosec // path is inside the extraction directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataInvalid.Error()), "path", p)
	}
	meta, err := ParseMetadata(data, filepath.Join(root, distDirName))
	if err != nil {
		return nil, zerr.With(err, "path", p)
	}
	return meta, nil
}

// ParseMetadata parses PYTHON.json content. Relative paths are resolved against pythonDir.
func ParseMetadata(data []byte, pythonDir string) (*Metadata, error) {
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrMetadataInvalid
	}
	doc := gjson.ParseBytes(data)

	version, err := strconv.Atoi(doc.Get("version").String())
	if err != nil || version < minFormatVersion {
		return nil, zerr.With(domain.ErrMetadataInvalid, "format_version", doc.Get("version").String())
	}

	meta := &Metadata{
		FormatVersion:   version,
		TargetTriple:    doc.Get("target_triple").String(),
		PythonVersion:   doc.Get("python_version").String(),
		LibpythonLink:   doc.Get("libpython_link_mode").String(),
		ExtensionSuffix: doc.Get("python_extension_module_suffix").String(),
		Extensions:      make(map[string][]domain.ExtensionModule),
	}

	exe := doc.Get("python_exe").String()
	if exe == "" {
		return nil, zerr.With(domain.ErrMetadataInvalid, "missing", "python_exe")
	}
	meta.PythonExe = filepath.Join(pythonDir, filepath.FromSlash(exe))

	stdlib := doc.Get("python_paths.stdlib").String()
	if stdlib == "" {
		stdlib = doc.Get("python_stdlib").String()
	}
	if stdlib == "" {
		return nil, zerr.With(domain.ErrMetadataInvalid, "missing", "python_paths.stdlib")
	}
	meta.PythonStdlib = filepath.Join(pythonDir, filepath.FromSlash(stdlib))

	for _, pkg := range doc.Get("python_stdlib_test_packages").Array() {
		meta.TestPackages = append(meta.TestPackages, pkg.String())
	}

	doc.Get("build_info.extensions").ForEach(func(name, variants gjson.Result) bool {
		key := name.String()
		for _, v := range variants.Array() {
			meta.Extensions[key] = append(meta.Extensions[key], parseExtension(key, v, pythonDir))
		}
		return true
	})

	return meta, nil
}

func parseExtension(name string, v gjson.Result, pythonDir string) domain.ExtensionModule {
	em := domain.ExtensionModule{
		Name:     name,
		Variant:  v.Get("variant").String(),
		Builtin:  v.Get("in_core").Bool(),
		Required: v.Get("required").Bool(),
	}
	if em.Variant == "" {
		em.Variant = "default"
	}

	if lib := v.Get("shared_lib").String(); lib != "" {
		em.Filename = filepath.Join(pythonDir, filepath.FromSlash(lib))
		em.Module = domain.FilePath(em.Filename)
	}

	for _, link := range v.Get("links").Array() {
		em.Links = append(em.Links, domain.LibraryLink{
			Name:      link.Get("name").String(),
			System:    link.Get("system").Bool(),
			Framework: link.Get("framework").Bool(),
		})
	}
	for _, lic := range v.Get("licenses").Array() {
		em.Licenses = append(em.Licenses, lic.String())
	}
	slices.Sort(em.Licenses)

	return em
}

// ExtensionNames returns the extension module names in lexical order.
func (m *Metadata) ExtensionNames() []string {
	names := make([]string, 0, len(m.Extensions))
	for name := range m.Extensions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsTestPackage reports whether name belongs to a test-only package of the standard library.
func (m *Metadata) IsTestPackage(name string) bool {
	if domain.IsStdlibTestPackage(name) {
		return true
	}
	for _, p := range m.TestPackages {
		if name == p || strings.HasPrefix(name, p+".") {
			return true
		}
	}
	return false
}
