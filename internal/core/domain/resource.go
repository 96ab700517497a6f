package domain

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// DataLocation is a lazy reference to resource content: bytes held in memory
// or a file read on demand.
type DataLocation struct {
	data []byte
	path string
}

// InMemory returns a DataLocation holding data.
func InMemory(data []byte) DataLocation {
	return DataLocation{data: data}
}

// FilePath returns a DataLocation that reads path when resolved.
func FilePath(path string) DataLocation {
	return DataLocation{path: path}
}

// Path returns the backing file path, if any.
func (d DataLocation) Path() (string, bool) {
	return d.path, d.path != ""
}

// Resolve returns the content.
func (d DataLocation) Resolve() ([]byte, error) {
	if d.path == "" {
		return d.data, nil
	}
	data, err := os.ReadFile(d.path) //nolint:gosec // path was discovered by a resource scan
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read resource data"), "path", d.path)
	}
	return data, nil
}

// ResourceKind identifies the concrete type of a Resource.
type ResourceKind int

const (
	// KindSourceModule is a Python source module.
	KindSourceModule ResourceKind = iota
	// KindBytecodeModule is a compiled Python module.
	KindBytecodeModule
	// KindExtensionModule is a compiled native module.
	KindExtensionModule
	// KindPackageResource is a non-code file belonging to a package.
	KindPackageResource
)

// Resource is an immutable record produced by a discovery or install operation.
type Resource interface {
	Kind() ResourceKind
	// FullName is the dotted name used to decide package membership.
	FullName() string
	// IsInPackages reports whether the resource belongs to one of the given
	// packages or to a package nested under one of them.
	IsInPackages(packages []string) bool
}

// SourceModule is a Python module in source form.
type SourceModule struct {
	Name      string
	Source    DataLocation
	IsPackage bool
}

// Kind implements Resource.
func (m SourceModule) Kind() ResourceKind { return KindSourceModule }

// FullName implements Resource.
func (m SourceModule) FullName() string { return m.Name }

// IsInPackages implements Resource.
func (m SourceModule) IsInPackages(packages []string) bool {
	return nameInPackages(m.Name, packages)
}

// Package returns the package the module lives in. For a package it is the
// package itself.
func (m SourceModule) Package() string {
	if m.IsPackage {
		return m.Name
	}
	if i := strings.LastIndexByte(m.Name, '.'); i >= 0 {
		return m.Name[:i]
	}
	return ""
}

// BytecodeModule is a Python module compiled to bytecode.
type BytecodeModule struct {
	Name      string
	Bytecode  []byte
	Optimize  OptimizationLevel
	IsPackage bool
}

// Kind implements Resource.
func (m BytecodeModule) Kind() ResourceKind { return KindBytecodeModule }

// FullName implements Resource.
func (m BytecodeModule) FullName() string { return m.Name }

// IsInPackages implements Resource.
func (m BytecodeModule) IsInPackages(packages []string) bool {
	return nameInPackages(m.Name, packages)
}

// LibraryLink describes a library an extension module links against.
type LibraryLink struct {
	Name      string
	System    bool
	Framework bool
}

// ExtensionModule is a compiled native module shipped with or alongside a distribution.
type ExtensionModule struct {
	Name    string
	Variant string
	// Filename is the on-disk shared library, empty for modules built into libpython.
	Filename  string
	Module    DataLocation
	Builtin   bool
	Required  bool
	IsPackage bool
	Links     []LibraryLink
	Licenses  []string
}

// Kind implements Resource.
func (m ExtensionModule) Kind() ResourceKind { return KindExtensionModule }

// FullName implements Resource.
func (m ExtensionModule) FullName() string { return m.Name }

// IsInPackages implements Resource.
func (m ExtensionModule) IsInPackages(packages []string) bool {
	return nameInPackages(m.Name, packages)
}

// LinksNonSystemLibraries reports whether the module needs libraries beyond the system's.
func (m ExtensionModule) LinksNonSystemLibraries() bool {
	for _, l := range m.Links {
		if !l.System && !l.Framework {
			return true
		}
	}
	return false
}

// IsGPL reports whether any linked library carries a GPL family license.
func (m ExtensionModule) IsGPL() bool {
	for _, lic := range m.Licenses {
		if strings.Contains(strings.ToUpper(lic), "GPL") {
			return true
		}
	}
	return false
}

// PackageResource is a non-code file owned by a Python package.
type PackageResource struct {
	LeafPackage  InternedString
	RelativeName string
	Data         DataLocation
}

// Kind implements Resource.
func (r PackageResource) Kind() ResourceKind { return KindPackageResource }

// FullName implements Resource.
func (r PackageResource) FullName() string { return r.LeafPackage.String() }

// IsInPackages implements Resource.
func (r PackageResource) IsInPackages(packages []string) bool {
	return nameInPackages(r.LeafPackage.String(), packages)
}

func nameInPackages(name string, packages []string) bool {
	for _, p := range packages {
		if name == p || strings.HasPrefix(name, p+".") {
			return true
		}
	}
	return false
}

// stdlibTestPackages lists the standard library packages that only hold tests.
var stdlibTestPackages = []string{
	"bsddb.test",
	"ctypes.test",
	"distutils.tests",
	"email.test",
	"idlelib.idle_test",
	"json.tests",
	"lib-tk.test",
	"lib2to3.tests",
	"sqlite3.test",
	"test",
	"tkinter.test",
	"unittest.test",
}

// IsStdlibTestPackage reports whether name is, or is nested under, a
// standard library test package.
func IsStdlibTestPackage(name string) bool {
	return nameInPackages(name, stdlibTestPackages)
}
