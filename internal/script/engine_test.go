package script_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mfraile/PyOxidizer/internal/adapters/fs"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports/mocks"
	"github.com/mfraile/PyOxidizer/internal/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const (
	hostTriple = "x86_64-unknown-linux-gnu"
	distDir    = "/state/distributions"
)

type engineFixture struct {
	engine    *script.Engine
	resolver  *mocks.MockDistributionResolver
	registry  *mocks.MockDistributionRegistry
	packaging *mocks.MockPackagingTool
	dist      *mocks.MockDistribution
	cwd       string
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	f := &engineFixture{
		resolver:  mocks.NewMockDistributionResolver(ctrl),
		registry:  mocks.NewMockDistributionRegistry(ctrl),
		packaging: mocks.NewMockPackagingTool(ctrl),
		dist:      mocks.NewMockDistribution(ctrl),
		cwd:       t.TempDir(),
	}
	f.engine = script.NewEngine(script.Env{
		Resolver:         f.resolver,
		Registry:         f.registry,
		Packaging:        f.packaging,
		Finder:           fs.NewScanner(fs.NewWalker()),
		Logger:           log,
		DistributionsDir: distDir,
		HostTriple:       hostTriple,
		Cwd:              f.cwd,
		ConfigPath:       filepath.Join(f.cwd, "pyoxidizer.lua"),
	})
	t.Cleanup(func() { _ = f.engine.Close() })
	return f
}

func (f *engineFixture) eval(source string) error {
	return f.engine.Eval(context.Background(), "test.lua", source)
}

// expectResolve makes every resolution of the fixture location succeed once.
func (f *engineFixture) expectResolve() *gomock.Call {
	return f.resolver.EXPECT().
		Resolve(gomock.Any(), domain.FlavorStandalone, gomock.Any(), distDir).
		Return(f.dist, nil)
}

const localDist = `local dist = PythonDistribution("abc123", "/archives/cpython.tar.zst")` + "\n"

func requireScriptError(t *testing.T, err error, code, label, message string) *script.Error {
	t.Helper()
	require.Error(t, err)
	var se *script.Error
	require.True(t, errors.As(err, &se), "expected a script error, got %v", err)
	assert.Equal(t, code, se.Code)
	assert.Equal(t, label, se.Label)
	assert.Equal(t, message, se.Message)
	return se
}

func TestResolveOnce(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve().Times(1)
	f.dist.EXPECT().SourceModules().Return([]domain.SourceModule{
		{Name: "json", Source: domain.InMemory([]byte("")), IsPackage: true},
	}, nil).Times(2)

	err := f.eval(localDist + `
assert(not dist.resolved)
local a = dist:source_modules()
local b = dist:source_modules()
assert(dist.resolved)
assert(#a == 1 and #b == 1)
assert(a[1].name == "json" and a[1].is_package)
assert(a[1].type == "PythonSourceModule")
`)
	require.NoError(t, err)
}

func TestResolutionFailureIsNotCached(t *testing.T) {
	f := newEngineFixture(t)
	gomock.InOrder(
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, zerr.With(domain.ErrDownloadFailed, "url", "https://example.invalid/x")),
		f.expectResolve(),
	)
	f.dist.EXPECT().SourceModules().Return(nil, nil)

	err := f.eval(localDist + `
local ok, e = pcall(dist.source_modules, dist)
assert(not ok)
assert(e.code == "RESOLVE_DISTRIBUTION", e.code)
assert(e.label == "resolve_distribution()")
assert(e.kind == "resolution")
assert(string.find(e.message, "failed to download distribution", 1, true))
assert(string.find(e.message, "url=https://example.invalid/x", 1, true))
assert(not dist.resolved)
dist:source_modules()
assert(dist.resolved)
`)
	require.NoError(t, err)
}

func TestPythonDistribution_Validation(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		code    string
		label   string
		message string
	}{
		{
			name:    "both locations",
			source:  `PythonDistribution("sha", "a", "b")`,
			code:    script.CodeInvalidParameterValue,
			label:   "PythonDistribution()",
			message: "cannot define both local_path and url",
		},
		{
			name:    "no location",
			source:  `PythonDistribution{sha256="sha"}`,
			code:    script.CodeInvalidParameterValue,
			label:   "PythonDistribution()",
			message: "must define one of local_path or url",
		},
		{
			name:    "non standalone flavor",
			source:  `PythonDistribution{sha256="sha", url="https://x", flavor="standalone_static"}`,
			code:    script.CodeInvalidParameterValue,
			label:   "PythonDistribution()",
			message: "invalid distribution flavor standalone_static",
		},
		{
			name:    "missing checksum",
			source:  `PythonDistribution{url="https://x"}`,
			code:    script.CodeIncorrectParameterType,
			label:   "PythonDistribution()",
			message: "Missing parameter sha256 for call to PythonDistribution",
		},
		{
			name:    "unknown keyword",
			source:  `PythonDistribution{sha256="sha", path="a"}`,
			code:    script.CodeIncorrectParameterType,
			label:   "PythonDistribution()",
			message: "unexpected keyword argument path for call to PythonDistribution",
		},
		{
			name:    "too many arguments",
			source:  `PythonDistribution("sha", "a", nil, "standalone", "extra")`,
			code:    script.CodeIncorrectParameterType,
			label:   "PythonDistribution()",
			message: "PythonDistribution takes at most 4 arguments; got 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			requireScriptError(t, f.eval(tt.source), tt.code, tt.label, tt.message)
		})
	}
}

func TestDefaultPythonDistribution(t *testing.T) {
	f := newEngineFixture(t)
	location := domain.URLLocation("https://example.com/cpython.tar.zst", "deadbeef")

	f.registry.EXPECT().DefaultLocation(domain.FlavorStandalone, hostTriple).Return(location, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), domain.FlavorStandalone, location, distDir).Return(f.dist, nil)
	f.dist.EXPECT().SourceModules().Return(nil, nil)

	err := f.eval(`
local dist = default_python_distribution()
assert(dist.flavor == "standalone")
assert(dist.build_target == BUILD_TARGET_TRIPLE)
assert(BUILD_HOST_TRIPLE == "x86_64-unknown-linux-gnu")
dist:source_modules()
`)
	require.NoError(t, err)
}

func TestDefaultPythonDistribution_Validation(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		code    string
		message string
	}{
		{
			name:    "flavor type",
			source:  `default_python_distribution(true)`,
			code:    script.CodeIncorrectParameterType,
			message: "function expects a string for flavor; got type boolean",
		},
		{
			name:    "unknown flavor",
			source:  `default_python_distribution{flavor="pypy"}`,
			code:    script.CodeInvalidParameterValue,
			message: "unknown distribution flavor pypy",
		},
		{
			name:    "unknown keyword",
			source:  `default_python_distribution{flavour="standalone"}`,
			code:    script.CodeIncorrectParameterType,
			message: "unexpected keyword argument flavour for call to default_python_distribution",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			requireScriptError(t, f.eval(tt.source), tt.code, "default_python_distribution()", tt.message)
		})
	}
}

func TestDefaultPythonDistribution_RegistryMiss(t *testing.T) {
	f := newEngineFixture(t)
	f.registry.EXPECT().
		DefaultLocation(domain.FlavorStandaloneDynamic, "riscv64-unknown-linux-gnu").
		Return(domain.DistributionLocation{}, domain.ErrNoDefaultDistribution)

	err := f.eval(`default_python_distribution("standalone_dynamic", "riscv64-unknown-linux-gnu")`)
	se := requireScriptError(t, err, script.CodeBuild, "default_python_distribution()",
		"no default distribution for flavor and target")
	assert.ErrorIs(t, se, domain.ErrNoDefaultDistribution)
}

func TestExtensionModules(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()
	f.dist.EXPECT().
		FilterExtensionModules(domain.FilterNoGPL, map[string]string{"_ssl": "openssl3"}).
		Return([]domain.ExtensionModule{
			{Name: "_json", Variant: "default", Builtin: true},
			{Name: "_ssl", Variant: "openssl3", Filename: "/d/_ssl.so", Licenses: []string{"OpenSSL"}},
		}, nil)

	err := f.eval(localDist + `
local mods = dist:extension_modules{filter="no-gpl", preferred_variants={_ssl="openssl3"}}
assert(#mods == 2)
assert(mods[1].name == "_json" and mods[1].builtin)
assert(mods[2].variant == "openssl3")
assert(mods[2].licenses[1] == "OpenSSL")
assert(tostring(mods[2]) == "PythonExtensionModule<name=_ssl, variant=openssl3>")
`)
	require.NoError(t, err)
}

func TestExtensionModules_UnknownFilterSkipsResolution(t *testing.T) {
	f := newEngineFixture(t)

	err := f.eval(localDist + `dist:extension_modules("everything")`)
	requireScriptError(t, err, script.CodeInvalidParameterValue, "extension_modules()",
		"everything is not a valid extension module filter")
}

func TestUnhandledEnumValueIsInternal(t *testing.T) {
	filterErr := zerr.With(zerr.Wrap(domain.ErrUnknownExtensionFilter, "cannot filter extension modules"), "filter", 42)
	policyErr := zerr.With(zerr.Wrap(domain.ErrUnknownResourcesPolicy, "cannot place resources"), "mode", 42)

	tests := []struct {
		name    string
		source  string
		label   string
		message string
		cause   error
	}{
		{
			name:    "extension filter",
			source:  `dist:extension_modules()`,
			label:   "extension_modules()",
			message: "cannot filter extension modules: unknown extension module filter (filter=42)",
			cause:   domain.ErrUnknownExtensionFilter,
		},
		{
			name:    "resources policy",
			source:  `dist:to_python_executable("app")`,
			label:   "to_python_executable()",
			message: "cannot place resources: unknown resources policy (mode=42)",
			cause:   domain.ErrUnknownResourcesPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			f.expectResolve()
			f.dist.EXPECT().FilterExtensionModules(gomock.Any(), gomock.Any()).Return(nil, filterErr).AnyTimes()
			f.dist.EXPECT().BuildExecutable(gomock.Any()).Return(nil, policyErr).AnyTimes()

			se := requireScriptError(t, f.eval(localDist+tt.source), script.CodeInternalInvariant, tt.label, tt.message)
			assert.Equal(t, script.KindInternal, se.Kind)
			assert.ErrorIs(t, se, tt.cause)
		})
	}
}

func TestListParametersRejectNonSequenceTables(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		label   string
		message string
	}{
		{
			name:    "keyword list of named entries",
			source:  `dist:pip_install{args={pyflakes="2.1.1"}}`,
			label:   "pip_install()",
			message: "function expects a list of strings for args; got type table",
		},
		{
			name:    "positional list with fractional key",
			source:  `dist:pip_install({"pyflakes", [1.5]="black"})`,
			label:   "pip_install()",
			message: "function expects a list of strings for args; got type table",
		},
		{
			name:    "named entries only",
			source:  `dist:read_package_root("/src", {foo="x"})`,
			label:   "read_package_root()",
			message: "function expects a list of strings for packages; got type table",
		},
		{
			name:    "mixed entries",
			source:  `dist:read_package_root("/src", {"foo", extra="x"})`,
			label:   "read_package_root()",
			message: "function expects a list of strings for packages; got type table",
		},
		{
			name:    "entry at index zero",
			source:  `dist:read_package_root("/src", {"foo", [0]="bar"})`,
			label:   "read_package_root()",
			message: "function expects a list of strings for packages; got type table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			requireScriptError(t, f.eval(localDist+tt.source), script.CodeIncorrectParameterType, tt.label, tt.message)
		})
	}
}

func TestPackageResources_IncludeTest(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()
	f.dist.EXPECT().ResourceDatas().Return([]domain.PackageResource{
		{LeafPackage: domain.NewInternedString("email"), RelativeName: "architecture.rst"},
		{LeafPackage: domain.NewInternedString("json.tests"), RelativeName: "data.json"},
		{LeafPackage: domain.NewInternedString("test"), RelativeName: "badsyntax.txt"},
		{LeafPackage: domain.NewInternedString("ensurepip.tests"), RelativeName: "wheel.whl"},
	}, nil).Times(2)
	f.dist.EXPECT().
		IsTestPackage(gomock.Any()).
		DoAndReturn(func(name string) bool {
			return domain.IsStdlibTestPackage(name) || name == "ensurepip.tests"
		}).
		Times(4)

	err := f.eval(localDist + `
local without = dist:package_resources()
local with = dist:package_resources{include_test=true}
assert(#without == 1, #without)
assert(without[1].leaf_package == "email")
assert(#with == 4)
local seen = {}
for _, r in ipairs(with) do
  seen[r.leaf_package .. "/" .. r.relative_name] = true
end
for _, r in ipairs(without) do
  assert(seen[r.leaf_package .. "/" .. r.relative_name])
end
`)
	require.NoError(t, err)
}

func TestReadPackageRoot(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()

	root := filepath.Join(f.cwd, "src")
	for _, file := range [][2]string{
		{"bar/__init__.py", "# bar"},
		{"foo.py", "# foo"},
		{"baz.py", "# baz"},
		{"extra/__init__.py", ""},
	} {
		p := filepath.Join(root, filepath.FromSlash(file[0]))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(file[1]), 0o600))
	}

	err := f.eval(localDist + `
local found = dist:read_package_root("src", {"bar", "foo"})
assert(#found == 2, #found)
assert(found[1].name == "bar" and found[1].is_package)
assert(found[1].source == "# bar")
assert(found[2].name == "foo" and not found[2].is_package)
assert(found[2].source == "# foo")
`)
	require.NoError(t, err)
}

func TestReadPackageRoot_MissingPath(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()

	err := f.eval(localDist + `dist:read_package_root("missing", {"foo"})`)
	require.Error(t, err)
	var se *script.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, script.CodePackageRoot, se.Code)
	assert.Contains(t, se.Message, "could not find resources: failed to scan for resources")
}

func TestPipInstall(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()
	f.packaging.EXPECT().
		PipInstall(gomock.Any(), f.dist, []string{"pyflakes==2.1.1"}, gomock.Nil()).
		Return([]domain.Resource{
			domain.SourceModule{Name: "pyflakes", IsPackage: true, Source: domain.InMemory([]byte(""))},
			domain.SourceModule{Name: "pyflakes.api", Source: domain.InMemory([]byte(""))},
		}, nil)

	err := f.eval(localDist + `
local resources = dist:pip_install({"pyflakes==2.1.1"})
assert(resources[1].type == "PythonSourceModule")
assert(resources[1].name == "pyflakes")
assert(resources[1].is_package)
assert(#resources == 2)
`)
	require.NoError(t, err)
}

func TestPipInstall_FailureCarriesOutput(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()
	failure := zerr.With(zerr.With(domain.ErrCommandFailed, "exit_code", 1), "output", "No matching distribution")
	f.packaging.EXPECT().
		PipInstall(gomock.Any(), f.dist, []string{"nope"}, map[string]string{"PIP_INDEX_URL": "x"}).
		Return(nil, failure)

	err := f.eval(localDist + `dist:pip_install{args={"nope"}, extra_envs={PIP_INDEX_URL="x"}}`)
	require.Error(t, err)
	var se *script.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, script.CodePipInstall, se.Code)
	assert.Equal(t, script.KindOperation, se.Kind)
	assert.Equal(t, "error running pip install: command failed (exit_code=1)\nNo matching distribution", se.Message)
}

func TestSetupPyInstall_RelativePath(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()
	f.packaging.EXPECT().
		SetupPyInstall(gomock.Any(), f.dist, filepath.Join(f.cwd, "vendor/demo"), gomock.Nil(), []string{"--quiet"}).
		Return(nil, nil)

	err := f.eval(localDist + `dist:setup_py_install{package_path="vendor/demo", extra_global_arguments={"--quiet"}}`)
	require.NoError(t, err)
}

func TestReadVirtualenv(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()
	f.packaging.EXPECT().
		ReadVirtualenv(gomock.Any(), f.dist, "/venv").
		Return(nil, domain.ErrSitePackagesNotFound)

	err := f.eval(localDist + `dist:read_virtualenv("/venv")`)
	requireScriptError(t, err, script.CodeVirtualenv, "read_virtualenv()",
		"could not find resources: could not find site-packages directory")
}

func TestToPythonExecutable_Defaults(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()
	f.dist.EXPECT().
		BuildExecutable(gomock.Any()).
		DoAndReturn(func(p domain.ExecutableParams) (*domain.ExecutableBuilder, error) {
			assert.Equal(t, "app", p.Name)
			assert.Equal(t, hostTriple, p.HostTriple)
			assert.Equal(t, hostTriple, p.TargetTriple)
			assert.Equal(t, domain.InMemoryOnly(), p.ResourcesPolicy)
			assert.Equal(t, domain.FilterAll, p.ExtensionFilter)
			assert.Equal(t, domain.DefaultEmbeddedPythonConfig(), p.Config)
			assert.True(t, p.IncludeSources)
			assert.False(t, p.IncludeResources)
			assert.False(t, p.IncludeTest)
			return &domain.ExecutableBuilder{Params: p}, nil
		})

	err := f.eval(localDist + `
local exe = dist:to_python_executable("app")
assert(exe.name == "app")
assert(exe.resources_policy == "in-memory-only")
`)
	require.NoError(t, err)
	require.Len(t, f.engine.Executables(), 1)
}

func TestToPythonExecutable_ValidatesBeforeResolving(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{
			name:    "policy",
			source:  `dist:to_python_executable{name="app", resources_policy="on-disk"}`,
			message: "resources policy on-disk not recognized",
		},
		{
			name:    "filter",
			source:  `dist:to_python_executable{name="app", extension_module_filter="some"}`,
			message: "some is not a valid extension module filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			requireScriptError(t, f.eval(localDist+tt.source), script.CodeInvalidParameterValue,
				"to_python_executable()", tt.message)
		})
	}
}

func TestToPythonExecutable_BrokenConfigFactory(t *testing.T) {
	f := newEngineFixture(t)

	err := f.eval(localDist + `
PythonInterpreterConfig = function() return {} end
dist:to_python_executable("app")
`)
	requireScriptError(t, err, script.CodeInternalInvariant, "to_python_executable()",
		"PythonInterpreterConfig() returned table")
}

func TestExecutable_CompilesSourceWithOneCompiler(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve().Times(1)

	compiler := mocks.NewMockBytecodeCompiler(gomock.NewController(t))
	f.dist.EXPECT().CreateCompiler(gomock.Any()).Return(compiler, nil).Times(1)
	f.dist.EXPECT().
		BuildExecutable(gomock.Any()).
		DoAndReturn(func(p domain.ExecutableParams) (*domain.ExecutableBuilder, error) {
			return &domain.ExecutableBuilder{Params: p}, nil
		})
	f.packaging.EXPECT().
		PipInstall(gomock.Any(), f.dist, []string{"demo"}, gomock.Nil()).
		Return([]domain.Resource{
			domain.SourceModule{Name: "demo", IsPackage: true, Source: domain.InMemory([]byte("x = 1\n"))},
			domain.SourceModule{Name: "demo.core", Source: domain.InMemory([]byte("y = 2\n"))},
		}, nil)

	compiler.EXPECT().
		Compile(gomock.Any(), []byte("x = 1\n"), "demo/__init__.py", domain.OptimizeTwo, domain.CompileModeBytecode).
		Return([]byte{0xe3}, nil)
	compiler.EXPECT().
		Compile(gomock.Any(), []byte("y = 2\n"), "demo/core.py", domain.OptimizeTwo, domain.CompileModeBytecode).
		Return([]byte{0xe3}, nil)
	compiler.EXPECT().Close().Return(nil).Times(1)

	err := f.eval(localDist + `
local config = PythonInterpreterConfig{optimize_level=2, run_mode="module:demo"}
local exe = dist:to_python_executable{name="demo", config=config}
exe:add_python_resources(dist:pip_install({"demo"}))
local resources = exe:resources()
assert(#resources == 4, #resources)
assert(resources[2].type == "PythonBytecodeModule")
assert(resources[2].optimize_level == 2)
`)
	require.NoError(t, err)

	builders := f.engine.Executables()
	require.Len(t, builders, 1)
	assert.Equal(t, "module:demo", builders[0].Params.Config.RunMode.String())
	require.NoError(t, f.engine.Close())
}

func TestExecutable_CompileFailure(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()

	compiler := mocks.NewMockBytecodeCompiler(gomock.NewController(t))
	f.dist.EXPECT().CreateCompiler(gomock.Any()).Return(compiler, nil)
	f.dist.EXPECT().BuildExecutable(gomock.Any()).Return(&domain.ExecutableBuilder{}, nil)
	f.dist.EXPECT().SourceModules().Return([]domain.SourceModule{
		{Name: "bad", Source: domain.InMemory([]byte("def ("))},
	}, nil)
	compiler.EXPECT().
		Compile(gomock.Any(), []byte("def ("), "bad.py", domain.OptimizeZero, domain.CompileModeBytecode).
		Return(nil, zerr.With(domain.ErrCompileFailed, "filename", "bad.py"))
	compiler.EXPECT().Close().Return(nil)

	err := f.eval(localDist + `
local exe = dist:to_python_executable("app")
local ok, e = pcall(exe.add_python_resource, exe, nil)
assert(not ok and e.code == "INCORRECT_PARAMETER_TYPE", tostring(e))
ok, e = pcall(exe.add_python_resource, exe, dist:source_modules()[1])
assert(not ok and e.code == "PYOXIDIZER_BUILD", tostring(e))
assert(e.message == "failed to compile bytecode (filename=bad.py)", e.message)
assert(#exe:resources() == 0, #exe:resources())
`)
	require.NoError(t, err)
	require.NoError(t, f.engine.Close())
}

func TestExecutable_AddResourcesKeepsNothingOnFailure(t *testing.T) {
	f := newEngineFixture(t)
	f.expectResolve()

	compiler := mocks.NewMockBytecodeCompiler(gomock.NewController(t))
	f.dist.EXPECT().CreateCompiler(gomock.Any()).Return(compiler, nil)
	f.dist.EXPECT().BuildExecutable(gomock.Any()).Return(&domain.ExecutableBuilder{}, nil)
	f.dist.EXPECT().SourceModules().Return([]domain.SourceModule{
		{Name: "good", Source: domain.InMemory([]byte("x = 1\n"))},
		{Name: "bad", Source: domain.InMemory([]byte("def ("))},
	}, nil)
	f.dist.EXPECT().ResourceDatas().Return([]domain.PackageResource{
		{LeafPackage: domain.NewInternedString("email"), RelativeName: "architecture.rst"},
	}, nil)
	f.dist.EXPECT().IsTestPackage("email").Return(false)
	compiler.EXPECT().
		Compile(gomock.Any(), []byte("x = 1\n"), "good.py", domain.OptimizeZero, domain.CompileModeBytecode).
		Return([]byte{0xe3}, nil)
	compiler.EXPECT().
		Compile(gomock.Any(), []byte("def ("), "bad.py", domain.OptimizeZero, domain.CompileModeBytecode).
		Return(nil, zerr.With(domain.ErrCompileFailed, "filename", "bad.py"))
	compiler.EXPECT().Close().Return(nil)

	err := f.eval(localDist + `
local exe = dist:to_python_executable("app")
local data = dist:package_resources()[1]
local modules = dist:source_modules()
local ok, e = pcall(exe.add_python_resources, exe, {data, modules[1], modules[2]})
assert(not ok and e.code == "PYOXIDIZER_BUILD", tostring(e))
assert(e.label == "add_python_resources()", e.label)
assert(#exe:resources() == 0, #exe:resources())
exe:add_python_resources({data})
assert(#exe:resources() == 1, #exe:resources())
`)
	require.NoError(t, err)
	require.NoError(t, f.engine.Close())
}

func TestInterpreterConfig_NonIntegerLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "fraction", level: "1.5"},
		{name: "infinity", level: "1/0"},
		{name: "negative infinity", level: "-1/0"},
		{name: "nan", level: "0/0"},
		{name: "beyond exact range", level: "2^60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			requireScriptError(t, f.eval(`PythonInterpreterConfig{optimize_level=`+tt.level+`}`),
				script.CodeIncorrectParameterType, "PythonInterpreterConfig()",
				"function expects a integer for optimize_level; got type number")
		})
	}
}

func TestInterpreterConfig(t *testing.T) {
	f := newEngineFixture(t)

	err := f.eval(`
local c = PythonInterpreterConfig{write_bytecode=true, sys_paths={"$ORIGIN/lib"}}
assert(c.optimize_level == 0)
assert(c.write_bytecode)
assert(not c.unbuffered_stdio)
assert(c.sys_paths[1] == "$ORIGIN/lib")
assert(c.run_mode == "repl")
assert(c.type == "PythonInterpreterConfig")
`)
	require.NoError(t, err)

	requireScriptError(t, f.eval(`PythonInterpreterConfig{optimize_level=3}`),
		script.CodeInvalidParameterValue, "PythonInterpreterConfig()", "optimize_level must be between 0 and 2; got 3")
	requireScriptError(t, f.eval(`PythonInterpreterConfig{run_mode="shell"}`),
		script.CodeInvalidParameterValue, "PythonInterpreterConfig()", "run mode shell not recognized")
}

func TestErrorValue(t *testing.T) {
	f := newEngineFixture(t)

	err := f.eval(`
local ok, e = pcall(PythonDistribution, "sha", "a", "b")
assert(not ok)
assert(e.type == "ScriptError")
assert(e.kind == "validation")
assert(tostring(e) == "PythonDistribution(): cannot define both local_path and url [INVALID_PARAMETER_VALUE]")
`)
	require.NoError(t, err)
}

func TestMethodRequiresSelf(t *testing.T) {
	f := newEngineFixture(t)

	err := f.eval(localDist + `dist.source_modules()`)
	requireScriptError(t, err, script.CodeIncorrectParameterType, "source_modules()",
		"function expects a PythonDistribution for self; got type nil")
}

func TestSandbox(t *testing.T) {
	f := newEngineFixture(t)

	err := f.eval(`
assert(io == nil and os == nil and require == nil)
assert(dofile == nil and loadfile == nil and load == nil and loadstring == nil)
assert(string.upper("x") == "X")
assert(CWD ~= "" and CONFIG_PATH ~= "")
`)
	require.NoError(t, err)
}

func TestEval_PlainErrorsAreWrapped(t *testing.T) {
	f := newEngineFixture(t)

	err := f.eval(`error("boom")`)
	require.Error(t, err)
	var se *script.Error
	assert.False(t, errors.As(err, &se))
	assert.Contains(t, err.Error(), "configuration script evaluation failed")
	assert.Contains(t, err.Error(), "boom")

	err = f.eval(`local x = `)
	require.ErrorContains(t, err, "configuration script evaluation failed")
}

func TestEval_Cancelled(t *testing.T) {
	f := newEngineFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.engine.Eval(ctx, "loop.lua", `while true do end`)
	require.ErrorIs(t, err, context.Canceled)
}

func ExampleEngine_Eval() {
	e := script.NewEngine(script.Env{HostTriple: "aarch64-apple-darwin"})
	defer func() { _ = e.Close() }()

	err := e.Eval(context.Background(), "example.lua", `PythonDistribution("sha", "a", "b")`)
	var se *script.Error
	if errors.As(err, &se) {
		fmt.Println(se.Code)
		fmt.Println(se.Message)
	}
	// Output:
	// INVALID_PARAMETER_VALUE
	// cannot define both local_path and url
}
