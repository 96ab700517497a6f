package script

import (
	"fmt"
	"path/filepath"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	lua "github.com/yuin/gopher-lua"
)

const distributionTypeName = "PythonDistribution"

// pythonDistribution is the script value behind a PythonDistribution.
type pythonDistribution struct {
	handle *Handle
	target string
}

var (
	defaultDistributionSig = signature{
		fn: "default_python_distribution",
		params: []param{
			optional("flavor", shapeString),
			optional("build_target", shapeString),
		},
	}
	pythonDistributionSig = signature{
		fn: distributionTypeName,
		params: []param{
			required("sha256", shapeString),
			optional("local_path", shapeString),
			optional("url", shapeString),
			optional("flavor", shapeString),
		},
	}
	extensionModulesSig = signature{
		fn: "extension_modules",
		params: []param{
			optional("filter", shapeString),
			optional("preferred_variants", shapeStringMap),
		},
	}
	sourceModulesSig    = signature{fn: "source_modules"}
	packageResourcesSig = signature{
		fn:     "package_resources",
		params: []param{optional("include_test", shapeBool)},
	}
	pipInstallSig = signature{
		fn: "pip_install",
		params: []param{
			required("args", shapeStringList),
			optional("extra_envs", shapeStringMap),
		},
	}
	readPackageRootSig = signature{
		fn: "read_package_root",
		params: []param{
			required("path", shapeString),
			required("packages", shapeStringList),
		},
	}
	readVirtualenvSig = signature{
		fn:     "read_virtualenv",
		params: []param{required("path", shapeString)},
	}
	setupPyInstallSig = signature{
		fn: "setup_py_install",
		params: []param{
			required("package_path", shapeString),
			optional("extra_envs", shapeStringMap),
			optional("extra_global_arguments", shapeStringList),
		},
	}
	toPythonExecutableSig = signature{
		fn: "to_python_executable",
		params: []param{
			required("name", shapeString),
			optional("resources_policy", shapeString),
			instance("config", configTypeName),
			optional("extension_module_filter", shapeString),
			optional("preferred_extension_module_variants", shapeStringMap),
			optional("include_sources", shapeBool),
			optional("include_resources", shapeBool),
			optional("include_test", shapeBool),
		},
	}
)

func (e *Engine) distributionModule() Module {
	return Module{
		Name: "distribution",
		Globals: []Method{
			{Name: defaultDistributionSig.fn, Fn: e.defaultPythonDistribution},
			{Name: pythonDistributionSig.fn, Fn: e.newPythonDistribution},
		},
		Types: []Type{
			{
				Name: distributionTypeName,
				Methods: []Method{
					{Name: extensionModulesSig.fn, Fn: e.extensionModules},
					{Name: sourceModulesSig.fn, Fn: e.sourceModules},
					{Name: packageResourcesSig.fn, Fn: e.packageResources},
					{Name: pipInstallSig.fn, Fn: e.pipInstall},
					{Name: readPackageRootSig.fn, Fn: e.readPackageRoot},
					{Name: readVirtualenvSig.fn, Fn: e.readVirtualenv},
					{Name: setupPyInstallSig.fn, Fn: e.setupPyInstall},
					{Name: toPythonExecutableSig.fn, Fn: e.toPythonExecutable},
				},
				Field:  distributionField,
				String: distributionString,
			},
			e.executableType(),
		},
	}
}

func distributionField(_ *lua.LState, v any, key string) (lua.LValue, bool) {
	d := v.(*pythonDistribution)
	switch key {
	case "flavor":
		return lua.LString(d.handle.Flavor().String()), true
	case "build_target":
		return lua.LString(d.target), true
	case "resolved":
		return lua.LBool(d.handle.Resolved()), true
	}
	return nil, false
}

func distributionString(v any) string {
	d := v.(*pythonDistribution)
	return fmt.Sprintf("%s<flavor=%s, location=%s>", distributionTypeName, d.handle.Flavor(), d.handle.Location())
}

func (e *Engine) defaultPythonDistribution(L *lua.LState) int {
	sig := defaultDistributionSig
	a, bindErr := bind(L, sig, 1)
	if bindErr != nil {
		return raise(L, bindErr)
	}

	name := a.strOr("flavor", domain.FlavorStandalone.String())
	flavor, err := domain.ParseFlavor(name)
	if err != nil {
		return raise(L, valueError(sig.label(), "unknown distribution flavor %s", name))
	}
	target := a.strOr("build_target", e.global(L, globalBuildTarget, e.env.BuildTarget))

	location, err := e.env.Registry.DefaultLocation(flavor, target)
	if err != nil {
		return raise(L, operationError(CodeBuild, sig.label(), "", err))
	}

	L.Push(e.newDistribution(L, flavor, location, target))
	return 1
}

func (e *Engine) newPythonDistribution(L *lua.LState) int {
	sig := pythonDistributionSig
	a, bindErr := bind(L, sig, 1)
	if bindErr != nil {
		return raise(L, bindErr)
	}

	sha256, _ := a.str("sha256")
	localPath, hasLocal := a.str("local_path")
	url, hasURL := a.str("url")
	switch {
	case hasLocal && hasURL:
		return raise(L, valueError(sig.label(), "cannot define both local_path and url"))
	case !hasLocal && !hasURL:
		return raise(L, valueError(sig.label(), "must define one of local_path or url"))
	}

	name := a.strOr("flavor", domain.FlavorStandalone.String())
	if name != domain.FlavorStandalone.String() {
		return raise(L, valueError(sig.label(), "invalid distribution flavor %s", name))
	}

	location := domain.URLLocation(url, sha256)
	if hasLocal {
		location = domain.LocalLocation(e.absPath(L, localPath), sha256)
	}

	target := e.global(L, globalBuildTarget, e.env.BuildTarget)
	L.Push(e.newDistribution(L, domain.FlavorStandalone, location, target))
	return 1
}

func (e *Engine) newDistribution(
	L *lua.LState,
	flavor domain.DistributionFlavor,
	location domain.DistributionLocation,
	target string,
) *lua.LUserData {
	h := NewHandle(flavor, location, e.env.DistributionsDir, e.env.Resolver)
	e.handles = append(e.handles, h)
	return newUserData(L, distributionTypeName, &pythonDistribution{handle: h, target: target})
}

// resolve returns the distribution behind d, raising a resolution error on failure.
func (e *Engine) resolve(L *lua.LState, d *pythonDistribution) ports.Distribution {
	if !d.handle.Resolved() {
		e.env.Logger.Debug("resolving " + d.handle.Location().Source())
	}
	dist, err := d.handle.EnsureResolved(e.ctx(L))
	if err != nil {
		raise(L, resolutionError(err))
	}
	return dist
}

func (e *Engine) extensionModules(L *lua.LState) int {
	sig := extensionModulesSig
	d := checkSelf[*pythonDistribution](L, distributionTypeName, sig.label())
	a, bindErr := bind(L, sig, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}
	filter, err := parseFilter(sig, a.strOr("filter", domain.FilterAll.String()))
	if err != nil {
		return raise(L, err)
	}

	dist := e.resolve(L, d)
	modules, dErr := dist.FilterExtensionModules(filter, a.stringMap("preferred_variants"))
	if dErr != nil {
		return raise(L, operationError(CodePythonDistribution, sig.label(), "", dErr))
	}
	L.Push(resourceList(L, modules))
	return 1
}

func (e *Engine) sourceModules(L *lua.LState) int {
	sig := sourceModulesSig
	d := checkSelf[*pythonDistribution](L, distributionTypeName, sig.label())
	if _, bindErr := bind(L, sig, 2); bindErr != nil {
		return raise(L, bindErr)
	}

	modules, err := e.resolve(L, d).SourceModules()
	if err != nil {
		return raise(L, operationError(CodePythonDistribution, sig.label(), "", err))
	}
	L.Push(resourceList(L, modules))
	return 1
}

func (e *Engine) packageResources(L *lua.LState) int {
	sig := packageResourcesSig
	d := checkSelf[*pythonDistribution](L, distributionTypeName, sig.label())
	a, bindErr := bind(L, sig, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}
	includeTest := a.boolOr("include_test", false)

	dist := e.resolve(L, d)
	datas, err := dist.ResourceDatas()
	if err != nil {
		return raise(L, operationError(CodePythonDistribution, sig.label(), "", err))
	}

	kept := make([]domain.PackageResource, 0, len(datas))
	for _, r := range datas {
		if !includeTest && dist.IsTestPackage(r.LeafPackage.String()) {
			continue
		}
		kept = append(kept, r)
	}
	L.Push(resourceList(L, kept))
	return 1
}

func (e *Engine) pipInstall(L *lua.LState) int {
	sig := pipInstallSig
	d := checkSelf[*pythonDistribution](L, distributionTypeName, sig.label())
	a, bindErr := bind(L, sig, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}

	dist := e.resolve(L, d)
	resources, err := e.env.Packaging.PipInstall(e.ctx(L), dist, a.strings("args"), a.stringMap("extra_envs"))
	if err != nil {
		return raise(L, operationError(CodePipInstall, sig.label(), "error running pip install", err))
	}
	L.Push(resourceList(L, resources))
	return 1
}

func (e *Engine) readPackageRoot(L *lua.LState) int {
	sig := readPackageRootSig
	d := checkSelf[*pythonDistribution](L, distributionTypeName, sig.label())
	a, bindErr := bind(L, sig, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}
	path, _ := a.str("path")
	packages := a.strings("packages")

	e.resolve(L, d)
	found, err := e.env.Finder.FindResources(e.ctx(L), e.absPath(L, path))
	if err != nil {
		return raise(L, operationError(CodePackageRoot, sig.label(), "could not find resources", err))
	}

	kept := make([]domain.Resource, 0, len(found))
	for _, r := range found {
		if r.IsInPackages(packages) {
			kept = append(kept, r)
		}
	}
	L.Push(resourceList(L, kept))
	return 1
}

func (e *Engine) readVirtualenv(L *lua.LState) int {
	sig := readVirtualenvSig
	d := checkSelf[*pythonDistribution](L, distributionTypeName, sig.label())
	a, bindErr := bind(L, sig, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}
	path, _ := a.str("path")

	dist := e.resolve(L, d)
	resources, err := e.env.Packaging.ReadVirtualenv(e.ctx(L), dist, e.absPath(L, path))
	if err != nil {
		return raise(L, operationError(CodeVirtualenv, sig.label(), "could not find resources", err))
	}
	L.Push(resourceList(L, resources))
	return 1
}

func (e *Engine) setupPyInstall(L *lua.LState) int {
	sig := setupPyInstallSig
	d := checkSelf[*pythonDistribution](L, distributionTypeName, sig.label())
	a, bindErr := bind(L, sig, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}
	packagePath, _ := a.str("package_path")

	dist := e.resolve(L, d)
	resources, err := e.env.Packaging.SetupPyInstall(
		e.ctx(L),
		dist,
		e.absPath(L, packagePath),
		a.stringMap("extra_envs"),
		a.strings("extra_global_arguments"),
	)
	if err != nil {
		return raise(L, operationError(CodeSetupPy, sig.label(), "error running setup.py install", err))
	}
	L.Push(resourceList(L, resources))
	return 1
}

func (e *Engine) toPythonExecutable(L *lua.LState) int {
	sig := toPythonExecutableSig
	d := checkSelf[*pythonDistribution](L, distributionTypeName, sig.label())
	a, bindErr := bind(L, sig, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}
	name, _ := a.str("name")

	policyName := a.strOr("resources_policy", domain.InMemoryOnly().String())
	policy, err := domain.ParseResourcesPolicy(policyName)
	if err != nil {
		return raise(L, valueError(sig.label(), "resources policy %s not recognized", policyName))
	}
	filter, fErr := parseFilter(sig, a.strOr("extension_module_filter", domain.FilterAll.String()))
	if fErr != nil {
		return raise(L, fErr)
	}

	cfg := e.interpreterConfig(L, a, sig)

	dist := e.resolve(L, d)
	builder, err := dist.BuildExecutable(domain.ExecutableParams{
		HostTriple:        e.global(L, globalHostTriple, e.env.HostTriple),
		TargetTriple:      d.target,
		Name:              name,
		ResourcesPolicy:   policy,
		Config:            *cfg,
		ExtensionFilter:   filter,
		PreferredVariants: a.stringMap("preferred_extension_module_variants"),
		IncludeSources:    a.boolOr("include_sources", true),
		IncludeResources:  a.boolOr("include_resources", false),
		IncludeTest:       a.boolOr("include_test", false),
	})
	if err != nil {
		return raise(L, operationError(CodeBuild, sig.label(), "", err))
	}

	x := &executable{builder: builder, handle: d.handle}
	e.executables = append(e.executables, x)
	L.Push(newUserData(L, executableTypeName, x))
	return 1
}

// interpreterConfig returns the config argument, or the result of calling the
// script's PythonInterpreterConfig factory with no arguments.
func (e *Engine) interpreterConfig(L *lua.LState, a args, sig signature) *domain.EmbeddedPythonConfig {
	if v, ok := a.userData("config"); ok {
		return v.(*domain.EmbeddedPythonConfig)
	}

	factory := L.GetGlobal(configTypeName)
	if err := L.CallByParam(lua.P{Fn: factory, NRet: 1, Protect: true}); err != nil {
		if se, ok := AsError(err); ok {
			raise(L, se)
		}
		raise(L, internalError(sig.label(), "%s() failed: %v", configTypeName, err))
	}
	ret := L.Get(-1)
	L.Pop(1)

	if ud, ok := ret.(*lua.LUserData); ok {
		if cfg, ok := ud.Value.(*domain.EmbeddedPythonConfig); ok {
			return cfg
		}
	}
	raise(L, internalError(sig.label(), "%s() returned %s", configTypeName, typeNameOf(L, ret)))
	return nil
}

func parseFilter(sig signature, s string) (domain.ExtensionModuleFilter, *Error) {
	filter, err := domain.ParseExtensionModuleFilter(s)
	if err != nil {
		return 0, valueError(sig.label(), "%s is not a valid extension module filter", s)
	}
	return filter, nil
}

// absPath resolves p against the script's CWD global.
func (e *Engine) absPath(L *lua.LState, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.global(L, globalCwd, e.env.Cwd), p)
}
