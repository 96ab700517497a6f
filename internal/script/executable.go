package script

import (
	"fmt"
	"strings"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	lua "github.com/yuin/gopher-lua"
)

const executableTypeName = "PythonExecutable"

// executable is the script value returned by to_python_executable.
type executable struct {
	builder *domain.ExecutableBuilder
	handle  *Handle
}

var (
	addResourceSignature = signature{
		fn:     "add_python_resource",
		params: []param{required("resource", shapeResource)},
	}
	addResourcesSignature = signature{
		fn:     "add_python_resources",
		params: []param{required("resources", shapeResourceList)},
	}
)

func (e *Engine) executableType() Type {
	return Type{
		Name: executableTypeName,
		Methods: []Method{
			{Name: "add_python_resource", Fn: e.addPythonResource},
			{Name: "add_python_resources", Fn: e.addPythonResources},
			{Name: "resources", Fn: executableResources},
			{Name: "extension_modules", Fn: executableExtensionModules},
		},
		Field: func(L *lua.LState, v any, key string) (lua.LValue, bool) {
			b := v.(*executable).builder
			switch key {
			case "name":
				return lua.LString(b.Params.Name), true
			case "target_triple":
				return lua.LString(b.Params.TargetTriple), true
			case "resources_policy":
				return lua.LString(b.Params.ResourcesPolicy.String()), true
			}
			return nil, false
		},
		String: func(v any) string {
			b := v.(*executable).builder
			return fmt.Sprintf("%s<name=%s, target=%s>", executableTypeName, b.Params.Name, b.Params.TargetTriple)
		},
	}
}

func (e *Engine) addPythonResource(L *lua.LState) int {
	x := checkSelf[*executable](L, executableTypeName, addResourceSignature.label())
	a, bindErr := bind(L, addResourceSignature, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}
	r, _ := a.resource("resource")
	records, err := e.prepareResource(L, x, r, addResourceSignature.label())
	if err != nil {
		return raise(L, err)
	}
	x.commit(records)
	return 0
}

// addPythonResources adds every resource or none of them.
func (e *Engine) addPythonResources(L *lua.LState) int {
	x := checkSelf[*executable](L, executableTypeName, addResourcesSignature.label())
	a, bindErr := bind(L, addResourcesSignature, 2)
	if bindErr != nil {
		return raise(L, bindErr)
	}
	var records []domain.Resource
	for _, r := range a.resources("resources") {
		prepared, err := e.prepareResource(L, x, r, addResourcesSignature.label())
		if err != nil {
			return raise(L, err)
		}
		records = append(records, prepared...)
	}
	x.commit(records)
	return 0
}

// prepareResource returns the records r contributes to the executable without
// adding them. A source module is followed by its bytecode, compiled at the
// embedded config's optimization level.
func (e *Engine) prepareResource(L *lua.LState, x *executable, r domain.Resource, label string) ([]domain.Resource, *Error) {
	m, ok := r.(domain.SourceModule)
	if !ok {
		return []domain.Resource{r}, nil
	}
	source, err := m.Source.Resolve()
	if err != nil {
		return nil, operationError(CodeBuild, label, "", err)
	}
	level := x.builder.Params.Config.OptimizeLevel
	code, err := x.handle.CompileBytecode(e.ctx(L), source, moduleFilename(m), level, domain.CompileModeBytecode)
	if err != nil {
		return nil, operationError(CodeBuild, label, "", err)
	}
	return []domain.Resource{m, domain.BytecodeModule{
		Name:      m.Name,
		Bytecode:  code,
		Optimize:  level,
		IsPackage: m.IsPackage,
	}}, nil
}

func (x *executable) commit(records []domain.Resource) {
	for _, r := range records {
		x.builder.AddResource(r)
	}
}

// moduleFilename is the path a module would have on disk, used in tracebacks.
func moduleFilename(m domain.SourceModule) string {
	p := strings.ReplaceAll(m.Name, ".", "/")
	if m.IsPackage {
		return p + "/__init__.py"
	}
	return p + ".py"
}

func executableResources(L *lua.LState) int {
	sig := signature{fn: "resources"}
	x := checkSelf[*executable](L, executableTypeName, sig.label())
	if _, bindErr := bind(L, sig, 2); bindErr != nil {
		return raise(L, bindErr)
	}
	L.Push(resourceList(L, x.builder.Resources))
	return 1
}

func executableExtensionModules(L *lua.LState) int {
	sig := signature{fn: "extension_modules"}
	x := checkSelf[*executable](L, executableTypeName, sig.label())
	if _, bindErr := bind(L, sig, 2); bindErr != nil {
		return raise(L, bindErr)
	}
	L.Push(resourceList(L, x.builder.ExtensionModules))
	return 1
}
