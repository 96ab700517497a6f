package script

import (
	"fmt"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	lua "github.com/yuin/gopher-lua"
)

const (
	sourceModuleTypeName    = "PythonSourceModule"
	bytecodeModuleTypeName  = "PythonBytecodeModule"
	extensionModuleTypeName = "PythonExtensionModule"
	packageResourceTypeName = "PythonPackageResource"
)

func resourceTypes() []Type {
	return []Type{
		{
			Name:  sourceModuleTypeName,
			Field: sourceModuleField,
			String: func(v any) string {
				m := v.(domain.SourceModule)
				return fmt.Sprintf("%s<name=%s, is_package=%t>", sourceModuleTypeName, m.Name, m.IsPackage)
			},
		},
		{
			Name:  bytecodeModuleTypeName,
			Field: bytecodeModuleField,
			String: func(v any) string {
				m := v.(domain.BytecodeModule)
				return fmt.Sprintf("%s<name=%s, optimize_level=%d>", bytecodeModuleTypeName, m.Name, m.Optimize)
			},
		},
		{
			Name:  extensionModuleTypeName,
			Field: extensionModuleField,
			String: func(v any) string {
				m := v.(domain.ExtensionModule)
				return fmt.Sprintf("%s<name=%s, variant=%s>", extensionModuleTypeName, m.Name, m.Variant)
			},
		},
		{
			Name:  packageResourceTypeName,
			Field: packageResourceField,
			String: func(v any) string {
				r := v.(domain.PackageResource)
				return fmt.Sprintf("%s<package=%s, name=%s>", packageResourceTypeName, r.LeafPackage, r.RelativeName)
			},
		},
	}
}

func sourceModuleField(L *lua.LState, v any, key string) (lua.LValue, bool) {
	m := v.(domain.SourceModule)
	switch key {
	case "name":
		return lua.LString(m.Name), true
	case "is_package":
		return lua.LBool(m.IsPackage), true
	case "source":
		return readData(L, m.Source, sourceModuleTypeName), true
	}
	return nil, false
}

func bytecodeModuleField(_ *lua.LState, v any, key string) (lua.LValue, bool) {
	m := v.(domain.BytecodeModule)
	switch key {
	case "name":
		return lua.LString(m.Name), true
	case "is_package":
		return lua.LBool(m.IsPackage), true
	case "optimize_level":
		return lua.LNumber(m.Optimize), true
	}
	return nil, false
}

func extensionModuleField(L *lua.LState, v any, key string) (lua.LValue, bool) {
	m := v.(domain.ExtensionModule)
	switch key {
	case "name":
		return lua.LString(m.Name), true
	case "variant":
		return lua.LString(m.Variant), true
	case "filename":
		return lua.LString(m.Filename), true
	case "builtin":
		return lua.LBool(m.Builtin), true
	case "required":
		return lua.LBool(m.Required), true
	case "is_package":
		return lua.LBool(m.IsPackage), true
	case "links":
		names := make([]string, 0, len(m.Links))
		for _, l := range m.Links {
			names = append(names, l.Name)
		}
		return stringList(L, names), true
	case "licenses":
		return stringList(L, m.Licenses), true
	}
	return nil, false
}

func packageResourceField(L *lua.LState, v any, key string) (lua.LValue, bool) {
	r := v.(domain.PackageResource)
	switch key {
	case "leaf_package":
		return lua.LString(r.LeafPackage.String()), true
	case "relative_name":
		return lua.LString(r.RelativeName), true
	case "data":
		return readData(L, r.Data, packageResourceTypeName), true
	}
	return nil, false
}

// readData resolves lazy resource content for a script read.
func readData(L *lua.LState, d domain.DataLocation, typeName string) lua.LValue {
	data, err := d.Resolve()
	if err != nil {
		raise(L, operationError(CodePythonDistribution, typeName, "", err))
	}
	return lua.LString(data)
}

// resourceValue wraps a resource record in the userdata type matching its kind.
func resourceValue(L *lua.LState, r domain.Resource) lua.LValue {
	switch r.Kind() {
	case domain.KindSourceModule:
		return newUserData(L, sourceModuleTypeName, r)
	case domain.KindBytecodeModule:
		return newUserData(L, bytecodeModuleTypeName, r)
	case domain.KindExtensionModule:
		return newUserData(L, extensionModuleTypeName, r)
	default:
		return newUserData(L, packageResourceTypeName, r)
	}
}

// asResource unwraps a resource userdata.
func asResource(v lua.LValue) (domain.Resource, bool) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return nil, false
	}
	r, ok := ud.Value.(domain.Resource)
	return r, ok
}

func resourceList[T domain.Resource](L *lua.LState, items []T) *lua.LTable {
	tbl := L.CreateTable(len(items), 0)
	for _, r := range items {
		tbl.Append(resourceValue(L, r))
	}
	return tbl
}

func stringList(L *lua.LState, items []string) *lua.LTable {
	tbl := L.CreateTable(len(items), 0)
	for _, s := range items {
		tbl.Append(lua.LString(s))
	}
	return tbl
}
