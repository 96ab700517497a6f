package script

import (
	"fmt"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	lua "github.com/yuin/gopher-lua"
)

const configTypeName = "PythonInterpreterConfig"

var configSignature = signature{
	fn: configTypeName,
	params: []param{
		optional("optimize_level", shapeInt),
		optional("write_bytecode", shapeBool),
		optional("unbuffered_stdio", shapeBool),
		optional("filesystem_importer", shapeBool),
		optional("sys_paths", shapeStringList),
		optional("run_mode", shapeString),
	},
}

func configModule() Module {
	return Module{
		Name: "config",
		Globals: []Method{
			{Name: configTypeName, Fn: newInterpreterConfig},
		},
		Types: []Type{
			{
				Name:  configTypeName,
				Field: configField,
				String: func(v any) string {
					c := v.(*domain.EmbeddedPythonConfig)
					return fmt.Sprintf("%s<optimize_level=%d, run_mode=%s>", configTypeName, c.OptimizeLevel, c.RunMode)
				},
			},
		},
	}
}

func newInterpreterConfig(L *lua.LState) int {
	a, bindErr := bind(L, configSignature, 1)
	if bindErr != nil {
		return raise(L, bindErr)
	}

	cfg := domain.DefaultEmbeddedPythonConfig()

	level := domain.OptimizationLevel(a.intOr("optimize_level", int(cfg.OptimizeLevel)))
	if !level.Valid() {
		return raise(L, valueError(configSignature.label(), "optimize_level must be between 0 and 2; got %d", level))
	}
	cfg.OptimizeLevel = level

	if s, ok := a.str("run_mode"); ok {
		mode, err := domain.ParseRunMode(s)
		if err != nil {
			return raise(L, valueError(configSignature.label(), "run mode %s not recognized", s))
		}
		cfg.RunMode = mode
	}

	cfg.WriteBytecode = a.boolOr("write_bytecode", cfg.WriteBytecode)
	cfg.UnbufferedStdio = a.boolOr("unbuffered_stdio", cfg.UnbufferedStdio)
	cfg.FilesystemImporter = a.boolOr("filesystem_importer", cfg.FilesystemImporter)
	cfg.SysPaths = a.strings("sys_paths")

	L.Push(newUserData(L, configTypeName, &cfg))
	return 1
}

func configField(L *lua.LState, v any, key string) (lua.LValue, bool) {
	c := v.(*domain.EmbeddedPythonConfig)
	switch key {
	case "optimize_level":
		return lua.LNumber(c.OptimizeLevel), true
	case "write_bytecode":
		return lua.LBool(c.WriteBytecode), true
	case "unbuffered_stdio":
		return lua.LBool(c.UnbufferedStdio), true
	case "filesystem_importer":
		return lua.LBool(c.FilesystemImporter), true
	case "sys_paths":
		return stringList(L, c.SysPaths), true
	case "run_mode":
		return lua.LString(c.RunMode.String()), true
	}
	return nil, false
}
