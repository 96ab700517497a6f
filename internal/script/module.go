package script

import (
	lua "github.com/yuin/gopher-lua"
)

// Method binds a script-visible name to a Go function.
type Method struct {
	Name string
	Fn   lua.LGFunction
}

// Type is a userdata type exposed to scripts. Methods are looked up before
// the read-only attributes Field returns; every type also answers the "type"
// field with its name. String renders the value for tostring.
type Type struct {
	Name    string
	Methods []Method
	Field   func(L *lua.LState, value any, key string) (lua.LValue, bool)
	String  func(value any) string
}

// Module is the set of globals and types one capability contributes.
type Module struct {
	Name    string
	Globals []Method
	Types   []Type
}

// Register installs modules into L. Types are registered before globals so
// constructors can create instances as soon as they are callable.
func Register(L *lua.LState, modules ...Module) {
	for _, m := range modules {
		for _, t := range m.Types {
			registerType(L, t)
		}
	}
	for _, m := range modules {
		for _, g := range m.Globals {
			L.SetGlobal(g.Name, L.NewFunction(g.Fn))
		}
	}
}

func registerType(L *lua.LState, t Type) {
	mt := L.NewTypeMetatable(t.Name)
	L.SetField(mt, "__name", lua.LString(t.Name))

	methods := L.NewTable()
	for _, m := range t.Methods {
		methods.RawSetString(m.Name, L.NewFunction(m.Fn))
	}

	L.SetField(mt, "__index", L.NewFunction(func(L *lua.LState) int {
		ud := L.CheckUserData(1)
		key := L.CheckString(2)

		if fn := methods.RawGetString(key); fn != lua.LNil {
			L.Push(fn)
			return 1
		}
		if t.Field != nil {
			if v, ok := t.Field(L, ud.Value, key); ok {
				L.Push(v)
				return 1
			}
		}
		if key == "type" {
			L.Push(lua.LString(t.Name))
			return 1
		}
		L.Push(lua.LNil)
		return 1
	}))

	L.SetField(mt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		ud := L.CheckUserData(1)
		if t.String != nil {
			L.Push(lua.LString(t.String(ud.Value)))
		} else {
			L.Push(lua.LString(t.Name))
		}
		return 1
	}))

	L.SetField(mt, "__newindex", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(2)
		return raise(L, typeError(t.Name, "cannot assign %s on a %s value", key, t.Name))
	}))
}

// newUserData wraps value in a userdata carrying the metatable of typeName.
func newUserData(L *lua.LState, typeName string, value any) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = value
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	return ud
}

// typeNameOf returns the script type name of v.
func typeNameOf(L *lua.LState, v lua.LValue) string {
	if ud, ok := v.(*lua.LUserData); ok {
		if mt, ok := L.GetMetatable(ud).(*lua.LTable); ok {
			if name, ok := mt.RawGetString("__name").(lua.LString); ok {
				return string(name)
			}
		}
	}
	return v.Type().String()
}

// checkSelf returns the receiver of a method call made with ':'.
func checkSelf[T any](L *lua.LState, typeName, label string) T {
	if ud, ok := L.Get(1).(*lua.LUserData); ok {
		if v, ok := ud.Value.(T); ok {
			return v
		}
	}
	raise(L, typeError(label, "function expects a %s for self; got type %s", typeName, typeNameOf(L, L.Get(1))))
	var zero T
	return zero
}
