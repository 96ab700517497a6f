package script

import (
	"math"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	lua "github.com/yuin/gopher-lua"
)

// shape is the dynamic type a parameter accepts.
type shape int

const (
	shapeString shape = iota
	shapeBool
	shapeInt
	shapeStringList
	shapeStringMap
	shapeResource
	shapeResourceList
	shapeUserData
)

// param is one declared parameter. typeName names the accepted userdata
// type for shapeUserData.
type param struct {
	name     string
	shape    shape
	required bool
	typeName string
}

func required(name string, s shape) param { return param{name: name, shape: s, required: true} }

func optional(name string, s shape) param { return param{name: name, shape: s} }

func instance(name, typeName string) param {
	return param{name: name, shape: shapeUserData, typeName: typeName}
}

// signature describes the parameters of one constructor or method.
type signature struct {
	fn     string
	params []param
}

func (s signature) label() string {
	return s.fn + "()"
}

func (s signature) lookup(name string) (param, bool) {
	for _, p := range s.params {
		if p.name == name {
			return p, true
		}
	}
	return param{}, false
}

// args holds the validated arguments of one call. Absent optional
// parameters are missing from values.
type args struct {
	values map[string]lua.LValue
}

// bind validates the call arguments starting at stack index start against sig.
// Arguments are either positional or a single table keyed by parameter name.
func bind(L *lua.LState, sig signature, start int) (args, *Error) {
	a := args{values: map[string]lua.LValue{}}
	count := L.GetTop() - start + 1

	if tbl, ok := L.Get(start).(*lua.LTable); ok && count == 1 && isKeywordTable(tbl, sig) {
		var bindErr *Error
		tbl.ForEach(func(k, v lua.LValue) {
			if bindErr != nil {
				return
			}
			key, ok := k.(lua.LString)
			if !ok {
				bindErr = typeError(sig.label(), "keyword arguments must be strings for call to %s; got type %s",
					sig.fn, k.Type())
				return
			}
			if _, ok := sig.lookup(string(key)); !ok {
				bindErr = typeError(sig.label(), "unexpected keyword argument %s for call to %s", key, sig.fn)
				return
			}
			a.values[string(key)] = v
		})
		if bindErr != nil {
			return args{}, bindErr
		}
	} else {
		if count > len(sig.params) {
			return args{}, typeError(sig.label(), "%s takes at most %d arguments; got %d", sig.fn, len(sig.params), count)
		}
		for i := range count {
			if v := L.Get(start + i); v != lua.LNil {
				a.values[sig.params[i].name] = v
			}
		}
	}

	for _, p := range sig.params {
		v, ok := a.values[p.name]
		if !ok {
			if p.required {
				return args{}, typeError(sig.label(), "Missing parameter %s for call to %s", p.name, sig.fn)
			}
			continue
		}
		if err := check(L, sig, p, v); err != nil {
			return args{}, err
		}
	}
	return a, nil
}

// isKeywordTable decides whether a lone table argument carries keyword
// arguments or is the positional value of the first parameter.
func isKeywordTable(tbl *lua.LTable, sig signature) bool {
	if len(sig.params) == 0 {
		return true
	}

	empty := true
	stringKeys := false
	allParams := true
	tbl.ForEach(func(k, _ lua.LValue) {
		empty = false
		if key, ok := k.(lua.LString); ok {
			stringKeys = true
			if _, known := sig.lookup(string(key)); !known {
				allParams = false
			}
		}
	})

	switch sig.params[0].shape {
	case shapeStringList, shapeResourceList:
		return stringKeys
	case shapeStringMap:
		return !empty && stringKeys && allParams
	default:
		return empty || stringKeys
	}
}

func check(L *lua.LState, sig signature, p param, v lua.LValue) *Error {
	mismatch := func(expected, name string, got lua.LValue) *Error {
		return typeError(sig.label(), "function expects a %s for %s; got type %s", expected, name, typeNameOf(L, got))
	}

	switch p.shape {
	case shapeString:
		if _, ok := v.(lua.LString); !ok {
			return mismatch("string", p.name, v)
		}
	case shapeBool:
		if _, ok := v.(lua.LBool); !ok {
			return mismatch("boolean", p.name, v)
		}
	case shapeInt:
		n, ok := v.(lua.LNumber)
		if !ok || !isInteger(n) {
			return mismatch("integer", p.name, v)
		}
	case shapeStringList:
		tbl, ok := v.(*lua.LTable)
		if !ok || !isSequence(tbl) {
			return mismatch("list of strings", p.name, v)
		}
		for i := 1; i <= tbl.Len(); i++ {
			if item := tbl.RawGetInt(i); item.Type() != lua.LTString {
				return mismatch("string", indexName(p.name, i), item)
			}
		}
	case shapeStringMap:
		tbl, ok := v.(*lua.LTable)
		if !ok {
			return mismatch("table of strings", p.name, v)
		}
		var err *Error
		tbl.ForEach(func(k, item lua.LValue) {
			if err != nil {
				return
			}
			if k.Type() != lua.LTString {
				err = mismatch("string key", p.name, k)
				return
			}
			if item.Type() != lua.LTString {
				err = mismatch("string", p.name+"."+k.String(), item)
			}
		})
		return err
	case shapeResource:
		if _, ok := asResource(v); !ok {
			return mismatch("Python resource", p.name, v)
		}
	case shapeResourceList:
		tbl, ok := v.(*lua.LTable)
		if !ok || !isSequence(tbl) {
			return mismatch("list of resources", p.name, v)
		}
		for i := 1; i <= tbl.Len(); i++ {
			item := tbl.RawGetInt(i)
			if _, ok := asResource(item); !ok {
				return mismatch("Python resource", indexName(p.name, i), item)
			}
		}
	case shapeUserData:
		if typeNameOf(L, v) != p.typeName {
			return mismatch(p.typeName, p.name, v)
		}
	}
	return nil
}

// maxExactInt is the largest magnitude a Lua number holds without losing integer precision.
const maxExactInt = 1 << 53

func isInteger(n lua.LNumber) bool {
	f := float64(n)
	return f == math.Trunc(f) && math.Abs(f) <= maxExactInt
}

// isSequence reports whether every key of tbl is an integer index in 1..#tbl.
func isSequence(tbl *lua.LTable) bool {
	n := tbl.Len()
	ok := true
	tbl.ForEach(func(k, _ lua.LValue) {
		i, isNum := k.(lua.LNumber)
		if !isNum || !isInteger(i) || i < 1 || int(i) > n {
			ok = false
		}
	})
	return ok
}

func indexName(name string, i int) string {
	return name + "[" + lua.LNumber(i).String() + "]"
}

func (a args) has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// str returns a string argument and whether it was given.
func (a args) str(name string) (string, bool) {
	v, ok := a.values[name].(lua.LString)
	return string(v), ok
}

func (a args) strOr(name, def string) string {
	if s, ok := a.str(name); ok {
		return s
	}
	return def
}

func (a args) boolOr(name string, def bool) bool {
	if v, ok := a.values[name].(lua.LBool); ok {
		return bool(v)
	}
	return def
}

func (a args) intOr(name string, def int) int {
	if v, ok := a.values[name].(lua.LNumber); ok {
		return int(v)
	}
	return def
}

// strings returns a list-of-strings argument in list order.
func (a args) strings(name string) []string {
	tbl, ok := a.values[name].(*lua.LTable)
	if !ok {
		return nil
	}
	out := make([]string, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		out = append(out, tbl.RawGetInt(i).String())
	}
	return out
}

// stringMap returns a table-of-strings argument, nil when absent.
func (a args) stringMap(name string) map[string]string {
	tbl, ok := a.values[name].(*lua.LTable)
	if !ok {
		return nil
	}
	out := map[string]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		out[k.String()] = v.String()
	})
	return out
}

func (a args) resource(name string) (domain.Resource, bool) {
	return asResource(a.values[name])
}

func (a args) resources(name string) []domain.Resource {
	tbl, ok := a.values[name].(*lua.LTable)
	if !ok {
		return nil
	}
	out := make([]domain.Resource, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		if r, ok := asResource(tbl.RawGetInt(i)); ok {
			out = append(out, r)
		}
	}
	return out
}

func (a args) userData(name string) (any, bool) {
	ud, ok := a.values[name].(*lua.LUserData)
	if !ok {
		return nil, false
	}
	return ud.Value, true
}
