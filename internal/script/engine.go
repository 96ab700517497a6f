// Package script binds Python distribution capabilities into a sandboxed Lua
// configuration script.
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	lua "github.com/yuin/gopher-lua"
	"go.trai.ch/zerr"
)

const (
	globalBuildTarget = "BUILD_TARGET_TRIPLE"
	globalHostTriple  = "BUILD_HOST_TRIPLE"
	globalCwd         = "CWD"
	globalConfigPath  = "CONFIG_PATH"
)

// Env holds the collaborators and context values one evaluation runs with.
type Env struct {
	Resolver  ports.DistributionResolver
	Registry  ports.DistributionRegistry
	Packaging ports.PackagingTool
	Finder    ports.ResourceFinder
	Logger    ports.Logger

	DistributionsDir string
	BuildTarget      string
	HostTriple       string
	Cwd              string
	ConfigPath       string
}

// Engine evaluates configuration scripts. It is not safe for concurrent use.
type Engine struct {
	env Env
	L   *lua.LState

	handles     []*Handle
	executables []*executable
	closed      bool
}

// NewEngine creates a sandboxed Lua state with the distribution capabilities installed.
func NewEngine(env Env) *Engine {
	if env.HostTriple == "" {
		env.HostTriple = domain.HostTriple()
	}
	if env.BuildTarget == "" {
		env.BuildTarget = env.HostTriple
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}

	e := &Engine{env: env, L: L}

	L.SetGlobal(globalBuildTarget, lua.LString(env.BuildTarget))
	L.SetGlobal(globalHostTriple, lua.LString(env.HostTriple))
	L.SetGlobal(globalCwd, lua.LString(env.Cwd))
	L.SetGlobal(globalConfigPath, lua.LString(env.ConfigPath))

	Register(L,
		Module{Name: "errors", Types: []Type{errorType()}},
		Module{Name: "resources", Types: resourceTypes()},
		configModule(),
		e.distributionModule(),
	)
	return e
}

// Eval runs source under ctx. Script failures are returned as *Error.
func (e *Engine) Eval(ctx context.Context, name, source string) (err error) {
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.Wrap(fmt.Errorf("panic: %v", r), domain.ErrEvaluationFailed.Error()), "script", name)
		}
	}()

	fn, err := e.L.Load(strings.NewReader(source), name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), "script", name)
	}

	e.L.Push(fn)
	if err := e.L.PCall(0, lua.MultRet, nil); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if se, ok := AsError(err); ok {
			return se
		}
		return zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), "script", name)
	}
	return nil
}

// Executables returns the executables the script has built so far.
func (e *Engine) Executables() []*domain.ExecutableBuilder {
	out := make([]*domain.ExecutableBuilder, 0, len(e.executables))
	for _, x := range e.executables {
		out = append(out, x.builder)
	}
	return out
}

// Close stops every compiler started by the script and releases the Lua state.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	var errs []error
	for _, h := range e.handles {
		if err := h.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.L.Close()
	return errors.Join(errs...)
}

func (e *Engine) ctx(L *lua.LState) context.Context {
	if ctx := L.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// global reads a string global the script may have overridden.
func (e *Engine) global(L *lua.LState, name, fallback string) string {
	if s, ok := L.GetGlobal(name).(lua.LString); ok && s != "" {
		return string(s)
	}
	return fallback
}
