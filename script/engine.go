package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/chord"
)

// Engine errors.
var (
	ErrEngineClosed  = errors.New("script engine is closed")
	ErrUnknownAction = errors.New("no such scripted action")
)

// ErrorHandler receives runtime errors raised by Lua actions. label is
// the binding's chord or action name.
type ErrorHandler func(label string, err error)

// Option configures an Engine.
type Option func(*Engine)

// WithErrorHandler sets the callback for action runtime errors. The
// default writes nothing; hosts usually log to stderr.
func WithErrorHandler(h ErrorHandler) Option {
	return func(e *Engine) {
		e.onError = h
	}
}

// Engine hosts a sandboxed Lua interpreter that collects chord bindings
// from user scripts.
type Engine struct {
	mu sync.Mutex

	L        *lua.LState
	bindings []chord.Binding
	actions  map[string]*lua.LFunction
	onError  ErrorHandler
	closed   bool
}

// NewEngine creates a sandboxed engine with the keychord module
// installed.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		actions: make(map[string]*lua.LFunction),
		onError: func(string, error) {},
	}
	for _, opt := range opts {
		opt(e)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	removeUnsafeGlobals(L)

	mod := L.NewTable()
	L.SetField(mod, "bind", L.NewFunction(e.luaBind))
	L.SetField(mod, "action", L.NewFunction(e.luaAction))
	L.SetGlobal("keychord", mod)

	e.L = L
	return e
}

// openSafeLibraries opens only the side-effect-free parts of the Lua
// stdlib. io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// removeUnsafeGlobals strips the code-loading escape hatches the base
// library brings along.
func removeUnsafeGlobals(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// luaBind implements keychord.bind(keys, fn [, description]).
func (e *Engine) luaBind(L *lua.LState) int {
	spec := L.CheckString(1)
	fn := L.CheckFunction(2)
	desc := L.OptString(3, "")

	c, err := chord.ParseChord(spec)
	if err != nil {
		L.RaiseError("bind: %v", err)
		return 0
	}

	e.bindings = append(e.bindings, chord.Binding{
		Chord:       c,
		Do:          e.wrap(c.String(), fn),
		Description: desc,
	})
	return 0
}

// luaAction implements keychord.action(name, fn).
func (e *Engine) luaAction(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	if name == "" {
		L.RaiseError("action: empty name")
		return 0
	}
	e.actions[name] = fn
	return 0
}

// wrap turns a Lua function into a chord.Action. The action locks the
// engine, calls the function with no arguments, and routes any runtime
// error to the error handler.
func (e *Engine) wrap(label string, fn *lua.LFunction) chord.Action {
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if e.closed {
			e.onError(label, ErrEngineClosed)
			return
		}
		if err := e.pcall(fn); err != nil {
			e.onError(label, err)
		}
	}
}

// pcall invokes fn with panic recovery. Caller holds the lock.
func (e *Engine) pcall(fn *lua.LFunction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// LoadFile runs a bindings script from disk, collecting bind and action
// registrations.
func (e *Engine) LoadFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// LoadString runs a bindings script from a string.
func (e *Engine) LoadString(code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := e.L.DoString(code); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// Bindings returns a copy of the bindings collected so far.
func (e *Engine) Bindings() []chord.Binding {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]chord.Binding, len(e.bindings))
	copy(out, e.bindings)
	return out
}

// Resolve returns the named scripted action. Its signature matches the
// config package's Resolver, so an engine can back a JSON bindings file.
func (e *Engine) Resolve(name string) (chord.Action, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn, ok := e.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	return e.wrap(name, fn), nil
}

// Close shuts down the interpreter. Actions invoked afterwards report
// ErrEngineClosed through the error handler.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}
