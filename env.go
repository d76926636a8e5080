package tack

import (
	"io"
	"log"
)

// frame is a single scope mapping names to values.
type frame struct {
	env   map[Symbol]Value
	outer *frame
}

func newFrame(outer *frame) *frame {
	return &frame{env: map[Symbol]Value{}, outer: outer}
}

func (f *frame) lookup(name Symbol) (Value, bool) {
	for f != nil {
		if v, ok := f.env[name]; ok {
			return v, true
		}
		f = f.outer
	}
	return nil, false
}

// Env is an evaluation environment. It is made of one root frame, shared by
// every Env derived from it, and a chain of local frames owned by the call
// that pushed them. Definitions made by def and defn always land in the root
// frame, so they are visible from every call depth and persist across
// evaluations of the same Env.
//
// An Env is not safe for concurrent use.
type Env struct {
	root   *frame
	locals *frame
	logger *log.Logger
}

// Option configures a new Env.
type Option func(e *Env)

// WithLogger sets the logger used for evaluator warnings. By default warnings
// are discarded.
func WithLogger(l *log.Logger) Option {
	return func(e *Env) {
		e.logger = l
	}
}

// WithBindings adds the given bindings to the root frame after the builtins
// have been installed.
func WithBindings(bindings map[Symbol]Value) Option {
	return func(e *Env) {
		for name, v := range bindings {
			e.root.env[name] = v
		}
	}
}

// NewEnv returns a fresh environment whose root frame holds the builtins.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		root:   newFrame(nil),
		logger: log.New(io.Discard, "", 0),
	}
	installBuiltins(e)
	for _, o := range opts {
		o(e)
	}
	return e
}

// top returns the innermost frame.
func (e *Env) top() *frame {
	if e.locals != nil {
		return e.locals
	}
	return e.root
}

// push returns a new Env with an empty local frame in front of e's frames.
// The new Env shares e's root frame.
func (e *Env) push() *Env {
	return &Env{root: e.root, locals: newFrame(e.locals), logger: e.logger}
}

func (e *Env) insertLocal(name Symbol, v Value) {
	e.top().env[name] = v
}

func (e *Env) insertGlobal(name Symbol, v Value) {
	e.root.env[name] = v
}

// Define binds name to v in the root frame.
func (e *Env) Define(name Symbol, v Value) {
	e.insertGlobal(name, v)
}

// Lookup returns the innermost binding of name, or EvalError("Not in scope")
// if name is not bound in any frame.
func (e *Env) Lookup(name Symbol) Value {
	if v, ok := e.locals.lookup(name); ok {
		return v
	}
	if v, ok := e.root.env[name]; ok {
		return v
	}
	return EvalError("Not in scope")
}

// Contains reports whether name is bound in any frame.
func (e *Env) Contains(name Symbol) bool {
	if _, ok := e.locals.lookup(name); ok {
		return true
	}
	_, ok := e.root.env[name]
	return ok
}
