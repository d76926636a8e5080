package tack

import (
	"fmt"
)

// Eval evaluates expression in e. Definitions made during evaluation persist
// in e's root frame.
func (e *Env) Eval(expression Value) Value {
	return eval(expression, e)
}

// EvalString reads src and evaluates the result in e. A ParseError is
// returned unevaluated.
func (e *Env) EvalString(src string) Value {
	return eval(Read(src), e)
}

// ⟨symbol⟩
//
// A symbol evaluates to the value of its innermost binding. It is an error to
// reference an unbound symbol.
func evalSymbol(s Symbol, env *Env) Value {
	if !env.Contains(s) {
		return EvalError("Symbol Not defined")
	}
	return env.Lookup(s)
}

// (if ⟨test⟩ ⟨consequent⟩ ⟨alternate⟩)
// (if ⟨test⟩ ⟨consequent⟩)
//
// ⟨test⟩ must evaluate to a boolean. If it is true, ⟨consequent⟩ is evaluated
// and its value returned. Otherwise ⟨alternate⟩ is evaluated and its value
// returned; if there is no ⟨alternate⟩ the result is nil.
func evalIf(args []Value, env *Env) Value {
	if len(args) < 2 || len(args) > 3 {
		return EvalError(fmt.Sprintf("if: wrong number of args (%d)", len(args)))
	}

	switch test := eval(args[0], env).(type) {
	case Boolean:
		if test {
			return eval(args[1], env)
		}
		if len(args) == 2 {
			return Nil{}
		}
		return eval(args[2], env)
	case ParseError, EvalError:
		return test
	default:
		return EvalError("if: first element must be boolean")
	}
}

// (def ⟨name⟩ ⟨expression⟩)
//
// ⟨expression⟩ is evaluated in the current environment, even if ⟨name⟩ turns
// out not to be a symbol, and the result is bound to ⟨name⟩ in the root frame
// regardless of call depth. The right-hand side sees the old binding of
// ⟨name⟩, if any.
func evalDef(args []Value, env *Env) Value {
	if len(args) != 2 {
		return EvalError("def: expected 2 args")
	}
	v := eval(args[1], env)
	if isError(v) {
		return v
	}
	name, ok := args[0].(Symbol)
	if !ok {
		return EvalError("def: first arg not of type symbol")
	}
	env.insertGlobal(name, v)
	return Nil{}
}

// makeParams validates a parameter vector.
func makeParams(form Symbol, declaration Value) ([]Symbol, Value) {
	vec, ok := declaration.(Vector)
	if !ok {
		return nil, EvalError(fmt.Sprintf("%v: args must be a vector", form))
	}

	params := make([]Symbol, len(vec))
	for i, p := range vec {
		sym, ok := p.(Symbol)
		if !ok {
			return nil, EvalError(fmt.Sprintf("%v: args must be symbols", form))
		}
		params[i] = sym
	}
	return params, nil
}

func defineClosure(form Symbol, args []Value, env *Env, isMacro bool) Value {
	if len(args) != 3 {
		return EvalError(fmt.Sprintf("%v: expected 3 args", form))
	}
	name, ok := args[0].(Symbol)
	if !ok {
		return EvalError(fmt.Sprintf("%v: name must be a symbol", form))
	}
	params, err := makeParams(form, args[1])
	if err != nil {
		return err
	}

	env.insertGlobal(name, &Closure{Params: params, Body: args[2], IsMacro: isMacro})
	return Nil{}
}

// (defn ⟨name⟩ [⟨param⟩ ...] ⟨body⟩)
//
// Equivalent to (def ⟨name⟩ (fn [⟨param⟩ ...] ⟨body⟩)).
func evalDefn(args []Value, env *Env) Value {
	return defineClosure("defn", args, env, false)
}

// (defmacro ⟨name⟩ [⟨param⟩ ...] ⟨body⟩)
//
// Macro expansion is not implemented: the closure is marked as a macro but its
// arguments are still evaluated eagerly, exactly as with defn.
func evalDefmacro(args []Value, env *Env) Value {
	env.logger.Printf("WARN: defmacro not implemented yet, using defn instead")
	return defineClosure("defmacro", args, env, true)
}

// (fn [⟨param⟩ ...] ⟨body⟩)
//
// Returns a closure without binding it. The closure does not remember the
// environment in which it was created.
func evalFn(args []Value) Value {
	if len(args) != 2 {
		return EvalError("fn: expected 2 args")
	}
	params, err := makeParams("fn", args[0])
	if err != nil {
		return err
	}
	return &Closure{Params: params, Body: args[1]}
}

// evalArgs evaluates each argument exactly once, left to right. If any of the
// results is an error, the first one is returned as well.
func evalArgs(args []Value, env *Env) ([]Value, Value) {
	actuals := make([]Value, len(args))
	var failed Value
	for i, arg := range args {
		actuals[i] = eval(arg, env)
		if failed == nil && isError(actuals[i]) {
			failed = actuals[i]
		}
	}
	return actuals, failed
}

// evalForm evaluates a non-empty list as a call.
func evalForm(form List, env *Env) Value {
	head, args := form[0], form[1:]

	if sym, ok := head.(Symbol); ok {
		switch sym {
		case "if":
			return evalIf(args, env)
		case "def":
			return evalDef(args, env)
		case "defn":
			return evalDefn(args, env)
		case "fn":
			return evalFn(args)
		case "defmacro":
			return evalDefmacro(args, env)
		}

		// The head is resolved before the arguments run, so an argument that
		// rebinds it does not affect this call.
		head = evalSymbol(sym, env)
		if isError(head) {
			return head
		}
	}

	actuals, failed := evalArgs(args, env)
	if failed != nil {
		return failed
	}
	return apply(head, actuals, env)
}

// apply applies callee to already-evaluated arguments. Symbols and forms in
// callee position are resolved first.
func apply(callee Value, args []Value, env *Env) Value {
	switch callee := callee.(type) {
	case *Native:
		return callee.Op(args)
	case *Closure:
		return applyClosure(callee, args, env)
	case Symbol:
		return apply(evalSymbol(callee, env), args, env)
	case List:
		if len(callee) == 0 {
			return EvalError("Failed to evaluate form")
		}
		return apply(evalForm(callee, env), args, env)
	case ParseError, EvalError:
		return callee
	default:
		return EvalError("Failed to evaluate form")
	}
}

// applyClosure binds the closure's parameters in a fresh frame pushed onto the
// caller's environment and evaluates the body there.
func applyClosure(c *Closure, args []Value, env *Env) Value {
	if len(args) != len(c.Params) {
		return EvalError(fmt.Sprintf("fn: Wrong number of args (got %d, expected %d)", len(args), len(c.Params)))
	}

	scope := env.push()
	for i, p := range c.Params {
		scope.insertLocal(p, args[i])
	}
	return eval(c.Body, scope)
}

func eval(expression Value, env *Env) Value {
	if expression == nil {
		return Nil{}
	}

	switch e := expression.(type) {
	case Symbol:
		return evalSymbol(e, env)
	case List:
		if len(e) == 0 {
			return e
		}
		return evalForm(e, env)
	case Vector:
		result, failed := evalArgs(e, env)
		if failed != nil {
			return failed
		}
		return Vector(result)
	default:
		// Literals, closures, natives and errors evaluate to themselves.
		return e
	}
}
