package tack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumerics(t *testing.T) {
	cases := []struct {
		expr     string
		expected Value
	}{
		{"(+)", Number(0)},
		{"(+ 5)", Number(5)},
		{"(+ 1 1)", Number(2)},
		{"(+ 4 5 6)", Number(15)},
		{"(+ 5 -1)", Number(4)},

		{"(- 1)", Number(-1)},
		{"(- 1 1)", Number(0)},
		{"(- 2 3)", Number(-1)},
		{"(- 9 5 2)", Number(2)},
		{"(- 4 -2)", Number(6)},

		{"(*)", Number(1)},
		{"(* 2)", Number(2)},
		{"(* 2 3)", Number(6)},
		{"(* 2 0)", Number(0)},
		{"(* 4 -1)", Number(-4)},

		{"(/ 1)", Number(1)},
		{"(/ 2)", Number(0)},
		{"(/ 2 1)", Number(2)},
		{"(/ 100 2 2 5)", Number(5)},
		{"(/ 100 0 2)", EvalError("/: Divide by zero")},
		{`(/ "a")`, EvalError("/: invalid value")},

		{"(%)", EvalError("%: Wrong number of args (0)")},
		{"(% 1)", EvalError("%: Wrong number of args (1)")},
		{"(% 1 1)", Number(0)},
		{"(% 10 7)", Number(3)},
		{"(% 10 -3)", Number(1)},
		{"(% -10 3)", Number(-1)},

		{"(< 1 2)", Boolean(true)},
		{"(< 1 3 2)", Boolean(false)},
		{"(> 3 2 1)", Boolean(true)},
		{"(<= 1 1 2)", Boolean(true)},
		{"(>= 1 2)", Boolean(false)},
		{"(< 1)", Boolean(true)},
		{"(<)", EvalError("<: Wrong number of args (0)")},
		{`(> 1 "2")`, EvalError(">: invalid value")},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			assert.Equal(t, c.expected, NewEnv().EvalString(c.expr))
		})
	}
}

func TestSequences(t *testing.T) {
	cases := []struct {
		expr     string
		expected Value
	}{
		{"(list)", List{}},
		{"(list 1 (+ 1 1))", List{Number(1), Number(2)}},
		{"(vector 1 2)", Vector{Number(1), Number(2)}},
		{"(first (list 1 2))", Number(1)},
		{`(first "ab")`, Character('a')},
		{"(first [])", Nil{}},
		{"(first 1)", EvalError("first: invalid value")},
		{"(rest [1])", List{}},
		{"(rest [])", List{}},
		{"(count [1 2 3])", Number(3)},
		{"(count nil)", Number(0)},
		{"(count 1 2)", EvalError("count: Wrong number of args (2)")},
		{"(nil? nil)", Boolean(true)},
		{"(nil? (if false 1))", Boolean(true)},
		{"(nil? 0)", Boolean(false)},
		{"(not true)", Boolean(false)},
		{"(not 1)", EvalError("not: invalid value")},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			assert.Equal(t, c.expected, NewEnv().EvalString(c.expr))
		})
	}
}

func TestStringsAndProcedures(t *testing.T) {
	cases := []struct {
		expr     string
		expected Value
	}{
		{`(string? "a")`, Boolean(true)},
		{"(string? 1)", Boolean(false)},
		{`(str "a" 1 (first "b") [2])`, String("a1b[2]")},
		{"(str)", String("")},
		{`(repr "a")`, String(`"a"`)},
		{"(repr (fn [x] x))", String("(fn [x] x)")},
		{"(fn? inc)", Boolean(true)},
		{"(fn? +)", Boolean(true)},
		{"(fn? 1)", Boolean(false)},
		{"(fn?)", EvalError("fn?: Wrong number of args (0)")},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			assert.Equal(t, c.expected, NewEnv().EvalString(c.expr))
		})
	}
}
