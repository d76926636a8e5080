package tack

// builtins maps names to the natives installed in every root frame.
var builtins = map[Symbol]NativeFunc{
	// equality
	"=": Equals,

	// numerics
	"+":  NumberAdd,
	"-":  NumberSub,
	"*":  NumberMul,
	"/":  NumberDiv,
	"%":  NumberMod,
	"<":  NumberLt,
	">":  NumberGt,
	"<=": NumberLte,
	">=": NumberGte,

	// booleans
	"not": BooleanNot,

	// sequences
	"concat": SeqConcat,
	"list":   ListConstructor,
	"vector": VectorConstructor,
	"first":  SeqFirst,
	"rest":   SeqRest,
	"count":  SeqCount,
	"nil?":   NilPred,

	// strings
	"string?": StringPred,
	"str":     StringStr,
	"repr":    Repr,

	// procedures
	"fn?": ProcedurePred,
}

// prelude holds closures defined in the language itself.
var prelude = []struct {
	name   Symbol
	params []Symbol
	body   string
}{
	{"inc", []Symbol{"x"}, "(+ x 1)"},
	{"dec", []Symbol{"x"}, "(- x 1)"},
}

func installBuiltins(e *Env) {
	for name, op := range builtins {
		e.insertGlobal(name, NewNative(name, op))
	}
	for _, p := range prelude {
		e.insertGlobal(p.name, &Closure{Params: p.params, Body: Read(p.body)})
	}
}
