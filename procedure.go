package tack

// ProcedurePred reports whether its argument can be applied.
func ProcedurePred(args []Value) Value {
	if len(args) != 1 {
		return wrongArgs("fn?", len(args))
	}
	switch args[0].(type) {
	case *Closure, *Native:
		return Boolean(true)
	default:
		return Boolean(false)
	}
}
