package tack

func BooleanNot(args []Value) Value {
	if len(args) != 1 {
		return wrongArgs("not", len(args))
	}
	b, ok := args[0].(Boolean)
	if !ok {
		return invalidValue("not")
	}
	return !b
}

func NilPred(args []Value) Value {
	if len(args) != 1 {
		return wrongArgs("nil?", len(args))
	}
	_, ok := args[0].(Nil)
	return Boolean(ok || args[0] == nil)
}
