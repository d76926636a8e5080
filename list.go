package tack

// elements returns the elements of a sequence. Strings decompose into their
// characters.
func elements(v Value) ([]Value, bool) {
	switch v := v.(type) {
	case List:
		return v, true
	case Vector:
		return v, true
	case String:
		var chars []Value
		for _, c := range string(v) {
			chars = append(chars, Character(c))
		}
		return chars, true
	default:
		return nil, false
	}
}

// SeqConcat flattens its List, Vector and String arguments into a single
// List.
func SeqConcat(args []Value) Value {
	result := List{}
	for _, arg := range args {
		elems, ok := elements(arg)
		if !ok {
			return EvalError("concat: not a concatable collection type")
		}
		result = append(result, elems...)
	}
	return result
}

func ListConstructor(args []Value) Value {
	return append(List{}, args...)
}

func SeqFirst(args []Value) Value {
	if len(args) != 1 {
		return wrongArgs("first", len(args))
	}
	elems, ok := elements(args[0])
	if !ok {
		return invalidValue("first")
	}
	if len(elems) == 0 {
		return Nil{}
	}
	return elems[0]
}

// SeqRest returns all but the first element of a sequence as a List.
func SeqRest(args []Value) Value {
	if len(args) != 1 {
		return wrongArgs("rest", len(args))
	}
	elems, ok := elements(args[0])
	if !ok {
		return invalidValue("rest")
	}
	if len(elems) == 0 {
		return List{}
	}
	return append(List{}, elems[1:]...)
}

func SeqCount(args []Value) Value {
	if len(args) != 1 {
		return wrongArgs("count", len(args))
	}
	if _, ok := args[0].(Nil); ok {
		return Number(0)
	}
	elems, ok := elements(args[0])
	if !ok {
		return invalidValue("count")
	}
	return Number(len(elems))
}
