package tack

import "fmt"

// Equals implements =. It returns true iff every argument is structurally
// equal to the first.
func Equals(args []Value) Value {
	if len(args) == 0 {
		return EvalError(fmt.Sprintf("=: wrong number of args (%d) passed", len(args)))
	}

	first := args[0]
	for _, v := range args[1:] {
		if !Equal(first, v) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

// Equal reports whether obj1 and obj2 are structurally equal. Natives are
// equal only if they share an ID.
func Equal(obj1, obj2 Value) bool {
	if obj1 == nil {
		obj1 = Nil{}
	}
	if obj2 == nil {
		obj2 = Nil{}
	}

	switch obj1 := obj1.(type) {
	case List:
		obj2, ok := obj2.(List)
		return ok && equalSeq(obj1, obj2)
	case Vector:
		obj2, ok := obj2.(Vector)
		return ok && equalSeq(obj1, obj2)
	case *Closure:
		obj2, ok := obj2.(*Closure)
		if !ok {
			return false
		}
		if obj1 == obj2 {
			return true
		}
		if obj1.IsMacro != obj2.IsMacro || len(obj1.Params) != len(obj2.Params) {
			return false
		}
		for i, p := range obj1.Params {
			if p != obj2.Params[i] {
				return false
			}
		}
		return Equal(obj1.Body, obj2.Body)
	case *Native:
		obj2, ok := obj2.(*Native)
		return ok && obj1.ID == obj2.ID
	default:
		// All remaining variants are comparable scalars.
		return obj1 == obj2
	}
}

func equalSeq(s1, s2 []Value) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i, e := range s1 {
		if !Equal(e, s2[i]) {
			return false
		}
	}
	return true
}
