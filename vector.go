package tack

func VectorConstructor(args []Value) Value {
	return append(Vector{}, args...)
}
