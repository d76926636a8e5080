package tack

// Repr returns the rendering of its argument as a String.
func Repr(args []Value) Value {
	if len(args) != 1 {
		return wrongArgs("repr", len(args))
	}
	return String(EncodeToString(args[0]))
}
