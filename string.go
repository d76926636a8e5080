package tack

import "strings"

func StringPred(args []Value) Value {
	if len(args) != 1 {
		return wrongArgs("string?", len(args))
	}
	_, ok := args[0].(String)
	return Boolean(ok)
}

// StringStr concatenates its arguments into a String. Strings and characters
// contribute their contents; anything else contributes its rendering.
func StringStr(args []Value) Value {
	var b strings.Builder
	for _, v := range args {
		switch v := v.(type) {
		case String:
			b.WriteString(string(v))
		case Character:
			b.WriteRune(rune(v))
		default:
			Encode(&b, v)
		}
	}
	return String(b.String())
}
