package tack

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Value is any runtime value. Code and data share this representation: a
// List read from source is both a data structure and a callable form.
//
// The set of Values is closed; every implementation lives in this package.
type Value interface {
	write(w io.Writer) error
}

// Encode writes a textual representation of v to w.
func Encode(w io.Writer, v Value) error {
	if v == nil {
		return Nil{}.write(w)
	}
	return v.write(w)
}

// EncodeToString returns the textual representation of v.
func EncodeToString(v Value) string {
	var b strings.Builder
	Encode(&b, v)
	return b.String()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Symbol
type Symbol string

func (s Symbol) write(w io.Writer) error {
	return writeString(w, string(s))
}

// Number is a fixed-width signed integer.
type Number int64

func (n Number) write(w io.Writer) error {
	return writeString(w, strconv.FormatInt(int64(n), 10))
}

// String
type String string

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

func (s String) write(w io.Writer) error {
	return writeString(w, `"`+stringEscaper.Replace(string(s))+`"`)
}

// Character
type Character rune

func (c Character) write(w io.Writer) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(c))
	_, err := w.Write(buf[:n])
	return err
}

// Boolean
type Boolean bool

func (b Boolean) write(w io.Writer) error {
	return writeString(w, strconv.FormatBool(bool(b)))
}

// Nil is the canonical empty value. It is the result of an empty program,
// of def/defn, and of an if whose condition is false and has no else branch.
type Nil struct{}

func (Nil) write(w io.Writer) error {
	return writeString(w, "nil")
}

// ParseError is produced by the reader. Evaluating a ParseError returns it
// unchanged.
type ParseError string

func (e ParseError) Error() string {
	return "Parse Error: " + string(e)
}

func (e ParseError) write(w io.Writer) error {
	return writeString(w, e.Error())
}

// EvalError is produced by the evaluator and by natives when a semantic
// precondition fails.
type EvalError string

func (e EvalError) Error() string {
	return "Eval Error: " + string(e)
}

func (e EvalError) write(w io.Writer) error {
	return writeString(w, e.Error())
}

// isError returns true if v is a ParseError or an EvalError.
func isError(v Value) bool {
	switch v.(type) {
	case ParseError, EvalError:
		return true
	default:
		return false
	}
}

func writeSeq(w io.Writer, open, close string, elems []Value) error {
	if err := writeString(w, open); err != nil {
		return err
	}
	for i, e := range elems {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := Encode(w, e); err != nil {
			return err
		}
	}
	return writeString(w, close)
}

// List is an ordered sequence. In head position it is a call form: the first
// element is the operator and the rest are the operands.
type List []Value

func (l List) write(w io.Writer) error {
	return writeSeq(w, "(", ")", l)
}

// Vector is an ordered sequence whose elements are evaluated individually.
// A Vector is never applied as a call.
type Vector []Value

func (v Vector) write(w io.Writer) error {
	return writeSeq(w, "[", "]", v)
}

// Closure is a user-defined function. Closures do not capture their defining
// environment: the body runs against the caller's environment extended with a
// fresh frame holding the parameters.
type Closure struct {
	Params []Symbol
	Body   Value

	// IsMacro is set for closures created by defmacro. Macro expansion is not
	// implemented; such closures are applied like any other.
	IsMacro bool
}

func (c *Closure) write(w io.Writer) error {
	params := make(Vector, len(c.Params))
	for i, p := range c.Params {
		params[i] = p
	}
	return List{Symbol("fn"), params, c.Body}.write(w)
}

// NativeFunc is the signature of a built-in operation. It receives the
// evaluated arguments and reports failures as EvalError values.
type NativeFunc func(args []Value) Value

// Native is a built-in operation. Natives are compared by ID, never by Op.
type Native struct {
	ID   uuid.UUID
	Name Symbol
	Op   NativeFunc
}

// NewNative returns a Native with a fresh unique ID.
func NewNative(name Symbol, op NativeFunc) *Native {
	return &Native{ID: uuid.New(), Name: name, Op: op}
}

func (n *Native) write(w io.Writer) error {
	return writeString(w, "<builtin "+string(n.Name)+">")
}
