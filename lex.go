package tack

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	r *bufio.Reader
}

// read returns the next rune. At end of input it returns io.EOF.
func (l *lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	return c, err
}

// next returns the next token: one of the runes ( ) [ ], a String literal, a
// bare atom (Number, Boolean, Nil or Symbol), or io.EOF.
func (l *lexer) next() (interface{}, error) {
	for {
		c, err := l.read()
		if err != nil {
			return nil, err
		}

		switch {
		case c == '(' || c == ')' || c == '[' || c == ']':
			return c, nil
		case c == '"':
			return l.string()
		case c == ';':
			if err := l.lineComment(); err != nil {
				return nil, err
			}
		case isSpace(c):
			// skip
		default:
			return l.atom(c)
		}
	}
}

func (l *lexer) lineComment() error {
	for {
		c, err := l.read()
		if err == io.EOF || c == '\n' {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (l *lexer) string() (interface{}, error) {
	var s strings.Builder
	for {
		c, err := l.read()
		if err == io.EOF {
			return nil, ParseError("unbalanced string quotes")
		}
		if err != nil {
			return nil, err
		}
		switch c {
		case '"':
			return String(s.String()), nil
		case '\\':
			k, err := l.read()
			if err == io.EOF {
				return nil, ParseError("unbalanced string quotes")
			}
			if err != nil {
				return nil, err
			}
			switch k {
			case '\\', '"':
				c = k
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			default:
				return nil, ParseError(fmt.Sprintf("invalid escape sequence '\\%c'", k))
			}
		}
		s.WriteRune(c)
	}
}

func (l *lexer) atom(first rune) (interface{}, error) {
	var text strings.Builder
	text.WriteRune(first)

	for {
		c, err := l.read()
		if err == io.EOF {
			return inferAtom(text.String()), nil
		}
		if err != nil {
			return nil, err
		}
		if !continuesAtom(c) {
			l.r.UnreadRune()
			return inferAtom(text.String()), nil
		}
		text.WriteRune(c)
	}
}

// inferAtom assigns a type to a bare token: base-10 integers become Numbers,
// true and false become Booleans, nil becomes Nil, and anything else is a
// Symbol.
func inferAtom(s string) Value {
	switch s {
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	case "nil":
		return Nil{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Number(n)
	}
	return Symbol(s)
}

func continuesAtom(c rune) bool {
	switch c {
	case '(', ')', '[', ']', '"', ';':
		return false
	}
	return !isSpace(c)
}

// isSpace reports whether c separates tokens. Commas are whitespace.
func isSpace(c rune) bool {
	return c == ',' || unicode.IsSpace(c)
}
