package tack

import (
	"bufio"
	"io"
	"strings"
)

// Read parses src. Read never fails: malformed input is reported as a
// ParseError value.
func Read(src string) Value {
	v, err := ParseString(src)
	if err != nil {
		if perr, ok := err.(ParseError); ok {
			return perr
		}
		return ParseError(err.Error())
	}
	return v
}

func ParseString(s string) (Value, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads every expression in r. Empty input yields Nil, a single
// expression is returned as-is, and several top-level expressions are wrapped
// in a List.
func Parse(r io.Reader) (Value, error) {
	p := &parser{l: &lexer{r: bufio.NewReader(r)}}

	var exprs List
	for {
		tok, err := p.l.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		x, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, x)
	}

	switch len(exprs) {
	case 0:
		return Nil{}, nil
	case 1:
		return exprs[0], nil
	default:
		return exprs, nil
	}
}

type parser struct {
	l *lexer
}

func (p *parser) parseExpression(tok interface{}) (Value, error) {
	switch tok := tok.(type) {
	case Value:
		return tok, nil
	case rune:
		switch tok {
		case '(':
			elems, err := p.parseSeq(')')
			if err != nil {
				return nil, err
			}
			return List(elems), nil
		case '[':
			elems, err := p.parseSeq(']')
			if err != nil {
				return nil, err
			}
			return Vector(elems), nil
		}
	}
	return nil, ParseError("unbalanced parentheses")
}

// parseSeq parses elements up to and including the closing delimiter.
func (p *parser) parseSeq(close rune) ([]Value, error) {
	elems := []Value{}
	for {
		tok, err := p.l.next()
		if err == io.EOF {
			return nil, ParseError("unbalanced parentheses")
		}
		if err != nil {
			return nil, err
		}

		switch tok {
		case close:
			return elems, nil
		case ')', ']':
			return nil, ParseError("unmatched parentheses")
		}

		el, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
	}
}
