// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the slur language.
package parser

import (
	"strconv"
	"strings"

	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/type/boolean"
	"github.com/slur-lang/slur/internal/common/type/fixnum"
	"github.com/slur-lang/slur/internal/common/type/list"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/common/type/real"
	"github.com/slur-lang/slur/internal/common/type/str"
	"github.com/slur-lang/slur/internal/common/type/sym"
)

const (
	glyphs     = "_+-/*<>|&^%$@=?!~:"
	whitespace = " \t\r\n"
)

// T holds the state of the parser.
type T struct {
	offset int
	text   string
}

type parser = T

// Parse reads the form that starts at or after offset in text.
// It returns the form and the offset just past it. At the end of the input
// it returns a nil form.
func Parse(text string, offset int) (c cell.I, next int, err error) {
	defer failure.Recover(&err)

	p := &parser{offset: offset, text: text}

	c = p.form()

	return c, p.offset, nil
}

// All reads every form in text.
func All(text string) ([]cell.I, error) {
	var forms []cell.I

	for offset := 0; ; {
		c, next, err := Parse(text, offset)
		if err != nil {
			return forms, err
		}

		if c == nil {
			return forms, nil
		}

		forms = append(forms, c)
		offset = next
	}
}

func (p *parser) form() cell.I {
	p.skip()

	if p.done() {
		return nil
	}

	switch c := p.peek(); {
	case c == '(':
		p.offset++

		return p.elements(true)
	case c == ')':
		p.fail(false, "Unexpected ')'")
	case c == '"':
		return p.string()
	case p.numeric():
		return p.number()
	case strings.HasPrefix(p.text[p.offset:], "#t"):
		p.offset += 2
		p.terminated("#t")

		return boolean.True
	case c == '\'':
		p.offset++

		quoted := p.form()
		if quoted == nil {
			p.fail(true, "Expected an expression after quote")
		}

		return list.New(sym.New("quote"), quoted)
	}

	return p.symbol()
}

// The opening parenthesis has been consumed if first is true.
func (p *parser) elements(first bool) cell.I {
	p.skip()

	if p.done() {
		p.fail(true, "Missing ')'")
	}

	if p.peek() == ')' {
		p.offset++

		return pair.Null
	}

	if p.dot() {
		p.offset++

		cdr := p.cdr()
		if first {
			return pair.Cons(pair.Null, cdr)
		}

		return cdr
	}

	car := p.form()

	return pair.Cons(car, p.elements(false))
}

// The dot has been consumed.
func (p *parser) cdr() cell.I {
	p.skip()

	if p.done() {
		p.fail(true, "Missing ')'")
	}

	if p.peek() == ')' {
		p.fail(false, "Cannot follow '.' with ')'")
	}

	if p.dot() {
		p.fail(false, "Multiple '.' in list")
	}

	c := p.form()

	p.skip()

	if p.done() {
		p.fail(true, "Missing ')'")
	}

	if p.peek() != ')' {
		p.fail(false, "List with '.' had multiple cdr items.")
	}

	p.offset++

	return c
}

func (p *parser) number() cell.I {
	start := p.offset

	if p.peek() == '-' {
		p.offset++
	}

	whole := p.digits()
	isReal := false

	if !p.done() && p.peek() == '.' {
		isReal = true
		p.offset++

		if p.digits() == 0 && whole == 0 {
			p.fail(false, "Number expected, not found: %s", p.text[start:p.offset])
		}
	}

	if !p.done() && p.peek() == 'e' {
		isReal = true
		p.offset++

		if !p.done() && p.peek() == '-' {
			p.offset++
		}

		if p.digits() == 0 {
			p.fail(false, "Number expected, not found: %s", p.text[start:p.offset])
		}
	}

	text := p.text[start:p.offset]

	if !isReal && whole == 0 {
		p.fail(false, "Number expected, not found: %s", text)
	}

	if !p.done() && !p.terminator() {
		p.fail(false, "Unexpected character after number: %s", text)
	}

	if isReal {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !isRange(err) {
			p.fail(false, "Invalid number: %s", text)
		}

		return real.New(v)
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.fail(false, "Invalid number: %s", text)
	}

	return fixnum.New(v)
}

func (p *parser) string() cell.I {
	var b strings.Builder

	start := p.offset
	p.offset++

	for !p.done() && p.peek() != '"' {
		if p.peek() == '\\' {
			p.offset++

			if p.done() {
				break
			}
		}

		b.WriteByte(p.peek())
		p.offset++
	}

	if p.done() {
		p.offset = start
		p.fail(true, "Could not find end of string.")
	}

	p.offset++

	return str.New(b.String())
}

func (p *parser) symbol() cell.I {
	start := p.offset

	for !p.done() && isSymbolChar(p.peek()) {
		p.offset++
	}

	if start == p.offset {
		p.fail(false, "Invalid expression: %q", p.peek())
	}

	p.terminated("symbol")

	return sym.New(p.text[start:p.offset])
}

func (p *parser) digits() int {
	n := 0

	for !p.done() && isDigit(p.peek()) {
		p.offset++
		n++
	}

	return n
}

// A dot separates a cdr only when followed by whitespace.
func (p *parser) dot() bool {
	n := p.offset + 1

	return p.peek() == '.' && n < len(p.text) && strings.IndexByte(whitespace, p.text[n]) >= 0
}

func (p *parser) done() bool {
	return p.offset >= len(p.text)
}

func (p *parser) fail(incomplete bool, format string, a ...interface{}) {
	failure.At(p.offset, incomplete, format, a...)
}

func (p *parser) numeric() bool {
	c := p.peek()

	if c == '-' {
		n := p.offset + 1
		if n >= len(p.text) {
			return false
		}

		c = p.text[n]
	}

	return c == '.' || isDigit(c)
}

func (p *parser) peek() byte {
	return p.text[p.offset]
}

func (p *parser) skip() {
	for !p.done() {
		switch c := p.peek(); {
		case c == ';':
			for !p.done() && p.peek() != '\n' && p.peek() != '\r' {
				p.offset++
			}
		case strings.IndexByte(whitespace, c) >= 0:
			p.offset++
		default:
			return
		}
	}
}

func (p *parser) terminated(what string) {
	if !p.done() && !p.terminator() {
		p.fail(false, "Unexpected end of %s.", what)
	}
}

func (p *parser) terminator() bool {
	c := p.peek()

	return c == '(' || c == ')' || strings.IndexByte(whitespace, c) >= 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isRange(err error) bool {
	ne, ok := err.(*strconv.NumError) //nolint:errorlint
	return ok && ne.Err == strconv.ErrRange
}

func isSymbolChar(c byte) bool {
	return ('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		isDigit(c) ||
		strings.IndexByte(glyphs, c) >= 0
}
