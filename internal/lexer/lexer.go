// Package lexer turns raw JSON text into a position-tagged token stream.
//
// The lexer is intentionally structural: it classifies every value into one
// of the primitive kinds in package token but never decodes it. String escapes
// are only skipped over so an escaped quote does not end the literal, and
// numbers are not range checked.
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mcncl/typegen/internal/token"
)

// AmbiguousQuoteError is returned when a '"' appears after a token that
// establishes neither a field name nor a string value.
type AmbiguousQuoteError struct {
	Line int
	Col  int
}

func (e *AmbiguousQuoteError) Error() string {
	return fmt.Sprintf("unexpected string literal near line %d column %d", e.Line+1, e.Col)
}

// Lexer holds the scanning state for a single document.
type Lexer struct {
	lines  []string
	line   int
	tokens []token.Token
	// containers is the stack of currently open ObjectStart/ArrayStart kinds.
	containers []token.Kind
}

// New creates a lexer over the given text.
func New(text string) *Lexer {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &Lexer{lines: lines}
}

// Lex scans text and returns its tokens in source order.
func Lex(text string) ([]token.Token, error) {
	return New(text).Run()
}

// Run consumes the whole input. A Lexer must not be reused after Run.
func (l *Lexer) Run() ([]token.Token, error) {
	for i, line := range l.lines {
		l.line = i
		if err := l.lexLine([]rune(line)); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}

func (l *Lexer) lexLine(chars []rune) error {
	i := 0
	for i < len(chars) {
		switch c := chars[i]; {
		case c == '{':
			l.emit(token.New(token.ObjectStart, l.line, i))
			l.containers = append(l.containers, token.ObjectStart)
			i++
		case c == '}':
			l.emit(token.New(token.ObjectEnd, l.line, i))
			l.popContainer()
			i++
		case c == '[':
			l.emit(token.New(token.ArrayStart, l.line, i))
			l.containers = append(l.containers, token.ArrayStart)
			i++
		case c == ']':
			l.emit(token.New(token.ArrayEnd, l.line, i))
			l.popContainer()
			i++
		case c == ':':
			l.emit(token.New(token.Colon, l.line, i))
			i++
		case c == ',':
			l.emit(token.New(token.Comma, l.line, i))
			i++
		case c >= '0' && c <= '9':
			i = l.lexNumber(chars, i)
		case c == 't' || c == 'f' || c == 'n':
			i = l.lexLiteral(chars, i)
		case c == '"':
			isName, err := l.quoteIsName(i)
			if err != nil {
				return err
			}
			i = l.lexQuoted(chars, i, isName)
		default:
			i++
		}
	}
	return nil
}

func (l *Lexer) emit(t token.Token) {
	l.tokens = append(l.tokens, t)
}

func (l *Lexer) popContainer() {
	if n := len(l.containers); n > 0 {
		l.containers = l.containers[:n-1]
	}
}

func (l *Lexer) inArray() bool {
	n := len(l.containers)
	return n > 0 && l.containers[n-1] == token.ArrayStart
}

// quoteIsName decides from the previously emitted token whether the quoted
// text starting at col is a field name or a string value.
func (l *Lexer) quoteIsName(col int) (bool, error) {
	if len(l.tokens) > 0 {
		switch l.tokens[len(l.tokens)-1].Kind {
		case token.ObjectStart:
			return true, nil
		case token.Colon, token.ArrayStart:
			return false, nil
		case token.Comma:
			return !l.inArray(), nil
		}
	}
	return false, &AmbiguousQuoteError{Line: l.line, Col: col}
}

// lexQuoted scans from the opening quote at start up to the next unescaped
// quote and returns the index just past it. An unterminated literal runs to
// the end of the line.
func (l *Lexer) lexQuoted(chars []rune, start int, isName bool) int {
	end := start + 1
	for end < len(chars) && chars[end] != '"' {
		if chars[end] == '\\' {
			end++
		}
		end++
	}
	if end > len(chars) {
		end = len(chars)
	}

	if isName {
		l.emit(token.NewName(string(chars[start+1:end]), l.line, start))
	} else {
		l.emit(token.NewValue(token.String, l.line, start))
	}
	return end + 1
}

// lexNumber consumes digits, '.' and exponent parts starting at start.
func (l *Lexer) lexNumber(chars []rune, start int) int {
	vt := token.Int
	i := start
	for i < len(chars) {
		c := chars[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' {
			vt = token.Float
			i++
			continue
		}
		if c == 'e' || c == 'E' {
			vt = token.Float
			i++
			if i < len(chars) && (chars[i] == '+' || chars[i] == '-') {
				i++
			}
			continue
		}
		break
	}
	l.emit(token.NewValue(vt, l.line, start))
	return i
}

// lexLiteral consumes a true/false/null literal.
func (l *Lexer) lexLiteral(chars []rune, start int) int {
	i := start
	for i < len(chars) && !endsLiteral(chars[i]) {
		i++
	}
	vt := token.Bool
	if chars[start] == 'n' {
		vt = token.Null
	}
	l.emit(token.NewValue(vt, l.line, start))
	return i
}

func endsLiteral(c rune) bool {
	return c == ',' || c == '}' || c == ']' || unicode.IsSpace(c)
}
