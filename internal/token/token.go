// Package token defines the lexical vocabulary produced by the lexer.
package token

import "fmt"

// Kind identifies the lexical class of a token
type Kind int

const (
	ObjectStart Kind = iota
	ObjectEnd
	ArrayStart
	ArrayEnd
	Colon
	Comma
	Name
	Value
)

var kindNames = [...]string{
	ObjectStart: "ObjectStart",
	ObjectEnd:   "ObjectEnd",
	ArrayStart:  "ArrayStart",
	ArrayEnd:    "ArrayEnd",
	Colon:       "Colon",
	Comma:       "Comma",
	Name:        "Name",
	Value:       "Value",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ValueType is the primitive kind carried by a Value token
type ValueType int

const (
	Int ValueType = iota
	Float
	Bool
	String
	Null
)

var valueTypeNames = [...]string{
	Int:    "Int",
	Float:  "Float",
	Bool:   "Bool",
	String: "String",
	Null:   "Null",
}

func (v ValueType) String() string {
	if v < 0 || int(v) >= len(valueTypeNames) {
		return fmt.Sprintf("ValueType(%d)", int(v))
	}
	return valueTypeNames[v]
}

// Token is a single lexical token. Line and Col are 0-based and point at the
// first character of the token.
type Token struct {
	Line int
	Col  int
	Kind Kind
	// Text holds the field name for Name tokens.
	Text string
	// Type holds the primitive kind for Value tokens.
	Type ValueType
}

// New creates a structural token (braces, brackets, colon, comma).
func New(kind Kind, line, col int) Token {
	return Token{Line: line, Col: col, Kind: kind}
}

// NewName creates a Name token.
func NewName(text string, line, col int) Token {
	return Token{Line: line, Col: col, Kind: Name, Text: text}
}

// NewValue creates a Value token.
func NewValue(vt ValueType, line, col int) Token {
	return Token{Line: line, Col: col, Kind: Value, Type: vt}
}

// String renders the token without its position, e.g. Name("id") or Value(Int).
func (t Token) String() string {
	switch t.Kind {
	case Name:
		return fmt.Sprintf("Name(%q)", t.Text)
	case Value:
		return fmt.Sprintf("Value(%s)", t.Type)
	default:
		return t.Kind.String()
	}
}
