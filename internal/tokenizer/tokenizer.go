// Package tokenizer builds a schema tree from the lexer's token stream.
//
// The stream is consumed once, left to right, by two mutually recursive
// routines: parseObject for the fields of an object and parseArray for the
// elements of an array. Array elements are folded into a single unified
// element shape as they are read.
package tokenizer

import (
	"github.com/mcncl/typegen/internal/schema"
	"github.com/mcncl/typegen/internal/token"
)

// Tokenizer holds the read position over a token stream.
type Tokenizer struct {
	tokens []token.Token
	pos    int
}

// New creates a tokenizer that owns tokens.
func New(tokens []token.Token) *Tokenizer {
	return &Tokenizer{tokens: tokens}
}

// Build converts tokens into a Root node.
func Build(tokens []token.Token) (schema.Node, error) {
	return New(tokens).Build()
}

// Build consumes the stream. The document must be a single object.
func (t *Tokenizer) Build() (schema.Node, error) {
	first, ok := t.next()
	if !ok {
		return schema.Node{}, &SyntaxError{}
	}
	if first.Kind != token.ObjectStart {
		return schema.Node{}, syntaxErrorAt(first)
	}

	children, err := t.parseObject()
	if err != nil {
		return schema.Node{}, err
	}

	if trailing, ok := t.next(); ok {
		return schema.Node{}, syntaxErrorAt(trailing)
	}
	return schema.NewRoot(children), nil
}

func (t *Tokenizer) next() (token.Token, bool) {
	if t.pos >= len(t.tokens) {
		return token.Token{}, false
	}
	tok := t.tokens[t.pos]
	t.pos++
	return tok, true
}

// endOfInput reports a container that was never closed, positioned at the
// last token read.
func (t *Tokenizer) endOfInput() error {
	if len(t.tokens) == 0 {
		return &SyntaxError{}
	}
	return syntaxErrorAt(t.tokens[len(t.tokens)-1])
}

func syntaxErrorAt(tok token.Token) error {
	return &SyntaxError{Line: tok.Line, Col: tok.Col}
}

// parseObject reads fields until the matching ObjectEnd. The opening
// ObjectStart has already been consumed.
func (t *Tokenizer) parseObject() ([]schema.Node, error) {
	var (
		children []schema.Node
		name     string
		pending  bool
	)
	seen := make(map[string]struct{})

	for {
		tok, ok := t.next()
		if !ok {
			return nil, t.endOfInput()
		}

		switch tok.Kind {
		case token.Name:
			if pending {
				return nil, syntaxErrorAt(tok)
			}
			if _, dup := seen[tok.Text]; dup {
				return nil, syntaxErrorAt(tok)
			}
			seen[tok.Text] = struct{}{}
			name, pending = tok.Text, true

		case token.Colon:
			if !pending {
				return nil, syntaxErrorAt(tok)
			}

		case token.Comma:

		case token.Value:
			if !pending {
				return nil, syntaxErrorAt(tok)
			}
			kind, err := scalarKind(tok)
			if err != nil {
				return nil, err
			}
			children = append(children, schema.Leaf(kind, name))
			pending = false

		case token.ObjectStart:
			if !pending {
				return nil, syntaxErrorAt(tok)
			}
			nested, err := t.parseObject()
			if err != nil {
				return nil, err
			}
			children = append(children, schema.NewObject(name, nested))
			pending = false

		case token.ArrayStart:
			if !pending {
				return nil, syntaxErrorAt(tok)
			}
			array, err := t.parseArray(name)
			if err != nil {
				return nil, err
			}
			children = append(children, array)
			pending = false

		case token.ObjectEnd:
			if pending {
				return nil, syntaxErrorAt(tok)
			}
			return children, nil

		default:
			return nil, syntaxErrorAt(tok)
		}
	}
}

// parseArray reads elements until the matching ArrayEnd and returns an Array
// node named name. The opening ArrayStart has already been consumed.
func (t *Tokenizer) parseArray(name string) (schema.Node, error) {
	var shape *schema.Node

	fold := func(elem schema.Node, at token.Token) error {
		unified, err := unify(shape, elem, at)
		if err != nil {
			return err
		}
		shape = &unified
		return nil
	}

	for {
		tok, ok := t.next()
		if !ok {
			return schema.Node{}, t.endOfInput()
		}

		switch tok.Kind {
		case token.ArrayEnd:
			if shape == nil {
				return schema.Node{}, &EmptyArrayNotSupportedError{Line: tok.Line, Col: tok.Col}
			}
			return schema.NewArray(name, *shape), nil

		case token.ArrayStart:
			inner, err := t.parseArray("")
			if err != nil {
				return schema.Node{}, err
			}
			if inner.Kind != schema.Array || inner.Elem == nil {
				return schema.Node{}, ErrUnknownSyntax
			}
			if err := fold(inner.Shape(), tok); err != nil {
				return schema.Node{}, err
			}

		case token.ObjectStart:
			children, err := t.parseObject()
			if err != nil {
				return schema.Node{}, err
			}
			if err := fold(schema.NewObject("", children), tok); err != nil {
				return schema.Node{}, err
			}

		case token.Value:
			kind, err := scalarKind(tok)
			if err != nil {
				return schema.Node{}, err
			}
			if err := fold(schema.Leaf(kind, ""), tok); err != nil {
				return schema.Node{}, err
			}

		case token.Comma:

		default:
			return schema.Node{}, syntaxErrorAt(tok)
		}
	}
}

func scalarKind(tok token.Token) (schema.Kind, error) {
	switch tok.Type {
	case token.Int:
		return schema.Int, nil
	case token.Float:
		return schema.Float, nil
	case token.Bool:
		return schema.Bool, nil
	case token.String:
		return schema.String, nil
	case token.Null:
		return 0, &NullNotSupportedError{Line: tok.Line, Col: tok.Col}
	}
	return 0, ErrUnknownSyntax
}
