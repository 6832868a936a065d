package tokenizer

import (
	"github.com/mcncl/typegen/internal/schema"
	"github.com/mcncl/typegen/internal/token"
)

// unify folds a newly read element shape into the shape accumulated so far.
// at is the token that started the new element and positions any error.
func unify(old *schema.Node, elem schema.Node, at token.Token) (schema.Node, error) {
	if old == nil {
		return elem, nil
	}
	return merge(*old, elem, at)
}

// merge combines two shapes. Equal shapes are kept and arrays unify their
// element shapes. Objects gain the fields of elem whose names they lack, in
// first-seen order; a field already present keeps its first shape. Anything
// else, such as Int against Float or an object against a scalar, is a
// SyntaxError.
func merge(old, elem schema.Node, at token.Token) (schema.Node, error) {
	if old.Equal(elem) {
		return old, nil
	}

	switch {
	case old.Kind == schema.Object && elem.Kind == schema.Object:
		children := make([]schema.Node, len(old.Children), len(old.Children)+len(elem.Children))
		copy(children, old.Children)

		for _, field := range elem.Children {
			if indexOf(children, field.Name) < 0 {
				children = append(children, field)
			}
		}
		return schema.NewObject(old.Name, children), nil

	case old.Kind == schema.Array && elem.Kind == schema.Array:
		inner, err := merge(*old.Elem, *elem.Elem, at)
		if err != nil {
			return schema.Node{}, err
		}
		return schema.NewArray(old.Name, inner), nil
	}

	return schema.Node{}, syntaxErrorAt(at)
}

func indexOf(nodes []schema.Node, name string) int {
	for i, n := range nodes {
		if n.Name == name {
			return i
		}
	}
	return -1
}
