// Package schema defines the tree inferred from a JSON document.
package schema

import (
	"fmt"
	"strings"
)

// Kind is the variant tag of a Node
type Kind int

const (
	Int Kind = iota
	Float
	Bool
	String
	Object
	Array
	Root
)

var kindNames = [...]string{
	Int:    "Int",
	Float:  "Float",
	Bool:   "Bool",
	String: "String",
	Object: "Object",
	Array:  "Array",
	Root:   "Root",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsScalar reports whether the kind is a leaf without children.
func (k Kind) IsScalar() bool {
	return k == Int || k == Float || k == Bool || k == String
}

// Node is one element of the schema tree.
//
// Name is the JSON field name that introduced the node. It is empty for the
// Root and for array element shapes. Children is used by Object and Root;
// Elem holds the unified element shape of an Array.
type Node struct {
	Kind     Kind
	Name     string
	Children []Node
	Elem     *Node
}

// Leaf creates a scalar field.
func Leaf(kind Kind, name string) Node {
	return Node{Kind: kind, Name: name}
}

// NewObject creates an object field.
func NewObject(name string, children []Node) Node {
	return Node{Kind: Object, Name: name, Children: children}
}

// NewArray creates an array field with the given element shape.
func NewArray(name string, elem Node) Node {
	return Node{Kind: Array, Name: name, Elem: &elem}
}

// NewRoot wraps the top-level fields of a document.
func NewRoot(children []Node) Node {
	return Node{Kind: Root, Children: children}
}

// Shape returns a copy of n without its name, as used for array elements.
func (n Node) Shape() Node {
	n.Name = ""
	return n
}

// Child returns the direct child with the given name.
func (n Node) Child(name string) (Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return Node{}, false
}

// Equal reports deep structural equality, names included.
func (n Node) Equal(other Node) bool {
	if n.Kind != other.Kind || n.Name != other.Name {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	if (n.Elem == nil) != (other.Elem == nil) {
		return false
	}
	return n.Elem == nil || n.Elem.Equal(*other.Elem)
}

// String renders the node compactly, e.g. Array("f1", Object([Int("f2")])).
func (n Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n Node) write(b *strings.Builder) {
	b.WriteString(n.Kind.String())
	b.WriteByte('(')

	sep := ""
	if n.Name != "" {
		fmt.Fprintf(b, "%q", n.Name)
		sep = ", "
	}

	switch n.Kind {
	case Object, Root:
		b.WriteString(sep)
		b.WriteByte('[')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			c.write(b)
		}
		b.WriteByte(']')
	case Array:
		if n.Elem != nil {
			b.WriteString(sep)
			n.Elem.write(b)
		}
	}
	b.WriteByte(')')
}
