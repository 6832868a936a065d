// Package transformer renders a schema tree into blocks of text lines using a
// definition.TransformConfig.
//
// Every object in the tree becomes one block. Nested objects are rendered
// before the object that contains them, so the returned list holds the
// innermost types first and the root type last.
package transformer

import (
	"fmt"
	"strings"

	"github.com/mcncl/typegen/internal/casing"
	"github.com/mcncl/typegen/internal/definition"
	"github.com/mcncl/typegen/internal/schema"
)

// DefaultRootName names the top-level type when no name is given.
const DefaultRootName = "Root"

// NameCollisionError reports two sibling fields whose names become identical
// after case conversion.
type NameCollisionError struct {
	Type     string
	First    string
	Second   string
	Rendered string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("fields %q and %q of %s both render as %q", e.First, e.Second, e.Type, e.Rendered)
}

// Transformer renders one schema tree with one definition.
type Transformer struct {
	cfg        definition.TransformConfig
	children   []schema.Node
	rootName   string
	fieldCase  casing.Case
	objectCase casing.Case
}

// field is the rendered description of one child of an object.
type field struct {
	typeName  string
	original  string
	converted string
}

// New validates cfg and prepares a transformer for the root's children.
// An empty rootName falls back to DefaultRootName.
func New(cfg definition.TransformConfig, children []schema.Node, rootName string) (*Transformer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rootName == "" {
		rootName = DefaultRootName
	}

	t := &Transformer{
		cfg:        cfg,
		children:   children,
		rootName:   rootName,
		fieldCase:  cfg.FieldCase(),
		objectCase: cfg.ObjectCase(),
	}
	if err := t.checkCollisions(children, rootName); err != nil {
		return nil, err
	}
	return t, nil
}

// Transform renders every object and returns the blocks innermost first.
func (t *Transformer) Transform() [][]string {
	var out [][]string
	t.renderObject(t.children, t.rootName, &out)
	return out
}

func (t *Transformer) renderObject(children []schema.Node, typeName string, out *[][]string) {
	header := strings.ReplaceAll(t.cfg.TypeDefinition, definition.ObjectName, typeName)

	fields := make([]field, 0, len(children))
	for _, child := range children {
		fields = append(fields, field{
			typeName:  t.fieldType(child, out),
			original:  child.Name,
			converted: casing.Convert(child.Name, t.fieldCase),
		})
	}

	block := make([]string, 0, len(fields)+2)
	block = append(block, header)

	for _, f := range fields {
		if t.cfg.NameChangeAnnotation != "" && f.converted != f.original {
			block = append(block, strings.ReplaceAll(t.cfg.NameChangeAnnotation, definition.Name, f.original))
		}
		block = append(block, strings.NewReplacer(
			definition.FieldName, f.converted,
			definition.FieldType, f.typeName,
			definition.Name, f.original,
		).Replace(t.cfg.FieldDefinition))
	}

	if t.cfg.Constructor != nil {
		block = append(block, t.renderConstructor(typeName, fields)...)
	}

	block = append(block, t.cfg.BlockEnd)
	*out = append(*out, block)
}

func (t *Transformer) renderConstructor(typeName string, fields []field) []string {
	ctor := t.cfg.Constructor

	var args strings.Builder
	for i, f := range fields {
		args.WriteString(strings.NewReplacer(
			definition.Type, f.typeName,
			definition.Name, f.converted,
		).Replace(ctor.ArgumentDefinition))

		if i < len(fields)-1 || ctor.SeparatorAtEnd {
			args.WriteString(ctor.Separator)
		}
	}

	lines := []string{strings.NewReplacer(
		definition.ObjectName, typeName,
		definition.Arguments, args.String(),
	).Replace(ctor.Definition)}

	if fa := ctor.FieldAssignment; fa != nil {
		for _, f := range fields {
			lines = append(lines, strings.ReplaceAll(fa.Definition, definition.Name, f.converted))
		}
		lines = append(lines, fa.End)
	}
	return lines
}

// fieldType returns the rendered type of a field, rendering the blocks of any
// object it introduces along the way.
func (t *Transformer) fieldType(n schema.Node, out *[][]string) string {
	switch n.Kind {
	case schema.Object:
		name := casing.Convert(n.Name, t.objectCase)
		t.renderObject(n.Children, name, out)
		return name
	case schema.Array:
		return t.arrayType(n.Elem, n.Name, out)
	default:
		return t.scalarType(n.Kind)
	}
}

// arrayType renders array_definition for elem. Object elements are named
// after the array's field.
func (t *Transformer) arrayType(elem *schema.Node, fieldName string, out *[][]string) string {
	var inner string
	switch {
	case elem == nil:
		inner = ""
	case elem.Kind == schema.Object:
		inner = casing.Convert(fieldName, t.objectCase)
		t.renderObject(elem.Children, inner, out)
	case elem.Kind == schema.Array:
		inner = t.arrayType(elem.Elem, fieldName, out)
	default:
		inner = t.scalarType(elem.Kind)
	}
	return strings.ReplaceAll(t.cfg.ArrayDefinition, definition.FieldType, inner)
}

func (t *Transformer) scalarType(kind schema.Kind) string {
	switch kind {
	case schema.Int:
		return t.cfg.IntType
	case schema.Float:
		return t.cfg.FloatType
	case schema.Bool:
		return t.cfg.BoolType
	case schema.String:
		return t.cfg.StringType
	}
	return ""
}

// checkCollisions walks every object that will become a block and rejects
// siblings that render to the same field name.
func (t *Transformer) checkCollisions(children []schema.Node, typeName string) error {
	seen := make(map[string]string, len(children))
	for _, child := range children {
		converted := casing.Convert(child.Name, t.fieldCase)
		if first, dup := seen[converted]; dup {
			return &NameCollisionError{Type: typeName, First: first, Second: child.Name, Rendered: converted}
		}
		seen[converted] = child.Name

		if err := t.checkNested(child, child.Name); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transformer) checkNested(n schema.Node, fieldName string) error {
	switch n.Kind {
	case schema.Object:
		return t.checkCollisions(n.Children, casing.Convert(fieldName, t.objectCase))
	case schema.Array:
		if n.Elem != nil {
			return t.checkNested(*n.Elem, fieldName)
		}
	}
	return nil
}
