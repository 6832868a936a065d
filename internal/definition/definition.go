// Package definition describes how a schema tree is rendered for one target
// language: string templates with placeholders plus naming conventions.
package definition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mcncl/typegen/internal/casing"
)

// Template placeholders
const (
	ObjectName = "{object_name}"
	FieldName  = "{field_name}"
	FieldType  = "{field_type}"
	Name       = "{name}"
	Type       = "{type}"
	Arguments  = "{arguments}"
)

// FormatterGofmt runs the rendered output through go/format.
const FormatterGofmt = "gofmt"

// Errors identifying which part of a definition is malformed
var (
	ErrTypeDefinition        = errors.New("invalid type_definition")
	ErrFieldDefinition       = errors.New("invalid field_definition")
	ErrArrayDefinition       = errors.New("invalid array_definition")
	ErrNameChangeAnnotation  = errors.New("invalid name_change_annotation")
	ErrConstructorDefinition = errors.New("invalid constructor definition")
	ErrConstructorArgument   = errors.New("invalid constructor argument_definition")
	ErrFieldAssignment       = errors.New("invalid constructor field_assignment")
	ErrCaseType              = errors.New("invalid case type")
	ErrFormatter             = errors.New("invalid formatter")
	ErrUnknownDefinition     = errors.New("definition not found")
)

// TransformConfig is a complete target definition.
type TransformConfig struct {
	TypeDefinition       string       `yaml:"type_definition" koanf:"type_definition"`
	FieldDefinition      string       `yaml:"field_definition" koanf:"field_definition"`
	ArrayDefinition      string       `yaml:"array_definition" koanf:"array_definition"`
	BlockEnd             string       `yaml:"block_end" koanf:"block_end"`
	NameChangeAnnotation string       `yaml:"name_change_annotation,omitempty" koanf:"name_change_annotation"`
	IntType              string       `yaml:"int_type" koanf:"int_type"`
	FloatType            string       `yaml:"float_type" koanf:"float_type"`
	BoolType             string       `yaml:"bool_type" koanf:"bool_type"`
	StringType           string       `yaml:"string_type" koanf:"string_type"`
	Constructor          *Constructor `yaml:"constructor,omitempty" koanf:"constructor"`
	CaseType             casing.Case  `yaml:"case_type" koanf:"case_type"`
	ObjectCaseType       casing.Case  `yaml:"object_case_type" koanf:"object_case_type"`
	Formatter            string       `yaml:"formatter,omitempty" koanf:"formatter"`
}

// Constructor describes an optional constructor emitted inside each type.
type Constructor struct {
	Definition         string           `yaml:"definition" koanf:"definition"`
	ArgumentDefinition string           `yaml:"argument_definition" koanf:"argument_definition"`
	Separator          string           `yaml:"separator" koanf:"separator"`
	SeparatorAtEnd     bool             `yaml:"separator_at_end" koanf:"separator_at_end"`
	FieldAssignment    *FieldAssignment `yaml:"field_assignment,omitempty" koanf:"field_assignment"`
}

// FieldAssignment is emitted once per field after the constructor line,
// followed by End.
type FieldAssignment struct {
	Definition string `yaml:"definition" koanf:"definition"`
	End        string `yaml:"end" koanf:"end"`
}

// TemplateError reports a template that lacks a required placeholder.
type TemplateError struct {
	Template string
	Text     string
	Missing  []string
	Err      error
}

func (e *TemplateError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("%v: %q", e.Err, e.Text)
	}
	return fmt.Sprintf("%v: %q is missing %s", e.Err, e.Text, strings.Join(e.Missing, ", "))
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// requirePlaceholders returns a TemplateError when text lacks any of the
// placeholders.
func requirePlaceholders(field, text string, sentinel error, placeholders ...string) error {
	var missing []string
	for _, p := range placeholders {
		if !strings.Contains(text, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &TemplateError{Template: field, Text: text, Missing: missing, Err: sentinel}
}

// Validate checks every template for its required placeholders and fails on
// the first malformed one.
func (c TransformConfig) Validate() error {
	if err := requirePlaceholders("type_definition", c.TypeDefinition, ErrTypeDefinition, ObjectName); err != nil {
		return err
	}
	if err := requirePlaceholders("field_definition", c.FieldDefinition, ErrFieldDefinition, FieldName, FieldType); err != nil {
		return err
	}
	if err := requirePlaceholders("array_definition", c.ArrayDefinition, ErrArrayDefinition, FieldType); err != nil {
		return err
	}
	if c.NameChangeAnnotation != "" {
		if err := requirePlaceholders("name_change_annotation", c.NameChangeAnnotation, ErrNameChangeAnnotation, Name); err != nil {
			return err
		}
	}

	if ctor := c.Constructor; ctor != nil {
		if err := requirePlaceholders("constructor.definition", ctor.Definition, ErrConstructorDefinition, ObjectName, Arguments); err != nil {
			return err
		}
		if err := requirePlaceholders("constructor.argument_definition", ctor.ArgumentDefinition, ErrConstructorArgument, Name); err != nil {
			return err
		}
		if fa := ctor.FieldAssignment; fa != nil {
			if err := requirePlaceholders("constructor.field_assignment.definition", fa.Definition, ErrFieldAssignment, Name); err != nil {
				return err
			}
		}
	}

	cases := []struct {
		field string
		value casing.Case
	}{
		{"case_type", c.CaseType},
		{"object_case_type", c.ObjectCaseType},
	}
	for _, ct := range cases {
		if ct.value == "" {
			continue
		}
		if _, err := casing.Parse(string(ct.value)); err != nil {
			return &TemplateError{Template: ct.field, Text: string(ct.value), Err: ErrCaseType}
		}
	}

	if c.Formatter != "" && c.Formatter != FormatterGofmt {
		return &TemplateError{Template: "formatter", Text: c.Formatter, Err: ErrFormatter}
	}
	return nil
}

// FieldCase returns the convention for field names, snake_case by default.
func (c TransformConfig) FieldCase() casing.Case {
	return normalizeCase(c.CaseType, casing.Snake)
}

// ObjectCase returns the convention for type names, UpperCamelCase by default.
func (c TransformConfig) ObjectCase() casing.Case {
	return normalizeCase(c.ObjectCaseType, casing.UpperCamel)
}

func normalizeCase(c, fallback casing.Case) casing.Case {
	if c == "" {
		return fallback
	}
	parsed, err := casing.Parse(string(c))
	if err != nil {
		return fallback
	}
	return parsed
}
