package definition

import (
	"sort"
	"strings"

	"github.com/mcncl/typegen/internal/casing"
)

// presets holds the built-in definitions. It is never modified after
// initialisation; Preset hands out copies.
var presets = map[string]TransformConfig{
	"rust": {
		TypeDefinition:       "struct {object_name} {",
		FieldDefinition:      "\t{field_name}: {field_type},",
		ArrayDefinition:      "Vec<{field_type}>",
		BlockEnd:             "}",
		NameChangeAnnotation: "\t#[serde(rename = \"{name}\")]",
		IntType:              "i32",
		FloatType:            "f32",
		BoolType:             "bool",
		StringType:           "String",
		CaseType:             casing.Snake,
		ObjectCaseType:       casing.UpperCamel,
	},
	"kotlin": {
		TypeDefinition:       "data class {object_name}(",
		FieldDefinition:      "\tval {field_name}: {field_type},",
		ArrayDefinition:      "List<{field_type}>",
		BlockEnd:             ")",
		NameChangeAnnotation: "\t@SerialName(\"{name}\")",
		IntType:              "Int",
		FloatType:            "Float",
		BoolType:             "Boolean",
		StringType:           "String",
		CaseType:             casing.Camel,
		ObjectCaseType:       casing.UpperCamel,
	},
	"java": {
		TypeDefinition:       "public class {object_name} {",
		FieldDefinition:      "\tprivate {field_type} {field_name};",
		ArrayDefinition:      "List<{field_type}>",
		BlockEnd:             "}",
		NameChangeAnnotation: "\t@JsonProperty(\"{name}\")",
		IntType:              "Integer",
		FloatType:            "Float",
		BoolType:             "Boolean",
		StringType:           "String",
		Constructor: &Constructor{
			Definition:         "\tpublic {object_name}({arguments}) {",
			ArgumentDefinition: "{type} {name}",
			Separator:          ", ",
			FieldAssignment: &FieldAssignment{
				Definition: "\t\tthis.{name} = {name};",
				End:        "\t}",
			},
		},
		CaseType:       casing.Camel,
		ObjectCaseType: casing.UpperCamel,
	},
	"dart": {
		TypeDefinition:       "class {object_name} {",
		FieldDefinition:      "\tfinal {field_type} {field_name};",
		ArrayDefinition:      "List<{field_type}>",
		BlockEnd:             "}",
		NameChangeAnnotation: "\t@JsonKey(name: '{name}')",
		IntType:              "int",
		FloatType:            "double",
		BoolType:             "bool",
		StringType:           "String",
		Constructor: &Constructor{
			Definition:         "\t{object_name}({arguments});",
			ArgumentDefinition: "this.{name}",
			Separator:          ", ",
		},
		CaseType:       casing.Camel,
		ObjectCaseType: casing.UpperCamel,
	},
	"go": {
		TypeDefinition:  "type {object_name} struct {",
		FieldDefinition: "\t{field_name} {field_type} `json:\"{name}\"`",
		ArrayDefinition: "[]{field_type}",
		BlockEnd:        "}",
		IntType:         "int",
		FloatType:       "float64",
		BoolType:        "bool",
		StringType:      "string",
		CaseType:        casing.UpperCamel,
		ObjectCaseType:  casing.UpperCamel,
		Formatter:       FormatterGofmt,
	},
}

// Preset returns a copy of the named built-in definition. Names are
// matched case-insensitively.
func Preset(name string) (TransformConfig, bool) {
	cfg, ok := presets[strings.ToLower(name)]
	if !ok {
		return TransformConfig{}, false
	}
	if cfg.Constructor != nil {
		ctor := *cfg.Constructor
		if ctor.FieldAssignment != nil {
			fa := *ctor.FieldAssignment
			ctor.FieldAssignment = &fa
		}
		cfg.Constructor = &ctor
	}
	return cfg, true
}

// Names lists the built-in definitions in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
