package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		target   Case
		expected string
	}{
		{name: "camel to snake", input: "hoLa", target: Snake, expected: "ho_la"},
		{name: "upper camel to snake", input: "HoLa", target: Snake, expected: "ho_la"},
		{name: "multiple humps to snake", input: "createdAtTime", target: Snake, expected: "created_at_time"},
		{name: "kebab to snake", input: "ho-la", target: Snake, expected: "ho_la"},
		{name: "kebab with humps to snake", input: "Ho-La", target: Snake, expected: "ho_la"},
		{name: "snake stays snake", input: "ho_la", target: Snake, expected: "ho_la"},
		{name: "snake to camel", input: "ho_la", target: Camel, expected: "hoLa"},
		{name: "leading underscore kept", input: "_ho_la", target: Camel, expected: "_hoLa"},
		{name: "kebab to camel", input: "ho-la", target: Camel, expected: "hoLa"},
		{name: "multiple snake to camel", input: "ho_la_eh", target: Camel, expected: "hoLaEh"},
		{name: "double separator", input: "ho__la", target: Camel, expected: "hoLa"},
		{name: "camel stays camel", input: "hoLa", target: Camel, expected: "hoLa"},
		{name: "snake to upper camel", input: "ho_la", target: UpperCamel, expected: "HoLa"},
		{name: "plain word to upper camel", input: "address", target: UpperCamel, expected: "Address"},
		{name: "leading underscore upper camel", input: "_id", target: UpperCamel, expected: "_id"},
		{name: "upper camel stays upper camel", input: "HoLa", target: UpperCamel, expected: "HoLa"},
		{name: "digits untouched", input: "f1", target: UpperCamel, expected: "F1"},
		{name: "empty string", input: "", target: UpperCamel, expected: ""},
		{name: "non-ascii capital not split", input: "señorÑame", target: Snake, expected: "señorÑame"},
		{name: "non-ascii first letter kept", input: "ñame", target: UpperCamel, expected: "ñame"},
		{name: "non-ascii after separator kept", input: "ho_ñame", target: Camel, expected: "hoñame"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Convert(tt.input, tt.target))
		})
	}
}

func TestConvert_Idempotent(t *testing.T) {
	inputs := []string{"hoLa", "user_id", "Created-At", "_private", "ID"}
	for _, c := range []Case{Snake, Camel, UpperCamel} {
		for _, input := range inputs {
			once := Convert(input, c)
			assert.Equal(t, once, Convert(once, c), "%s(%q)", c, input)
		}
	}
}

func TestConvert_RoundTripIsNotGuaranteed(t *testing.T) {
	// "ID" loses its second capital on the way through snake_case.
	assert.Equal(t, "i_d", Convert("ID", Snake))
	assert.Equal(t, "iD", Convert(Convert("ID", Snake), Camel))
	assert.Equal(t, "hoLa", Convert(Convert("hoLa", Snake), Camel))
}

func TestConvert_UnknownCase(t *testing.T) {
	assert.Equal(t, "hoLa", Convert("hoLa", Case("kebab")))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Case
	}{
		{"snake_case", Snake},
		{"SnakeCase", Snake},
		{"camelCase", Camel},
		{"CamelCase", Camel},
		{"UpperCamelCase", UpperCamel},
		{"PascalCase", UpperCamel},
		{"upper-camel-case", UpperCamel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
			assert.True(t, c.Valid())
		})
	}

	_, err := Parse("SCREAMING")
	assert.Error(t, err)
	assert.False(t, Case("SCREAMING").Valid())
}
