// Package casing converts identifiers between naming conventions.
package casing

import (
	"fmt"
	"strings"
)

// Case is a naming convention
type Case string

const (
	Snake      Case = "snake_case"
	Camel      Case = "camelCase"
	UpperCamel Case = "UpperCamelCase"
)

// Parse resolves a convention name. Comparison ignores letter case, '_' and
// '-', so "SnakeCase", "snake-case" and "snake_case" are all accepted.
// "PascalCase" is an alias for UpperCamelCase.
func Parse(name string) (Case, error) {
	key := strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(name))
	switch key {
	case "snakecase", "snake":
		return Snake, nil
	case "camelcase", "camel", "lowercamelcase":
		return Camel, nil
	case "uppercamelcase", "pascalcase", "pascal":
		return UpperCamel, nil
	}
	return "", fmt.Errorf("unknown case type %q", name)
}

// Valid reports whether c is one of the supported conventions.
func (c Case) Valid() bool {
	_, err := Parse(string(c))
	return err == nil
}

// Convert rewrites text into the given convention. Unknown conventions leave
// the text untouched.
func Convert(text string, c Case) string {
	normalized, err := Parse(string(c))
	if err != nil || text == "" {
		return text
	}
	if normalized == Snake {
		return toSnake(text)
	}
	return toCamel(text, normalized == UpperCamel)
}

// toSnake lower-cases every ASCII uppercase letter, prefixing it with '_' unless it
// starts the string or follows a separator. '-' becomes '_'.
func toSnake(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 4)

	prevSeparator := false
	for i, r := range text {
		switch {
		case r == '-' || r == '_':
			b.WriteRune('_')
			prevSeparator = true
			continue
		case isUpper(r):
			if i != 0 && !prevSeparator {
				b.WriteRune('_')
			}
			b.WriteRune(r + 'a' - 'A')
		default:
			b.WriteRune(r)
		}
		prevSeparator = false
	}
	return b.String()
}

// toCamel drops every '_' and '-' that is not the first character and
// upper-cases the character after it.
func toCamel(text string, upperFirst bool) string {
	var b strings.Builder
	b.Grow(len(text))

	upperNext := false
	for i, r := range text {
		if (r == '_' || r == '-') && i != 0 {
			upperNext = true
			continue
		}
		if upperNext {
			r = toUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}

	result := b.String()
	if upperFirst {
		runes := []rune(result)
		runes[0] = toUpper(runes[0])
		result = string(runes)
	}
	return result
}

// Only ASCII letters change case; other runes pass through untouched.
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
