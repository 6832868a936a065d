package formatter

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/mcncl/typegen/internal/definition"
)

// Formatter post-processes generated text with the formatter a definition
// names. An empty name leaves the text untouched.
type Formatter struct {
	name string
}

// NewFormatter creates a Formatter for the named formatter
func NewFormatter(name string) (*Formatter, error) {
	switch name {
	case "", definition.FormatterGofmt:
		return &Formatter{name: name}, nil
	default:
		return nil, fmt.Errorf("%w: %q", definition.ErrFormatter, name)
	}
}

// Enabled reports whether Format changes its input
func (f *Formatter) Enabled() bool {
	return f.name != ""
}

// Format returns code in the formatter's canonical layout
func (f *Formatter) Format(code string) (string, error) {
	if !f.Enabled() || strings.TrimSpace(code) == "" {
		return code, nil
	}

	// go/format accepts a bare declaration list, so output without a package
	// clause formats as well.
	formatted, err := format.Source([]byte(code))
	if err != nil {
		return "", fmt.Errorf("failed to parse Go code: %w", err)
	}
	return string(formatted), nil
}
