package generator

import (
	"bytes"
	"strings"
)

// Options control how rendered blocks are assembled into one document
type Options struct {
	// Header is written verbatim above the first block
	Header string
	// RootFirst reverses the transformer's innermost-first order so the root
	// type is written first
	RootFirst bool
}

// Generator is responsible for joining transformer blocks into output text
type Generator struct {
	opts Options
}

// NewGenerator creates a new Generator instance
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate writes every block as newline-terminated lines, separating blocks
// with one blank line. blocks is expected innermost first.
func (g *Generator) Generate(blocks [][]string) string {
	var buf bytes.Buffer

	if header := strings.TrimRight(g.opts.Header, "\n"); header != "" {
		buf.WriteString(header)
		buf.WriteString("\n")
		if len(blocks) > 0 {
			buf.WriteString("\n")
		}
	}

	for i, block := range orderBlocks(blocks, g.opts.RootFirst) {
		if i > 0 {
			buf.WriteString("\n")
		}
		for _, line := range block {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

// orderBlocks returns blocks in output order without modifying the input
func orderBlocks(blocks [][]string, rootFirst bool) [][]string {
	ordered := make([][]string, len(blocks))
	copy(ordered, blocks)
	if !rootFirst {
		return ordered
	}

	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	return ordered
}
