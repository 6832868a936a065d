// Package pipeline runs JSON text through the lexer, the schema builder and
// the transformer, then assembles and formats the result.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mcncl/typegen/internal/definition"
	"github.com/mcncl/typegen/internal/errors"
	"github.com/mcncl/typegen/internal/formatter"
	"github.com/mcncl/typegen/internal/generator"
	"github.com/mcncl/typegen/internal/lexer"
	"github.com/mcncl/typegen/internal/tokenizer"
	"github.com/mcncl/typegen/internal/transformer"
)

// Options control a single run
type Options struct {
	RootName  string
	Header    string
	RootFirst bool
	// Format runs the definition's formatter, if it names one
	Format bool
}

// Pipeline renders JSON documents with one definition
type Pipeline struct {
	cfg       definition.TransformConfig
	formatter *formatter.Formatter
	logger    *zap.Logger
}

// New validates cfg and returns a Pipeline. A nil logger discards output.
func New(cfg definition.TransformConfig, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewDefinitionError("invalid definition", err)
	}

	f, err := formatter.NewFormatter(cfg.Formatter)
	if err != nil {
		return nil, errors.NewDefinitionError("invalid definition", err)
	}

	return &Pipeline{cfg: cfg, formatter: f, logger: logger}, nil
}

// Blocks returns the rendered blocks for input, innermost type first.
func (p *Pipeline) Blocks(input, rootName string) ([][]string, error) {
	tokens, err := lexer.Lex(input)
	if err != nil {
		return nil, errors.NewLexingError("failed to tokenize JSON", err)
	}
	p.logger.Debug("Lexed input", zap.Int("tokens", len(tokens)))

	root, err := tokenizer.Build(tokens)
	if err != nil {
		return nil, errors.NewSchemaError("failed to build schema", err)
	}
	p.logger.Debug("Built schema", zap.Int("fields", len(root.Children)))

	tr, err := transformer.New(p.cfg, root.Children, rootName)
	if err != nil {
		return nil, errors.NewSchemaError("field names collide after case conversion", err)
	}

	blocks := tr.Transform()
	p.logger.Debug("Rendered blocks", zap.Int("blocks", len(blocks)))
	return blocks, nil
}

// Generate renders input into a complete document.
func (p *Pipeline) Generate(input string, opts Options) (string, error) {
	blocks, err := p.Blocks(input, opts.RootName)
	if err != nil {
		return "", err
	}

	code := generator.NewGenerator(generator.Options{
		Header:    opts.Header,
		RootFirst: opts.RootFirst,
	}).Generate(blocks)

	if !opts.Format || !p.formatter.Enabled() {
		return code, nil
	}

	formatted, err := p.formatter.Format(code)
	if err != nil {
		return "", errors.NewFormatError(fmt.Sprintf("failed to format output with %s", p.cfg.Formatter), err)
	}
	p.logger.Debug("Formatted output", zap.String("formatter", p.cfg.Formatter))
	return formatted, nil
}
