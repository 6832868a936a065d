package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/iancoleman/strcase"
	"go.uber.org/zap"

	"github.com/mcncl/typegen/internal/casing"
	"github.com/mcncl/typegen/internal/config"
	"github.com/mcncl/typegen/internal/definition"
	"github.com/mcncl/typegen/internal/errors"
	"github.com/mcncl/typegen/internal/logging"
	"github.com/mcncl/typegen/internal/pipeline"
)

// CLI defines the command-line interface
var CLI struct {
	File            string `arg:"" optional:"" help:"Path to input JSON file. If not specified, reads from stdin." type:"path"`
	Definition      string `help:"Built-in definition (rust, kotlin, java, dart, go) or path to a .toml/.yaml definition file." short:"d"`
	RootName        string `help:"Name for the root type." short:"r"`
	Output          string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config          string `help:"Path to config file. Searches for .typegen.yml upwards from the working directory if not specified." short:"c" type:"path"`
	Header          string `help:"Text written above the generated types, e.g. a package clause."`
	NoFormat        bool   `help:"Do not run the definition's formatter."`
	InnermostFirst  bool   `help:"Write nested types before the types that use them."`
	ListDefinitions bool   `help:"List the built-in definitions and exit." short:"l"`
	Debug           bool   `help:"Enable debug logging."`
	Version         bool   `help:"Show version information." short:"v"`
	Interactive     bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Logger *zap.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("typegen"),
		kong.Description("Infer a schema from sample JSON and render type definitions for a target language"),
		kong.UsageOnError(),
	)

	// No arguments at all means interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("typegen version %s\n", Version)
		return
	}

	if CLI.ListDefinitions {
		for _, name := range definition.Names() {
			fmt.Println(name)
		}
		return
	}

	ctx, err := newContext()
	if err == nil {
		defer func() { _ = ctx.Logger.Sync() }()
		err = run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: typegen --help\n")
		os.Exit(1)
	}
}

// newContext resolves configuration from the config file, the environment
// and the command line, then builds the logger.
func newContext() (*Context, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, config.CLIOverrides{
		Definition:     CLI.Definition,
		RootName:       CLI.RootName,
		Header:         CLI.Header,
		NoFormat:       CLI.NoFormat,
		InnermostFirst: CLI.InnermostFirst,
		Debug:          CLI.Debug,
	})
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to load configuration: %v", err), err)
	}

	logger, err := logging.New(cfg.Dev.Debug)
	if err != nil {
		return nil, errors.NewInputError("failed to initialize logging", err)
	}
	if configPath != "" {
		logger.Debug("Loaded config file", zap.String("path", configPath))
	}

	return &Context{Config: cfg, Logger: logger}, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	cfg := ctx.Config
	logger := ctx.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Resolve the target definition
	def, err := definition.Resolve(cfg.Definition)
	if err != nil {
		return errors.NewDefinitionError(fmt.Sprintf("failed to resolve definition '%s'", cfg.Definition), err)
	}
	logger.Debug("Resolved definition", zap.String("definition", cfg.Definition))

	p, err := pipeline.New(def, logger)
	if err != nil {
		return err
	}

	// 2. Read JSON input
	input, err := readInput()
	if err != nil {
		return err
	}

	// 3. Transform and generate
	code, err := p.Generate(input, pipeline.Options{
		RootName:  normalizeRootName(cfg.RootName, def.ObjectCase()),
		Header:    cfg.Output.FileHeader,
		RootFirst: cfg.Output.RootFirst,
		Format:    cfg.Formatting.Enabled,
	})
	if err != nil {
		return err
	}

	// 4. Output the result
	return writeOutput(code)
}

// normalizeRootName brings a user-supplied root name in line with the
// definition's naming convention for types.
func normalizeRootName(name string, c casing.Case) string {
	if name == "" {
		return ""
	}
	switch c {
	case casing.UpperCamel:
		return strcase.ToCamel(name)
	case casing.Camel:
		return strcase.ToLowerCamel(name)
	case casing.Snake:
		return strcase.ToSnake(name)
	}
	return name
}

// readInput reads JSON from file or stdin
func readInput() (string, error) {
	if CLI.File != "" {
		return readFile(CLI.File)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}

func readFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", path), errors.ErrFileNotFound)
		}
		return "", errors.NewInputError(fmt.Sprintf("failed to access file '%s'", path), err)
	}
	if info.IsDir() {
		return "", errors.NewInputError(fmt.Sprintf("'%s' is a directory", path), errors.ErrInvalidPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.NewInputError(fmt.Sprintf("file '%s' is empty", path), errors.ErrFileEmpty)
	}
	return string(data), nil
}

// writeOutput writes code to file or stdout
func writeOutput(code string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(code), 0o644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Generated code written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSpace(code))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "typegen Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
	}

	jsonData := jsonBuilder.String()
	if strings.TrimSpace(jsonData) == "" {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return jsonData, nil
}
