package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a definition file. YAML files (.yaml, .yml) are decoded with
// yaml.v3; everything else is read as TOML.
func Load(path string) (TransformConfig, error) {
	var (
		cfg TransformConfig
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		cfg, err = loadTOML(path)
	}
	if err != nil {
		return TransformConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return TransformConfig{}, fmt.Errorf("definition file '%s': %w", path, err)
	}
	return cfg, nil
}

func loadTOML(path string) (TransformConfig, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return TransformConfig{}, fmt.Errorf("failed to read definition file: %w", err)
	}

	var cfg TransformConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return TransformConfig{}, fmt.Errorf("failed to parse definition file: %w", err)
	}
	return cfg, nil
}

func loadYAML(path string) (TransformConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TransformConfig{}, fmt.Errorf("failed to read definition file: %w", err)
	}

	var cfg TransformConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TransformConfig{}, fmt.Errorf("failed to parse definition file: %w", err)
	}
	return cfg, nil
}

// Resolve returns the built-in definition called nameOrPath, or loads it as
// a file when no preset matches.
func Resolve(nameOrPath string) (TransformConfig, error) {
	if cfg, ok := Preset(nameOrPath); ok {
		return cfg, nil
	}

	if strings.TrimSpace(nameOrPath) != "" {
		if _, err := os.Stat(nameOrPath); err == nil {
			return Load(nameOrPath)
		}
	}

	return TransformConfig{}, fmt.Errorf("%w: '%s' is neither a built-in definition (%s) nor a readable file",
		ErrUnknownDefinition, nameOrPath, strings.Join(Names(), ", "))
}
