package config

import (
	"fmt"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable read by LoadEnv
const EnvPrefix = "TYPEGEN_"

// Default values
const (
	DefaultDefinition = "rust"
	DefaultRootName   = "Root"
)

// Config represents the complete configuration for typegen
type Config struct {
	Definition string           `yaml:"definition" env:"DEFINITION"`
	RootName   string           `yaml:"root_name" env:"ROOT_NAME"`
	Formatting FormattingConfig `yaml:"formatting"`
	Output     OutputConfig     `yaml:"output"`
	Dev        DevConfig        `yaml:"dev"`
}

// FormattingConfig controls whether the definition's formatter runs
type FormattingConfig struct {
	Enabled bool `yaml:"enabled" env:"FORMAT"`
}

// OutputConfig controls how blocks are written
type OutputConfig struct {
	FileHeader string `yaml:"file_header" env:"FILE_HEADER"`
	RootFirst  bool   `yaml:"root_first" env:"ROOT_FIRST"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug" env:"DEBUG"`
}

// CLIOverrides holds values given explicitly on the command line. Empty
// strings and false booleans leave the lower layers untouched.
type CLIOverrides struct {
	Definition     string
	RootName       string
	Header         string
	NoFormat       bool
	InnermostFirst bool
	Debug          bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Definition: DefaultDefinition,
		RootName:   DefaultRootName,
		Formatting: FormattingConfig{
			Enabled: true,
		},
		Output: OutputConfig{
			RootFirst: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadEnv applies TYPEGEN_* environment variables to cfg. Unset variables
// keep their current values.
func LoadEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".typegen.yml", ".typegen.yaml", "typegen.yml", "typegen.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// MergeConfigs merges CLI overrides into a base config.
// Non-empty strings and true booleans from override take precedence.
func MergeConfigs(base *Config, override CLIOverrides) *Config {
	merged := *base

	if override.Definition != "" {
		merged.Definition = override.Definition
	}
	if override.RootName != "" {
		merged.RootName = override.RootName
	}
	if override.Header != "" {
		merged.Output.FileHeader = override.Header
	}
	if override.NoFormat {
		merged.Formatting.Enabled = false
	}
	if override.InnermostFirst {
		merged.Output.RootFirst = false
	}
	if override.Debug {
		merged.Dev.Debug = true
	}

	return &merged
}

// LoadConfigWithCLI resolves the full configuration.
// Precedence: CLI flags > environment > config file > defaults.
func LoadConfigWithCLI(configPath string, cli CLIOverrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if err := LoadEnv(cfg); err != nil {
		return nil, err
	}

	return MergeConfigs(cfg, cli), nil
}
