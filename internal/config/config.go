// Package config loads bufsafe settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mouse-blink/bufsafe/internal/domain"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "bufsafe.yaml"

// Config holds all bufsafe configuration.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig tunes program assembly.
type GeneratorConfig struct {
	MaxIdx            int    `yaml:"max_idx"`
	PoolSize          int    `yaml:"pool_size"`
	VarPrefix         string `yaml:"var_prefix"`
	MaxDecoys         int    `yaml:"max_decoys"`
	MinDecoysTautOnly int    `yaml:"min_decoys_taut_only"`
	Indent            string `yaml:"indent"`
}

// OutputConfig controls how instances are written.
type OutputConfig struct {
	Annotate  bool   `yaml:"annotate"`
	Extension string `yaml:"extension"`
	HashBytes int    `yaml:"hash_bytes"`
	Parallel  int    `yaml:"parallel"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	opts := domain.DefaultOptions()

	return &Config{
		Generator: GeneratorConfig{
			MaxIdx:            opts.MaxIdx,
			PoolSize:          opts.PoolSize,
			VarPrefix:         opts.VarPrefix,
			MaxDecoys:         opts.MaxDecoys,
			MinDecoysTautOnly: opts.MinDecoysTautOnly,
			Indent:            opts.Indent,
		},
		Output: OutputConfig{
			Annotate:  opts.Annotate,
			Extension: ".c",
			HashBytes: 5,
			Parallel:  1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the generator settings and logging level.
func (c *Config) Validate() error {
	opts := c.GeneratorOptions(false)
	if err := opts.Validate(); err != nil {
		return err
	}

	if c.Output.HashBytes <= 0 {
		return fmt.Errorf("hash_bytes must be positive, got %d", c.Output.HashBytes)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// GeneratorOptions converts the config into domain options.
func (c *Config) GeneratorOptions(tautOnly bool) domain.Options {
	return domain.Options{
		MaxIdx:            c.Generator.MaxIdx,
		PoolSize:          c.Generator.PoolSize,
		VarPrefix:         c.Generator.VarPrefix,
		MaxDecoys:         c.Generator.MaxDecoys,
		MinDecoysTautOnly: c.Generator.MinDecoysTautOnly,
		IncludeCondWrite:  !tautOnly,
		Annotate:          c.Output.Annotate,
		Indent:            c.Generator.Indent,
	}
}

// LogLevel parses the configured logging level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return level, fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}

	return level, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv("BUFSAFE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	if parallel := os.Getenv("BUFSAFE_PARALLEL"); parallel != "" {
		n, err := strconv.Atoi(parallel)
		if err != nil {
			return fmt.Errorf("invalid BUFSAFE_PARALLEL %q: %w", parallel, err)
		}

		c.Output.Parallel = n
	}

	return nil
}
