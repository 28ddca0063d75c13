// Package config provides the options of an assembler run and loads them
// from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarchlab/hackasm/api"
	"github.com/sarchlab/hackasm/core"
	"gopkg.in/yaml.v3"
)

// RunConfig controls program execution after assembling.
type RunConfig struct {
	// Cycles is the cycle limit. 0 disables execution.
	Cycles int `yaml:"cycles"`
	RAM    int `yaml:"ram"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Config holds everything a run of the assembler needs.
type Config struct {
	Input   string    `yaml:"input"`
	Output  string    `yaml:"output"`
	Format  string    `yaml:"format"`
	Macros  bool      `yaml:"macros"`
	Symbols bool      `yaml:"symbols"`
	Lint    bool      `yaml:"lint"`
	Run     RunConfig `yaml:"run"`
	Log     LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Format: string(api.FormatText),
		Macros: true,
		Run: RunConfig{
			RAM: 24577,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Parse reads a YAML document on top of the defaults. Unknown keys are
// errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the value ranges.
func (c *Config) Validate() error {
	if _, err := api.ParseFormat(c.Format); err != nil {
		return err
	}

	if c.Run.Cycles < 0 {
		return fmt.Errorf("run.cycles must not be negative, got %d", c.Run.Cycles)
	}

	if c.Run.RAM <= 0 || c.Run.RAM > 1<<16 {
		return fmt.Errorf("run.ram must be in 1..65536, got %d", c.Run.RAM)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// OutputPath returns the configured output, or the input path with its
// extension replaced by .hack.
func (c *Config) OutputPath() string {
	if c.Output != "" || c.Input == "" {
		return c.Output
	}

	return strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + ".hack"
}

// SlogLevel maps the configured level name to a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "trace":
		return core.LevelTrace, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.Log.Level)
	}
}
