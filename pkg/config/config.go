// Package config loads the wordgraph configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoCorpus is returned by Validate when no corpus path is configured.
var ErrNoCorpus = errors.New("no corpus path configured")

// Config holds every tunable of the CLI, the HTTP server and the MCP server.
type Config struct {
	CorpusPath string `yaml:"corpus_path"`

	HTTPAddr  string `yaml:"http_addr"`
	AuthToken string `yaml:"auth_token"` // Empty disables bearer auth

	// "debug", "info", "warn" or "error"
	LogLevel string `yaml:"log_level"`

	// Seed makes every random choice reproducible. Nil means a crypto-seeded source.
	Seed *uint64 `yaml:"seed"`

	WalkOutput   string `yaml:"walk_output"`
	MaxWalkSteps int    `yaml:"max_walk_steps"` // 0 = unbounded
	DOTOutput    string `yaml:"dot_output"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:   ":9093",
		LogLevel:   "info",
		WalkOutput: "random_walk.txt",
		DOTOutput:  "graph.dot",
	}
}

// LoadConfig reads the YAML configuration file using strict parsing.
// Environment variables in the file are expanded before decoding.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}

	decoder := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	decoder.KnownFields(true)

	// A file without any document (empty or comments only) keeps the defaults.
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("YAML syntax error in '%s': %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	if c.CorpusPath == "" {
		return ErrNoCorpus
	}
	if c.MaxWalkSteps < 0 {
		return fmt.Errorf("max_walk_steps must be >= 0, got %d", c.MaxWalkSteps)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a level name to its slog.Level. Empty means info.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
