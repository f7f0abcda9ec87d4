// Package config handles loading and managing application configuration
// from YAML files, an optional .env file and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values.
type Config struct {
	OutputRoot string `yaml:"output_root"`
	ModuleSize int    `yaml:"module_size"`
	LogLevel   string `yaml:"log_level"`
	Preview    bool   `yaml:"preview"`
}

// EnvFile is the dotenv file Load reads from the working directory.
const EnvFile = ".env"

// defaults returns a Config populated with sensible default values.
func defaults() *Config {
	return &Config{
		OutputRoot: "qr_codes",
		ModuleSize: 10,
		LogLevel:   "warn",
		Preview:    false,
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist. Variables from EnvFile are exported
// into the process environment (without replacing ones already set), then
// QRGEN_ environment variables override any file or default values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", EnvFile, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies QRGEN_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("QRGEN_OUTPUT_ROOT"); v != "" {
		cfg.OutputRoot = v
	}
	if v := os.Getenv("QRGEN_MODULE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ModuleSize = n
		}
	}
	if v := os.Getenv("QRGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("QRGEN_PREVIEW"); v != "" {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			cfg.Preview = true
		case "false", "0", "no":
			cfg.Preview = false
		}
	}
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	if c.ModuleSize <= 0 {
		return fmt.Errorf("module_size must be positive, got %d", c.ModuleSize)
	}
	if strings.TrimSpace(c.OutputRoot) == "" {
		return errors.New("output_root must not be empty")
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
