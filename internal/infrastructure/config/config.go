package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the dmxaddr tool.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string            `yaml:"level"`
	Format string            `yaml:"format"`
	Output string            `yaml:"output"`
	File   FileLoggingConfig `yaml:"file"`
}

// FileLoggingConfig contains file-based logging settings.
// Used only when LoggingConfig.Output is "file".
type FileLoggingConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"max_size"` // megabytes
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
	Compress   bool   `yaml:"compress"`
}

// OutputConfig controls how addresses are printed.
type OutputConfig struct {
	// Format is one of "text", "json" or "yaml".
	Format string `yaml:"format"`
}

// OutputFormats lists the accepted values for output.format.
var OutputFormats = []string{"text", "json", "yaml"}

// Supported values for logging settings.
var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"json", "text"}
	logOutputs = []string{"stdout", "stderr", "file"}
)

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: GRAYLOGIC_DMX_SECTION_KEY
// For example: GRAYLOGIC_DMX_LOG_LEVEL, GRAYLOGIC_DMX_OUTPUT_FORMAT
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the default configuration with environment variable
// overrides applied. It is used when no config file is given.
func Default() (*Config, error) {
	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
			File: FileLoggingConfig{
				Path:       "./logs/dmxaddr.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
				Compress:   true,
			},
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: GRAYLOGIC_DMX_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Logging
	if v := os.Getenv("GRAYLOGIC_DMX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("GRAYLOGIC_DMX_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("GRAYLOGIC_DMX_LOG_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}

	// Output
	if v := os.Getenv("GRAYLOGIC_DMX_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if !oneOf(logLevels, c.Logging.Level) {
		errs = append(errs, fmt.Sprintf("logging.level must be one of %s", strings.Join(logLevels, ", ")))
	}
	if !oneOf(logFormats, c.Logging.Format) {
		errs = append(errs, fmt.Sprintf("logging.format must be one of %s", strings.Join(logFormats, ", ")))
	}
	if !oneOf(logOutputs, c.Logging.Output) {
		errs = append(errs, fmt.Sprintf("logging.output must be one of %s", strings.Join(logOutputs, ", ")))
	}

	if strings.EqualFold(c.Logging.Output, "file") {
		if c.Logging.File.Path == "" {
			errs = append(errs, "logging.file.path is required when logging.output is file")
		}
		if c.Logging.File.MaxSize < 0 || c.Logging.File.MaxBackups < 0 || c.Logging.File.MaxAge < 0 {
			errs = append(errs, "logging.file limits must not be negative")
		}
	}

	if !oneOf(OutputFormats, c.Output.Format) {
		errs = append(errs, fmt.Sprintf("output.format must be one of %s", strings.Join(OutputFormats, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// oneOf reports whether value matches one of allowed, ignoring case.
func oneOf(allowed []string, value string) bool {
	return slices.ContainsFunc(allowed, func(a string) bool {
		return strings.EqualFold(a, value)
	})
}
