package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
logging:
  level: "debug"
  format: "json"
  output: "file"
  file:
    path: "/tmp/dmxaddr.log"
    max_size: 5
    max_backups: 2
    max_age: 7
    compress: false
output:
  format: "yaml"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Output != "file" {
		t.Errorf("Logging.Output = %q, want %q", cfg.Logging.Output, "file")
	}
	if cfg.Logging.File.Path != "/tmp/dmxaddr.log" {
		t.Errorf("Logging.File.Path = %q, want %q", cfg.Logging.File.Path, "/tmp/dmxaddr.log")
	}
	if cfg.Logging.File.MaxSize != 5 {
		t.Errorf("Logging.File.MaxSize = %d, want 5", cfg.Logging.File.MaxSize)
	}
	if cfg.Logging.File.Compress {
		t.Error("Logging.File.Compress = true, want false")
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "yaml")
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: json\n"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Logging.Output = %q, want default %q", cfg.Logging.Output, "stderr")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
output:
  format: "xml"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() expected validation error for output.format xml, got nil")
	}
	if !strings.Contains(err.Error(), "output.format") {
		t.Errorf("Load() error = %v, want mention of output.format", err)
	}
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "text")
	}
}

func TestDefault_InvalidEnv(t *testing.T) {
	t.Setenv("GRAYLOGIC_DMX_LOG_LEVEL", "verbose")

	if _, err := Default(); err == nil {
		t.Error("Default() expected error for invalid GRAYLOGIC_DMX_LOG_LEVEL, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "upper case values", mutate: func(c *Config) {
			c.Logging.Level = "DEBUG"
			c.Output.Format = "JSON"
		}},
		{name: "invalid level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: true},
		{name: "invalid log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "invalid log output", mutate: func(c *Config) { c.Logging.Output = "syslog" }, wantErr: true},
		{name: "file output without path", mutate: func(c *Config) {
			c.Logging.Output = "file"
			c.Logging.File.Path = ""
		}, wantErr: true},
		{name: "file output negative limits", mutate: func(c *Config) {
			c.Logging.Output = "file"
			c.Logging.File.MaxAge = -1
		}, wantErr: true},
		{name: "missing path ignored for stderr", mutate: func(c *Config) { c.Logging.File.Path = "" }},
		{name: "empty output format", mutate: func(c *Config) { c.Output.Format = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("GRAYLOGIC_DMX_LOG_LEVEL", "warn")
	t.Setenv("GRAYLOGIC_DMX_LOG_FORMAT", "json")
	t.Setenv("GRAYLOGIC_DMX_LOG_OUTPUT", "stdout")
	t.Setenv("GRAYLOGIC_DMX_OUTPUT_FORMAT", "yaml")

	applyEnvOverrides(cfg)

	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Logging.Output = %q, want %q", cfg.Logging.Output, "stdout")
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "yaml")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Logging.Level != "info" {
		t.Errorf("defaultConfig Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.File.Path == "" {
		t.Error("defaultConfig should have non-empty Logging.File.Path")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig should validate, got %v", err)
	}
}
