// Package config loads editor settings from a YAML file in the user scope.
// Environment variables override the file at runtime.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Env var names used as overrides.
const (
	EnvConfigPath   = "PONDEDITOR_CONFIG"
	EnvLogLevel     = "PONDEDITOR_LOG_LEVEL"
	EnvLogFile      = "PONDEDITOR_LOG_FILE"
	EnvProgram      = "PONDEDITOR_PROGRAM"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName  = "OTEL_SERVICE_NAME"
	EnvOTLPInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
)

type EditorConfig struct {
	TabSize     int    `yaml:"tab_size"`
	Program     string `yaml:"program"`      // startup block program name; empty = built-in default
	ProgramsDir string `yaml:"programs_dir"` // empty = programs.Store default
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	Insecure     bool   `yaml:"insecure"`
}

// Config is the user-editable configuration.
// config_version: bump when the structure changes incompatibly.
type Config struct {
	ConfigVersion int             `yaml:"config_version"`
	Editor        EditorConfig    `yaml:"editor"`
	Logging       LoggingConfig   `yaml:"logging"`
	Telemetry     TelemetryConfig `yaml:"telemetry"`
}

// Defaults returns the application defaults.
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		Editor:        EditorConfig{TabSize: 2},
		Logging:       LoggingConfig{Level: "info"},
		Telemetry:     TelemetryConfig{ServiceName: "pondeditor", Insecure: true},
	}
}

// Path returns the config file path: $PONDEDITOR_CONFIG, or
// ~/.config/pondeditor/config.yaml.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(home, ".config", "pondeditor", "config.yaml"), nil
}

// Load reads the config at path (Path() when empty), applies defaults for
// absent keys, then env overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		// Unmarshal over the defaults so absent keys keep their default.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)
	if cfg.Editor.TabSize <= 0 {
		cfg.Editor.TabSize = Defaults().Editor.TabSize
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvProgram)); v != "" {
		cfg.Editor.Program = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOTLPEndpoint)); v != "" {
		cfg.Telemetry.OTLPEndpoint = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvServiceName)); v != "" {
		cfg.Telemetry.ServiceName = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOTLPInsecure)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Telemetry.Insecure = b
		}
	}
}
