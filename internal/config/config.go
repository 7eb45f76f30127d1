// Package config loads ti's user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// SheetFileEnv overrides the sheet location
	SheetFileEnv = "SHEET_FILE"
	// ConfigFileEnv overrides the config file location
	ConfigFileEnv = "TI_CONFIG"
	// DefaultSheetName is the sheet file name under the home directory
	DefaultSheetName = ".ti-sheet"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the user configuration. It is passed explicitly to the
// components that need it.
type Config struct {
	SheetFile   string `json:"sheet_file" yaml:"sheet_file" toml:"sheet_file"`
	Color       string `json:"color" yaml:"color" toml:"color"`
	LockTimeout string `json:"lock_timeout" yaml:"lock_timeout" toml:"lock_timeout"`
	LogLevel    string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat   string `json:"log_format" yaml:"log_format" toml:"log_format"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Color:       ColorAuto,
		LockTimeout: "5s",
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// Manager loads configuration from a YAML or TOML file
type Manager struct {
	configPath string
}

// NewManager creates a manager for the file at configPath
func NewManager(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// Load reads the configuration. A missing file yields the defaults.
// The decoder is chosen by extension: .toml uses TOML, anything else YAML.
func (m *Manager) Load() (*Config, error) {
	cfg := Default()

	if m.configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.EqualFold(filepath.Ext(m.configPath), ".toml") {
		if err := ValidateTOML(data); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", m.configPath, err)
		}
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", m.configPath, err)
		}
	} else {
		if err := ValidateYAML(data); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", m.configPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", m.configPath, err)
		}
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never (got %q)", c.Color)
	}
	if _, err := time.ParseDuration(c.LockTimeout); err != nil {
		return fmt.Errorf("lock_timeout: %w", err)
	}
	return nil
}

// LockTimeoutDuration returns the parsed lock timeout
func (c *Config) LockTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.LockTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// ResolveSheetFile picks the sheet location: an explicit flag value, then
// $SHEET_FILE, then the config file, then ~/.ti-sheet.
func (c *Config) ResolveSheetFile(flagValue string, getenv func(string) string, home string) string {
	for _, candidate := range []string{flagValue, getenv(SheetFileEnv), c.SheetFile} {
		if candidate != "" {
			return expandHome(candidate, home)
		}
	}
	return filepath.Join(home, DefaultSheetName)
}

// DefaultPath returns the config file location: $TI_CONFIG, else
// ~/.config/ti/config.yaml, else ~/.config/ti/config.toml if only that exists.
func DefaultPath(getenv func(string) string, home string) string {
	if p := getenv(ConfigFileEnv); p != "" {
		return expandHome(p, home)
	}

	dir := filepath.Join(home, ".config", "ti")
	yamlPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	tomlPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath
	}
	return yamlPath
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Color == "" {
		cfg.Color = def.Color
	}
	if cfg.LockTimeout == "" {
		cfg.LockTimeout = def.LockTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
	}
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
