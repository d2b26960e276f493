package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"reqadmin/internal/eventbus"
)

const (
	// EnvAPIURL overrides api.base_url
	EnvAPIURL = "REQADMIN_API_URL"
	// EnvToken overrides api.token
	EnvToken = "REQADMIN_TOKEN"
)

// Config represents the application configuration
type Config struct {
	Version int         `toml:"version"`
	API     APISettings `toml:"api"`
	UI      UISettings  `toml:"ui"`
	Log     LogSettings `toml:"log"`
}

// APISettings describes how to reach the admin backend
type APISettings struct {
	BaseURL        string `toml:"base_url"`
	Token          string `toml:"token,omitempty"`
	APIKey         string `toml:"api_key,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DateFormat         string `toml:"date_format"`
	DateTimeFormat     string `toml:"datetime_format"`
	ConfirmBulkActions bool   `toml:"confirm_bulk_actions"`
	DefaultSort        string `toml:"default_sort"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "reqadmin", "config.toml")
}

// NewConfigService creates a config service for path. An empty path means
// DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's file. A missing file yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save writes cfg to the service's file
func (cs *configService) Save(cfg *Config) error {
	if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys absent from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Tokens may live in this file
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL: "http://localhost:8080/api",
		},
		UI: UISettings{
			DateFormat:         "2006-01-02",
			DateTimeFormat:     "2006-01-02 15:04",
			ConfirmBulkActions: true,
			DefaultSort:        "created",
		},
		Log: LogSettings{
			File:  "reqadmin.log",
			Level: "info",
		},
	}
}

// SortModes lists the accepted ui.default_sort values
var SortModes = []string{"created", "email", "name", "status"}

// Validate checks values that cannot be used as given
func (c *Config) Validate() error {
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must not be negative, got %d", c.API.TimeoutSeconds)
	}
	if c.UI.DefaultSort != "" {
		ok := false
		for _, m := range SortModes {
			if m == c.UI.DefaultSort {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("ui.default_sort must be one of %s, got %q",
				strings.Join(SortModes, ", "), c.UI.DefaultSort)
		}
	}
	return nil
}

// ApplyEnv overrides file values with the REQADMIN_* environment
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv(EnvToken); v != "" {
		c.API.Token = v
	}
}
