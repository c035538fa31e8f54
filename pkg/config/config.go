// Package config provides configuration management for tagaudit.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration: the Adobe OAuth
// server-to-server credentials plus optional analysis defaults.
type Config struct {
	// OrgID is the IMS organization ID (ends in "@AdobeOrg").
	OrgID string `yaml:"org_id"`
	// ClientID is the OAuth server-to-server client ID (API key).
	ClientID string `yaml:"client_id"`
	// ClientSecret is the OAuth server-to-server client secret.
	ClientSecret string `yaml:"client_secret"`
	// CompanyID preselects a company; empty means the first company the
	// credentials can see.
	CompanyID string `yaml:"company_id,omitempty"`
	// DefaultProperty preselects a property by name for analyze runs.
	DefaultProperty string `yaml:"default_property,omitempty"`
	// Markers overrides the enclosing marker set used by the usage
	// analysis. Leave empty for the default set.
	Markers []string `yaml:"markers,omitempty"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	// LoadConfig loads configuration from the specified file path.
	LoadConfig(configPath string) (*Config, error)
	// SaveConfig writes configuration to the specified file path.
	SaveConfig(configPath string, config *Config) error
	// DefaultPath returns the default configuration file path.
	DefaultPath() string
}

type realManager struct{}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (m *realManager) LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// SaveConfig writes configuration to the specified file path, creating the
// parent directory if needed. The file is written with owner-only
// permissions since it holds a client secret.
func (m *realManager) SaveConfig(configPath string, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultPath returns the default configuration file path.
func (m *realManager) DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}
	return filepath.Join(homeDir, ".tagaudit", "config.yaml")
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.OrgID == "" {
		return ErrOrgIDEmpty
	}
	if c.ClientID == "" {
		return ErrClientIDEmpty
	}
	if c.ClientSecret == "" {
		return ErrClientSecretEmpty
	}
	for _, marker := range c.Markers {
		if marker == "" {
			return ErrEmptyMarker
		}
	}
	return nil
}
