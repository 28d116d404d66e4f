// Package config manages persisted CLI settings and their resolution
// against environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the settings stored in the config file.
type Config struct {
	Provider string `yaml:"provider,omitempty" mapstructure:"provider"`
	APIKey   string `yaml:"api-key,omitempty" mapstructure:"api-key"`
	Model    string `yaml:"model,omitempty" mapstructure:"model"`
	BaseURL  string `yaml:"base-url,omitempty" mapstructure:"base-url"`
}

// ValidKeys lists the allowed config keys.
var ValidKeys = []string{"provider", "api-key", "model", "base-url"}

// DefaultModel is used when no model is configured anywhere.
const DefaultModel = "gpt-4o-mini"

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pm"), nil
}

func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file from ~/.config/pm/config.yaml.
// Returns an empty Config if the file doesn't exist.
func Load() (*Config, error) {
	p, err := configPath()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(p)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to ~/.config/pm/config.yaml.
func Save(cfg *Config) error {
	p, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(p, data, 0o644)
}

// Set updates a single key in the config.
func Set(key, value string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	switch key {
	case "provider":
		cfg.Provider = value
	case "api-key":
		cfg.APIKey = value
	case "model":
		cfg.Model = value
	case "base-url":
		cfg.BaseURL = value
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(ValidKeys, ", "))
	}
	return Save(cfg)
}

// List returns key-value pairs for display, masking the API key.
func List() (map[string]string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"provider": cfg.Provider,
		"api-key":  maskKey(cfg.APIKey),
		"model":    cfg.Model,
		"base-url": cfg.BaseURL,
	}, nil
}

// Reset removes the config file.
func Reset() error {
	p, err := configPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing config: %w", err)
	}
	return nil
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

// Resolved holds the final provider settings after merging all sources.
type Resolved struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// Resolve merges provider settings in priority order:
// CLI flags > env vars > config file.
func Resolve(cliProvider, cliModel, cliAPIKey, cliBaseURL string) (*Resolved, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
	}

	// Env vars override config file
	if v := os.Getenv("PM_PROVIDER"); v != "" {
		r.Provider = v
	}
	if v := os.Getenv("PM_API_KEY"); v != "" {
		r.APIKey = v
	}
	if v := os.Getenv("PM_MODEL"); v != "" {
		r.Model = v
	}
	if v := os.Getenv("PM_BASE_URL"); v != "" {
		r.BaseURL = v
	}

	// CLI flags override env vars
	if cliProvider != "" {
		r.Provider = cliProvider
	}
	if cliAPIKey != "" {
		r.APIKey = cliAPIKey
	}
	if cliModel != "" {
		r.Model = cliModel
	}
	if cliBaseURL != "" {
		r.BaseURL = cliBaseURL
	}

	// Provider-specific env vars as fallback for the API key
	if r.APIKey == "" {
		switch strings.ToLower(r.Provider) {
		case "anthropic":
			r.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		default:
			r.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	if r.Model == "" {
		r.Model = DefaultModel
	}

	return r, nil
}
