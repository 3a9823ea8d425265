// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	m := matcher.NewMatcher(cfg.Matching.ToMatcherConfig())
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jtkorhonen/docmatch/internal/domain/matcher"
)

// Config represents the entire application configuration
type Config struct {
	Matching MatchingConfig `yaml:"matching"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MatchingConfig holds the scoring rule set. Zero values fall back to
// the calibrated defaults, so a config file only needs the fields it
// wants to override.
type MatchingConfig struct {
	AmountTolerance     float64 `yaml:"amount_tolerance"`
	AcceptanceThreshold float64 `yaml:"acceptance_threshold"`
	NameMinScore        float64 `yaml:"name_min_score"`
	OwnCompany          string  `yaml:"own_company"`
}

// StorageConfig holds database configuration
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ToMatcherConfig converts the YAML-level overrides into the engine's
// rule set, starting from the calibrated defaults.
func (m MatchingConfig) ToMatcherConfig() matcher.Config {
	cfg := matcher.DefaultConfig()
	if m.AmountTolerance > 0 {
		cfg.AmountTolerance = decimal.NewFromFloat(m.AmountTolerance)
	}
	if m.AcceptanceThreshold > 0 {
		cfg.AcceptanceThreshold = m.AcceptanceThreshold
	}
	if m.NameMinScore > 0 {
		cfg.NameMinScore = m.NameMinScore
	}
	cfg.OwnCompany = m.OwnCompany
	return cfg
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${DOCMATCH_DB_PATH})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	return &Config{
		Matching: MatchingConfig{
			OwnCompany: os.Getenv("DOCMATCH_OWN_COMPANY"),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("DOCMATCH_DB_PATH", "docmatch.db"),
		},
		Server: ServerConfig{
			Port: getEnvInt("DOCMATCH_PORT", 8080),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// LoadOrEnv tries to load from config.yaml, falls back to environment variables
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath tries to load from the specified path, falls back to
// environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var result int
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}
