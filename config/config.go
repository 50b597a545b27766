// Package config provides hierarchical configuration loading for the crew
// service. Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the crew service.
type Config struct {
	Server  Server  `yaml:"server"`
	Model   Model   `yaml:"model"`
	Logging Logging `yaml:"logging"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port       string `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"` // "*" allows any origin
}

// Model holds completion provider configuration.
type Model struct {
	Provider    string        `yaml:"provider"` // "openai" | "anthropic"
	Name        string        `yaml:"name"`
	APIKey      string        `yaml:"api_key"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int64         `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"` // per completion call; 0 disables
}

// Logging holds structured logging configuration.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" | "text"
}

// Defaults returns a Config with sensible default values for local development.
func Defaults() Config {
	return Config{
		Server: Server{
			Port:       "8000",
			CORSOrigin: "*",
		},
		Model: Model{
			Provider:    "openai",
			Name:        "gpt-4o-mini",
			Temperature: 0.3,
			MaxTokens:   4096,
			Timeout:     60 * time.Second,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}
