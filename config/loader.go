package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "crew.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// The YAML file is optional; a missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "CREW_PORT")
	setString(&cfg.Server.CORSOrigin, "CREW_CORS_ORIGIN")
	setString(&cfg.Model.Provider, "CREW_MODEL_PROVIDER")
	setString(&cfg.Model.Name, "CREW_MODEL")
	setFloat64(&cfg.Model.Temperature, "CREW_MODEL_TEMPERATURE")
	setInt64(&cfg.Model.MaxTokens, "CREW_MODEL_MAX_TOKENS")
	setDuration(&cfg.Model.Timeout, "CREW_MODEL_TIMEOUT")
	setString(&cfg.Logging.Level, "CREW_LOG_LEVEL")
	setString(&cfg.Logging.Format, "CREW_LOG_FORMAT")

	// Provider credentials use the SDKs' conventional variable names.
	switch cfg.Model.Provider {
	case "anthropic":
		setString(&cfg.Model.APIKey, "ANTHROPIC_API_KEY")
	default:
		setString(&cfg.Model.APIKey, "OPENAI_API_KEY")
	}
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.Model.Provider != "openai" && cfg.Model.Provider != "anthropic" {
		return fmt.Errorf("model.provider must be openai or anthropic, got %q", cfg.Model.Provider)
	}
	if cfg.Model.Name == "" {
		return errors.New("model.name is required")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		var f float64
		if _, err := fmt.Sscanf(v, "%g", &f); err == nil {
			*dst = f
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		var n int64
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
