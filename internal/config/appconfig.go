package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig is the bundled application configuration, shipped as a YAML file
// next to the binary. User preferences override it at runtime.
type AppConfig struct {
	BackendEndpoint       string `yaml:"backend_endpoint"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

// DefaultAppConfig returns the built-in fallback configuration
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BackendEndpoint:       "http://localhost:8000",
		RequestTimeoutSeconds: 10,
	}
}

// RequestTimeout returns the HTTP timeout as a duration
func (c AppConfig) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LoadAppConfig reads YAML configuration from r, filling gaps with defaults
func LoadAppConfig(r io.Reader) (AppConfig, error) {
	cfg := DefaultAppConfig()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BackendEndpoint == "" {
		cfg.BackendEndpoint = DefaultAppConfig().BackendEndpoint
	}
	return cfg, nil
}

// LoadAppConfigFile reads the config file at path. A missing file is not an
// error; the defaults are used.
func LoadAppConfigFile(path string) (AppConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return DefaultAppConfig(), fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadAppConfig(f)
}
