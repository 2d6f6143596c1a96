package config

import (
	"os"
	"strings"
	"time"
)

// NetworkConfig holds HTTP listener configuration
type NetworkConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	Environment  string        `yaml:"environment"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// DefaultNetworkConfig returns the listener defaults
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Host:         DefaultHost,
		Port:         DefaultHTTPPort,
		Environment:  DefaultEnvironment,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}
}

// applyEnv overrides listener settings with TRANSCRIBER_* variables
func (nc *NetworkConfig) applyEnv() {
	nc.Host = getEnvOrDefault("TRANSCRIBER_HOST", nc.Host)
	nc.Port = getEnvOrDefault("TRANSCRIBER_PORT", nc.Port)
	nc.Environment = getEnvOrDefault("TRANSCRIBER_ENV", nc.Environment)
}

// Address returns host:port
func (nc NetworkConfig) Address() string {
	return nc.Host + ":" + nc.Port
}

// IsProduction reports whether the server runs in production mode
func (nc NetworkConfig) IsProduction() bool {
	return nc.Environment == "production"
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
