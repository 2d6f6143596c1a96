package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"audio-transcriber/internal/app/api/provider"
)

// Config is the complete server configuration. The credential is only ever
// taken from the environment and is injected into the provider explicitly.
type Config struct {
	Server    NetworkConfig   `yaml:"server"`
	Backend   string          `yaml:"backend"`
	Deepgram  DeepgramConfig  `yaml:"deepgram"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Simulated SimulatedConfig `yaml:"simulated"`

	APIKeys APIKeys `yaml:"-"`
}

// DeepgramConfig holds settings for the Deepgram backend
type DeepgramConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	SmartFormat bool          `yaml:"smart_format"`
	Timeout     time.Duration `yaml:"timeout"`
}

// OpenAIConfig holds settings for the OpenAI Whisper backend
type OpenAIConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// SimulatedConfig holds settings for the simulated backend
type SimulatedConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// Default returns a configuration populated with defaults
func Default() *Config {
	return &Config{
		Server:  DefaultNetworkConfig(),
		Backend: DefaultBackend,
		Deepgram: DeepgramConfig{
			BaseURL:     DefaultDeepgramBaseURL,
			Model:       DefaultDeepgramModel,
			SmartFormat: DefaultSmartFormat,
		},
		OpenAI: OpenAIConfig{
			Model: DefaultOpenAIModel,
		},
		Simulated: SimulatedConfig{
			Delay: DefaultSimulatedDelay,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence, and validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}
	cfg.APIKeys = *apiKeys

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.applyEnv()
	c.Backend = getEnvOrDefault("TRANSCRIBER_BACKEND", c.Backend)
	c.Deepgram.BaseURL = getEnvOrDefault("DEEPGRAM_BASE_URL", c.Deepgram.BaseURL)
	c.Deepgram.Model = getEnvOrDefault("DEEPGRAM_MODEL", c.Deepgram.Model)
	c.OpenAI.BaseURL = getEnvOrDefault("OPENAI_BASE_URL", c.OpenAI.BaseURL)
	c.OpenAI.Model = getEnvOrDefault("OPENAI_MODEL", c.OpenAI.Model)

	if raw := getEnvOrDefault("SIMULATED_DELAY", ""); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid SIMULATED_DELAY %q: %w", raw, err)
		}
		c.Simulated.Delay = delay
	}
	return nil
}

// Validate checks every setting
func (c *Config) Validate() error {
	if err := ValidateBackend(c.Backend); err != nil {
		return err
	}
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	for name, timeout := range map[string]time.Duration{
		"read":  c.Server.ReadTimeout,
		"write": c.Server.WriteTimeout,
		"idle":  c.Server.IdleTimeout,
	} {
		if err := ValidateTimeout(timeout, name); err != nil {
			return err
		}
	}
	if c.Backend == BackendDeepgram {
		if err := ValidateURL(c.Deepgram.BaseURL, "Deepgram"); err != nil {
			return err
		}
		if c.Deepgram.Timeout < 0 {
			return fmt.Errorf("Deepgram timeout cannot be negative")
		}
	}
	if c.Backend == BackendOpenAI && c.OpenAI.BaseURL != "" {
		if err := ValidateURL(c.OpenAI.BaseURL, "OpenAI"); err != nil {
			return err
		}
	}
	if c.Simulated.Delay < 0 {
		return fmt.Errorf("simulated delay cannot be negative")
	}
	return nil
}

// RequireCredential fails fast when the selected backend needs a missing credential
func (c *Config) RequireCredential() error {
	return RequireAPIKeys(c.Backend, &c.APIKeys)
}

// ProviderSettings returns the settings injected into the provider constructor
func (c *Config) ProviderSettings() provider.Settings {
	return provider.Settings{
		APIKey:         c.APIKeys.Deepgram,
		BaseURL:        c.Deepgram.BaseURL,
		Model:          c.Deepgram.Model,
		SmartFormat:    c.Deepgram.SmartFormat,
		Timeout:        c.Deepgram.Timeout,
		SimulatedDelay: c.Simulated.Delay,
		OpenAIAPIKey:   c.APIKeys.OpenAI,
		OpenAIBaseURL:  c.OpenAI.BaseURL,
		OpenAIModel:    c.OpenAI.Model,
	}
}
