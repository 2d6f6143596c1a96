package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Variables holding the server-side credentials
const (
	DeepgramAPIKeyEnv = "DEEPGRAM_API_KEY"
	OpenAIAPIKeyEnv   = "OPENAI_API_KEY"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	Deepgram string
	OpenAI   string
}

// LoadEnv loads environment variables from the first .env file found.
// Variables already set in the process environment win.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		Deepgram: strings.TrimSpace(os.Getenv(DeepgramAPIKeyEnv)),
		OpenAI:   strings.TrimSpace(os.Getenv(OpenAIAPIKeyEnv)),
	}

	if apiKeys.Deepgram != "" {
		if err := ValidateAPIKey(apiKeys.Deepgram, "Deepgram"); err != nil {
			return nil, err
		}
	}
	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, err
		}
	}

	return apiKeys, nil
}

// RequireAPIKeys fails fast when the selected backend needs a credential that is absent
func RequireAPIKeys(backend string, apiKeys *APIKeys) error {
	if apiKeys == nil {
		apiKeys = &APIKeys{}
	}

	var key, envName string
	switch backend {
	case BackendDeepgram:
		key, envName = apiKeys.Deepgram, DeepgramAPIKeyEnv
	case BackendOpenAI:
		key, envName = apiKeys.OpenAI, OpenAIAPIKeyEnv
	default:
		return nil
	}

	if key == "" {
		return fmt.Errorf("the %s backend requires an API key - please set %s in environment or .env file", backend, envName)
	}
	return nil
}
