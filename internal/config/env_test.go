package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		DeepgramAPIKeyEnv,
		OpenAIAPIKeyEnv,
		"TRANSCRIBER_HOST",
		"TRANSCRIBER_PORT",
		"TRANSCRIBER_ENV",
		"TRANSCRIBER_BACKEND",
		"DEEPGRAM_BASE_URL",
		"DEEPGRAM_MODEL",
		"SIMULATED_DELAY",
		"OPENAI_BASE_URL",
		"OPENAI_MODEL",
	} {
		t.Setenv(key, "")
	}
}

func TestGetAPIKeys(t *testing.T) {
	testCases := []struct {
		name          string
		deepgramKey   string
		expected      string
		expectError   bool
		errorContains string
	}{
		{name: "valid key", deepgramKey: "0123456789abcdef", expected: "0123456789abcdef"},
		{name: "surrounding whitespace is trimmed", deepgramKey: "  abc123  ", expected: "abc123"},
		{name: "empty key is allowed", deepgramKey: "", expected: ""},
		{name: "inner whitespace", deepgramKey: "abc 123", expectError: true, errorContains: "whitespace"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(DeepgramAPIKeyEnv, tc.deepgramKey)

			apiKeys, err := GetAPIKeys()
			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, apiKeys.Deepgram)
		})
	}
}

func TestRequireAPIKeys(t *testing.T) {
	assert.Error(t, RequireAPIKeys(BackendDeepgram, &APIKeys{}))
	assert.Error(t, RequireAPIKeys(BackendDeepgram, nil))
	assert.NoError(t, RequireAPIKeys(BackendDeepgram, &APIKeys{Deepgram: "key"}))
	assert.NoError(t, RequireAPIKeys(BackendSimulated, &APIKeys{}))
	assert.Error(t, RequireAPIKeys(BackendOpenAI, &APIKeys{Deepgram: "key"}))
	assert.NoError(t, RequireAPIKeys(BackendOpenAI, &APIKeys{OpenAI: "sk-key"}))
}

func TestLoad_OpenAIBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSCRIBER_BACKEND", BackendOpenAI)
	t.Setenv(OpenAIAPIKeyEnv, "sk-key")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9000/v1")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.RequireCredential())

	settings := cfg.ProviderSettings()
	assert.Equal(t, "sk-key", settings.OpenAIAPIKey)
	assert.Equal(t, "http://localhost:9000/v1", settings.OpenAIBaseURL)
	assert.Equal(t, DefaultOpenAIModel, settings.OpenAIModel)
	assert.Empty(t, settings.APIKey)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendDeepgram, cfg.Backend)
	assert.Equal(t, DefaultHTTPPort, cfg.Server.Port)
	assert.Equal(t, DefaultDeepgramBaseURL, cfg.Deepgram.BaseURL)
	assert.Equal(t, "nova-2", cfg.Deepgram.Model)
	assert.True(t, cfg.Deepgram.SmartFormat)
	assert.Equal(t, 2*time.Second, cfg.Simulated.Delay)
	assert.Error(t, cfg.RequireCredential())
}

func TestLoad_FileAndEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "transcriber.yaml")
	content := `
server:
  host: 127.0.0.1
  port: "9000"
  environment: production
backend: simulated
simulated:
  delay: 500ms
deepgram:
  timeout: 45s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("TRANSCRIBER_PORT", "9100")
	t.Setenv(DeepgramAPIKeyEnv, "secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, "127.0.0.1:9100", cfg.Server.Address())
	assert.Equal(t, BackendSimulated, cfg.Backend)
	assert.Equal(t, 500*time.Millisecond, cfg.Simulated.Delay)
	assert.True(t, cfg.Deepgram.SmartFormat)

	settings := cfg.ProviderSettings()
	assert.Equal(t, "secret", settings.APIKey)
	assert.Equal(t, 45*time.Second, settings.Timeout)
	assert.Equal(t, 500*time.Millisecond, settings.SimulatedDelay)
	assert.NoError(t, cfg.RequireCredential())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		env           map[string]string
		errorContains string
	}{
		{"unknown backend", map[string]string{"TRANSCRIBER_BACKEND": "whisper"}, "unknown backend"},
		{"bad port", map[string]string{"TRANSCRIBER_PORT": "http"}, "port invalid"},
		{"bad base url", map[string]string{"DEEPGRAM_BASE_URL": "api.deepgram.com"}, "must start with"},
		{"bad delay", map[string]string{"SIMULATED_DELAY": "soon"}, "SIMULATED_DELAY"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoadEnv(t *testing.T) {
	// godotenv never overrides variables that already exist, even empty ones
	t.Setenv("TRANSCRIBER_DOTENV_PROBE", "")
	os.Unsetenv("TRANSCRIBER_DOTENV_PROBE")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TRANSCRIBER_DOTENV_PROBE=loaded\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "loaded", os.Getenv("TRANSCRIBER_DOTENV_PROBE"))
}
