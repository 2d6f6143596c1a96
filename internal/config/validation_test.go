package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort("8080", "server"))
	assert.NoError(t, ValidatePort("0", "server"))
	assert.Error(t, ValidatePort("", "server"))
	assert.Error(t, ValidatePort("70000", "server"))
	assert.Error(t, ValidatePort("abc", "server"))
}

func TestValidateTimeout(t *testing.T) {
	assert.NoError(t, ValidateTimeout(time.Second, "read"))
	assert.Error(t, ValidateTimeout(0, "read"))
	assert.Error(t, ValidateTimeout(time.Hour, "read"))
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://api.deepgram.com", "Deepgram"))
	assert.NoError(t, ValidateURL("http://localhost:9999", "Deepgram"))
	assert.Error(t, ValidateURL("", "Deepgram"))
	assert.Error(t, ValidateURL("ws://api.deepgram.com", "Deepgram"))
}

func TestValidateBackend(t *testing.T) {
	assert.NoError(t, ValidateBackend("deepgram"))
	assert.NoError(t, ValidateBackend("simulated"))
	assert.Error(t, ValidateBackend(""))
	assert.NoError(t, ValidateBackend("openai"))
	assert.Error(t, ValidateBackend("whisper"))
}
