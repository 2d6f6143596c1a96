package whisper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"audio-transcriber/internal/app/api/provider"
)

const ProviderName = "openai"

// OpenAIProviderConfig represents configuration specific to OpenAI Whisper provider
type OpenAIProviderConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"` // empty keeps the client default
}

// RemoteTranscriber implements remote transcription using the OpenAI API.
// Responses are rewrapped in the Deepgram envelope so clients read one shape.
type RemoteTranscriber struct {
	client *openai.Client
	config OpenAIProviderConfig
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(config OpenAIProviderConfig) *RemoteTranscriber {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	}
	if config.Model == "" {
		config.Model = openai.Whisper1
	}

	return &RemoteTranscriber{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// Transcribe uploads the audio to the transcription endpoint once
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, file *provider.AudioFile) (*provider.TranscriptionResult, error) {
	if file == nil {
		return nil, &provider.TranscriptionError{
			Code:     "invalid_input",
			Message:  "No audio file provided",
			Provider: ProviderName,
		}
	}

	resp, err := rt.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    rt.config.Model,
		FilePath: file.Name,
		Reader:   bytes.NewReader(file.Data),
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return nil, handleAPIError(err)
	}

	raw, err := provider.NewEnvelope(resp.Text)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "response_parse_failed",
			Message:  fmt.Sprintf("failed to build envelope: %v", err),
			Provider: ProviderName,
		}
	}
	return &provider.TranscriptionResult{Raw: raw}, nil
}

// handleAPIError converts OpenAI API errors to TranscriptionError. As with
// Deepgram, only the status of a failed call is surfaced.
func handleAPIError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	if status != 0 {
		return &provider.TranscriptionError{
			Code:       "api_error",
			Message:    fmt.Sprintf("OpenAI API error: %d", status),
			Provider:   ProviderName,
			StatusCode: status,
		}
	}

	return &provider.TranscriptionError{
		Code:     "request_failed",
		Message:  fmt.Sprintf("createTranscription failed: %v", err),
		Provider: ProviderName,
	}
}

// GetProviderInfo returns metadata about the OpenAI provider
func (rt *RemoteTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:           ProviderName,
		DisplayName:    "OpenAI Whisper API",
		Type:           provider.ProviderTypeRemote,
		DefaultModel:   rt.config.Model,
		RequiresAPIKey: true,
	}
}

// ValidateConfiguration validates the provider configuration
func (rt *RemoteTranscriber) ValidateConfiguration() error {
	if rt.config.APIKey == "" {
		return fmt.Errorf("API key not configured")
	}
	return nil
}
