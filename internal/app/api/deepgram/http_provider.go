package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"audio-transcriber/internal/app/api/provider"
)

const (
	ProviderName   = "deepgram"
	DefaultBaseURL = "https://api.deepgram.com"
	DefaultModel   = "nova-2"
	listenPath     = "/v1/listen"
)

// DeepgramProvider sends pre-recorded audio to the Deepgram listen endpoint
type DeepgramProvider struct {
	config DeepgramConfig
	client *http.Client
}

// DeepgramConfig represents configuration for the Deepgram HTTP API
type DeepgramConfig struct {
	APIKey      string        `yaml:"-"`
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	SmartFormat bool          `yaml:"smart_format"`
	Timeout     time.Duration `yaml:"timeout"` // zero keeps the transport default
}

// NewDeepgramProvider creates a new Deepgram provider
func NewDeepgramProvider(config DeepgramConfig) *DeepgramProvider {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	if config.Model == "" {
		config.Model = DefaultModel
	}

	return &DeepgramProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Transcribe forwards the raw audio bytes to Deepgram and returns the JSON envelope unchanged
func (p *DeepgramProvider) Transcribe(ctx context.Context, file *provider.AudioFile) (*provider.TranscriptionResult, error) {
	if file == nil {
		return nil, &provider.TranscriptionError{
			Code:     "invalid_input",
			Message:  "No audio file provided",
			Provider: ProviderName,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.listenURL(), bytes.NewReader(file.Data))
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "request_creation_failed",
			Message:  fmt.Sprintf("failed to create HTTP request: %v", err),
			Provider: ProviderName,
		}
	}
	httpReq.Header.Set("Authorization", "Token "+p.config.APIKey)
	httpReq.Header.Set("Content-Type", file.ContentType)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "request_failed",
			Message:  fmt.Sprintf("HTTP request failed: %v", err),
			Provider: ProviderName,
		}
	}
	defer resp.Body.Close()

	// The upstream error body is not relayed, only its status.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &provider.TranscriptionError{
			Code:       "api_error",
			Message:    fmt.Sprintf("Deepgram API error: %d", resp.StatusCode),
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
		}
	}

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "response_read_failed",
			Message:  fmt.Sprintf("failed to read response: %v", err),
			Provider: ProviderName,
		}
	}

	if !json.Valid(responseData) {
		return nil, &provider.TranscriptionError{
			Code:     "response_parse_failed",
			Message:  "failed to parse response: invalid JSON",
			Provider: ProviderName,
		}
	}

	return &provider.TranscriptionResult{Raw: json.RawMessage(responseData)}, nil
}

func (p *DeepgramProvider) listenURL() string {
	query := url.Values{}
	query.Set("model", p.config.Model)
	query.Set("smart_format", strconv.FormatBool(p.config.SmartFormat))
	return p.config.BaseURL + listenPath + "?" + query.Encode()
}

// GetProviderInfo returns metadata about the Deepgram provider
func (p *DeepgramProvider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:           ProviderName,
		DisplayName:    "Deepgram (pre-recorded)",
		Type:           provider.ProviderTypeRemote,
		DefaultModel:   p.config.Model,
		RequiresAPIKey: true,
	}
}

// ValidateConfiguration validates the provider configuration
func (p *DeepgramProvider) ValidateConfiguration() error {
	if p.config.APIKey == "" {
		return fmt.Errorf("API key not configured")
	}
	if !strings.HasPrefix(p.config.BaseURL, "http://") && !strings.HasPrefix(p.config.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://")
	}
	return nil
}
