package provider

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrInvalidResponse is returned when a transcription envelope does not carry
// a transcript at results.channels[0].alternatives[0].transcript.
var ErrInvalidResponse = errors.New("Invalid response format")

// ProviderType defines the type of transcription provider
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeRemote ProviderType = "remote"
)

// AudioFile is an uploaded or picked audio blob together with the metadata
// the browser declared for it.
type AudioFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// IsAudio reports whether the declared MIME type is an audio type.
func (f *AudioFile) IsAudio() bool {
	return f != nil && strings.HasPrefix(f.ContentType, "audio/")
}

// Size returns the payload length in bytes
func (f *AudioFile) Size() int {
	if f == nil {
		return 0
	}
	return len(f.Data)
}

// TranscriptionResult wraps the upstream response envelope exactly as it was received.
type TranscriptionResult struct {
	Raw json.RawMessage
}

// envelope mirrors the only path of the upstream response that is consumed.
type envelope struct {
	Results *struct {
		Channels []struct {
			Alternatives []struct {
				Transcript *string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcript extracts the first alternative of the first channel.
func (r *TranscriptionResult) Transcript() (string, error) {
	if r == nil || len(r.Raw) == 0 {
		return "", ErrInvalidResponse
	}
	return ExtractTranscript(r.Raw)
}

// ExtractTranscript pulls results.channels[0].alternatives[0].transcript out of a
// JSON body. An empty transcript counts as missing.
func ExtractTranscript(body []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", ErrInvalidResponse
	}
	if env.Results == nil || len(env.Results.Channels) == 0 {
		return "", ErrInvalidResponse
	}
	alternatives := env.Results.Channels[0].Alternatives
	if len(alternatives) == 0 || alternatives[0].Transcript == nil || *alternatives[0].Transcript == "" {
		return "", ErrInvalidResponse
	}
	return *alternatives[0].Transcript, nil
}

// NewEnvelope builds a minimal upstream-shaped envelope around a transcript.
func NewEnvelope(transcript string) (json.RawMessage, error) {
	body := map[string]interface{}{
		"results": map[string]interface{}{
			"channels": []interface{}{
				map[string]interface{}{
					"alternatives": []interface{}{
						map[string]interface{}{"transcript": transcript},
					},
				},
			},
		},
	}
	return json.Marshal(body)
}

// ProviderInfo contains metadata about a transcription provider
type ProviderInfo struct {
	Name           string       `json:"name"`
	DisplayName    string       `json:"display_name"`
	Type           ProviderType `json:"type"`
	DefaultModel   string       `json:"default_model,omitempty"`
	RequiresAPIKey bool         `json:"requires_api_key"`
}

// TranscriptionError represents provider-specific errors
type TranscriptionError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Provider   string `json:"provider"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e *TranscriptionError) Error() string {
	return e.Message
}
