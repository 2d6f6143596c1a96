package services

import (
	"context"
	"encoding/json"

	"audio-transcriber/internal/api/dto"
	"audio-transcriber/internal/app/api/provider"
)

// TranscriptionService relays uploaded audio to the configured backend
type TranscriptionService interface {
	// Ready reports whether the backend is configured to accept requests
	Ready() error

	// Transcribe sends the file once and returns the backend's JSON unchanged
	Transcribe(ctx context.Context, file *provider.AudioFile) (json.RawMessage, error)

	// Provider describes the active backend
	Provider() dto.ProviderResponse
}
