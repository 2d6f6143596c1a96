package provider

import (
	"context"
)

// TranscriptionProvider is a backend able to turn one audio file into an
// upstream-shaped transcription envelope. Implementations are stateless
// between calls and safe for concurrent use.
type TranscriptionProvider interface {
	// Transcribe sends the audio once and returns the response envelope.
	Transcribe(ctx context.Context, file *AudioFile) (*TranscriptionResult, error)

	// Provider metadata
	GetProviderInfo() ProviderInfo

	// ValidateConfiguration reports missing or malformed settings.
	ValidateConfiguration() error
}

// ProviderMetrics records the outcome of provider calls
type ProviderMetrics interface {
	RecordSuccess(provider string, latencySec float64)
	RecordFailure(provider string, errorCode string)
}
