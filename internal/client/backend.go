package client

import (
	"context"
	"fmt"

	"audio-transcriber/internal/app/api/provider"
)

// Backend turns one audio file into a transcript
type Backend interface {
	Transcribe(ctx context.Context, file *provider.AudioFile) (string, error)
}

// LocalBackend runs a transcription provider in-process, which is how the
// simulated demo backend is driven without a proxy.
type LocalBackend struct {
	Provider provider.TranscriptionProvider
}

// NewLocalBackend wraps p as a client backend
func NewLocalBackend(p provider.TranscriptionProvider) *LocalBackend {
	return &LocalBackend{Provider: p}
}

// Transcribe implements Backend
func (b *LocalBackend) Transcribe(ctx context.Context, file *provider.AudioFile) (string, error) {
	if b.Provider == nil {
		return "", fmt.Errorf("no transcription provider configured")
	}

	result, err := b.Provider.Transcribe(ctx, file)
	if err != nil {
		return "", err
	}
	return result.Transcript()
}
