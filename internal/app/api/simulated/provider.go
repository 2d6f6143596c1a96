package simulated

import (
	"context"
	"fmt"
	"time"

	"audio-transcriber/internal/app/api/provider"
)

const (
	ProviderName = "simulated"
	DefaultDelay = 2 * time.Second
)

// SimulatedProvider fabricates a transcript locally after a fixed delay. It
// makes no network calls and needs no credential.
type SimulatedProvider struct {
	delay time.Duration
}

// NewSimulatedProvider creates a simulated provider; a negative delay is treated as zero
func NewSimulatedProvider(delay time.Duration) *SimulatedProvider {
	if delay < 0 {
		delay = 0
	}
	return &SimulatedProvider{delay: delay}
}

// Transcribe waits for the configured delay and returns a fabricated envelope
func (p *SimulatedProvider) Transcribe(ctx context.Context, file *provider.AudioFile) (*provider.TranscriptionResult, error) {
	if file == nil {
		return nil, &provider.TranscriptionError{
			Code:     "invalid_input",
			Message:  "No audio file provided",
			Provider: ProviderName,
		}
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	raw, err := provider.NewEnvelope(Transcript(file.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to build simulated envelope: %w", err)
	}
	return &provider.TranscriptionResult{Raw: raw}, nil
}

// Transcript is the fabricated text returned for a file name
func Transcript(fileName string) string {
	return fmt.Sprintf("This is a simulated transcription of the file \"%s\". \n"+
		"In a real application, this would be the actual transcribed text from the audio file.", fileName)
}

// GetProviderInfo returns metadata about the simulated provider
func (p *SimulatedProvider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:        ProviderName,
		DisplayName: "Simulated (local demo)",
		Type:        provider.ProviderTypeLocal,
	}
}

// ValidateConfiguration always succeeds
func (p *SimulatedProvider) ValidateConfiguration() error {
	return nil
}
