package whisper

import (
	"audio-transcriber/internal/app/api/provider"
)

func init() {
	// Register openai provider with the factory
	provider.RegisterProvider(ProviderName, createOpenAIProvider)
}

func createOpenAIProvider(settings provider.Settings) (provider.TranscriptionProvider, error) {
	return NewRemoteTranscriber(OpenAIProviderConfig{
		APIKey:  settings.OpenAIAPIKey,
		BaseURL: settings.OpenAIBaseURL,
		Model:   settings.OpenAIModel,
	}), nil
}
