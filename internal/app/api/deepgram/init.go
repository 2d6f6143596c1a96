package deepgram

import (
	"audio-transcriber/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(ProviderName, createDeepgramProvider)
}

func createDeepgramProvider(settings provider.Settings) (provider.TranscriptionProvider, error) {
	return NewDeepgramProvider(DeepgramConfig{
		APIKey:      settings.APIKey,
		BaseURL:     settings.BaseURL,
		Model:       settings.Model,
		SmartFormat: settings.SmartFormat,
		Timeout:     settings.Timeout,
	}), nil
}
