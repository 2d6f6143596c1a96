package simulated

import (
	"audio-transcriber/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(ProviderName, func(settings provider.Settings) (provider.TranscriptionProvider, error) {
		return NewSimulatedProvider(settings.SimulatedDelay), nil
	})
}
