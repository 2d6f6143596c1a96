package config

import "time"

// Default configuration constants
const (
	// Backends
	BackendDeepgram  = "deepgram"
	BackendSimulated = "simulated"
	BackendOpenAI    = "openai"
	DefaultBackend   = BackendDeepgram

	// Deepgram
	DefaultDeepgramBaseURL = "https://api.deepgram.com"
	DefaultDeepgramModel   = "nova-2"
	DefaultSmartFormat     = true

	// OpenAI Whisper
	DefaultOpenAIModel = "whisper-1"

	// Simulated backend
	DefaultSimulatedDelay = 2 * time.Second

	// Network defaults
	DefaultHost         = "0.0.0.0"
	DefaultHTTPPort     = "8080"
	DefaultEnvironment  = "development"
	DefaultReadTimeout  = 60 * time.Second
	DefaultWriteTimeout = 120 * time.Second
	DefaultIdleTimeout  = 120 * time.Second
)

// KnownBackends lists the transcription backends the server can run with
var KnownBackends = []string{BackendDeepgram, BackendOpenAI, BackendSimulated}
