package main

import (
	"fmt"
	"os"

	"audio-transcriber/cmd/transcriber/cmd"
	"audio-transcriber/internal/config"

	// Import providers to register them
	_ "audio-transcriber/internal/app/api/deepgram"
	_ "audio-transcriber/internal/app/api/openai/whisper"
	_ "audio-transcriber/internal/app/api/simulated"
)

// @title Audio Transcriber API
// @version 1.0
// @description Proxy that forwards uploaded audio to Deepgram and relays the transcription
// @BasePath /
func main() {
	// Values already in the environment take precedence over .env
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
