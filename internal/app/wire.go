//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"audio-transcriber/internal/api/server"
	"audio-transcriber/internal/client"
	"audio-transcriber/internal/config"
)

// InitializeServer wires the transcription proxy for cfg
func InitializeServer(cfg *config.Config) (*server.Server, func(), error) {
	wire.Build(serverSet)
	return nil, nil, nil
}

// InitializeLocalBackend runs the configured provider in-process for the CLI
func InitializeLocalBackend(cfg *config.Config) (*client.LocalBackend, error) {
	wire.Build(localBackendSet)
	return nil, nil
}
