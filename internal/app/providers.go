package app

import (
	"io/fs"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"audio-transcriber/internal/api/server"
	"audio-transcriber/internal/api/services"
	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/common"
	"audio-transcriber/internal/client"
	"audio-transcriber/internal/config"
	"audio-transcriber/web"
)

// provideLogger builds the process logger; production servers log JSON
func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := common.NewLogger(!cfg.Server.IsProduction())
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// provideTranscriptionProvider creates the configured backend with its credential injected
func provideTranscriptionProvider(cfg *config.Config) (provider.TranscriptionProvider, error) {
	return provider.NewProvider(cfg.Backend, cfg.ProviderSettings())
}

func provideProviderMetrics(registry *prometheus.Registry) provider.ProviderMetrics {
	return provider.NewProviderMetrics(registry)
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Environment:  cfg.Server.Environment,
	}
}

func provideAssets() fs.FS {
	return web.Static()
}

var serverSet = wire.NewSet(
	provideLogger,
	provideRegistry,
	provideTranscriptionProvider,
	provideProviderMetrics,
	provideServerConfig,
	provideAssets,
	services.NewTranscriptionService,
	server.NewServer,
)

var localBackendSet = wire.NewSet(
	provideTranscriptionProvider,
	client.NewLocalBackend,
)
