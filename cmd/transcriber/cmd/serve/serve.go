package serve

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"audio-transcriber/internal/app"
	"audio-transcriber/internal/config"
)

var (
	backend string
	host    string
	port    string
)

func init() {
	Cmd.Flags().StringVarP(&backend, "backend", "b", "", "transcription backend: deepgram, openai or simulated (overrides TRANSCRIBER_BACKEND)")
	Cmd.Flags().StringVar(&host, "host", "", "listen host (overrides TRANSCRIBER_HOST)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides TRANSCRIBER_PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcription proxy and browser client",
	Long: `Run the transcription proxy and browser client

- POST /api/transcribe accepts a multipart upload with an "audio" file part
- The audio is forwarded once to Deepgram and the response is relayed unchanged
- GET / serves the upload page, /health and /metrics serve operations`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := applyFlags(cfg); err != nil {
			return err
		}
		if err := cfg.RequireCredential(); err != nil {
			return err
		}

		srv, cleanup, err := app.InitializeServer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx)
	},
}

func applyFlags(cfg *config.Config) error {
	if backend != "" {
		cfg.Backend = backend
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if port != "" {
		cfg.Server.Port = port
	}
	return cfg.Validate()
}
