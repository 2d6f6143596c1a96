package transcribe

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-transcriber/internal/app"
	"audio-transcriber/internal/app/common"
	"audio-transcriber/internal/client"
	"audio-transcriber/internal/config"
)

const BackendProxy = "proxy"

var (
	backend   string
	serverURL string
	outDir    string
	progress  bool
)

func init() {
	Cmd.Flags().StringVarP(&backend, "backend", "b", BackendProxy,
		"where to transcribe: proxy (a running transcriber server), or deepgram, openai, simulated (in-process)")
	Cmd.Flags().StringVarP(&serverURL, "server", "s", "http://localhost:"+config.DefaultHTTPPort,
		"base URL of the transcription proxy, used with --backend proxy")
	Cmd.Flags().StringVarP(&outDir, "out", "o", ".",
		"directory where transcription.txt is saved")
	Cmd.Flags().BoolVar(&progress, "progress", false, "always show the progress spinner")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe one local audio file and save transcription.txt",
	Long: `Transcribe one local audio file and save transcription.txt

- The file must be recognised as audio/*, otherwise nothing is sent
- With --backend proxy the file is uploaded to a running transcriber server
- The transcript is printed and written to transcription.txt in --out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zap.NewNop()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			var err error
			if logger, err = common.NewLogger(true); err != nil {
				return err
			}
			defer logger.Sync()
		}

		configPath, _ := cmd.Flags().GetString("config")
		b, err := newBackend(configPath)
		if err != nil {
			return err
		}

		session := client.NewSession(client.NewProgressBackend(b, client.ProgressConfig{
			Enabled: client.ShouldShowProgress(progress),
			Writer:  os.Stderr,
		}), logger)

		file, err := client.ReadAudioFile(args[0])
		if err != nil {
			return err
		}
		if err := session.SelectFile(file); err != nil {
			return err
		}
		if err := session.Transcribe(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), session.Transcript())

		path, err := session.DownloadFile(outDir)
		if err != nil {
			return err
		}
		logger.Info("Transcript saved", zap.String("path", path))
		return nil
	},
}

func newBackend(configPath string) (client.Backend, error) {
	if backend == BackendProxy {
		return client.NewProxyBackend(serverURL), nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Backend = backend
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.RequireCredential(); err != nil {
		return nil, err
	}
	local, err := app.InitializeLocalBackend(cfg)
	if err != nil {
		return nil, err
	}
	return local, nil
}
