package client

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"audio-transcriber/internal/app/api/provider"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressBackend shows a spinner on the configured writer while the wrapped
// backend call is outstanding.
type ProgressBackend struct {
	backend Backend
	config  ProgressConfig
	mu      sync.Mutex
}

func NewProgressBackend(backend Backend, config ProgressConfig) *ProgressBackend {
	if config.Writer == nil {
		config.Writer = os.Stderr
	}
	return &ProgressBackend{backend: backend, config: config}
}

// Transcribe implements Backend
func (pb *ProgressBackend) Transcribe(ctx context.Context, file *provider.AudioFile) (string, error) {
	if !pb.config.Enabled {
		return pb.backend.Transcribe(ctx, file)
	}

	pb.mu.Lock()
	defer pb.mu.Unlock()

	container := mpb.NewWithContext(ctx,
		mpb.WithOutput(pb.config.Writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	description := LabelTranscribing + " " + file.Name
	bar := container.New(0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace), " ✓ "),
		),
	)

	transcript, err := pb.backend.Transcribe(ctx, file)
	if err != nil {
		bar.Abort(false)
	} else {
		bar.SetTotal(-1, true)
	}
	container.Wait()
	return transcript, err
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr)
}
