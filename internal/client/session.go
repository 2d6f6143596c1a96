package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"audio-transcriber/internal/app/api/provider"
)

// DownloadFileName is the name of the file produced by Download
const DownloadFileName = "transcription.txt"

// User-facing messages
const (
	MsgInvalidAudioFile = "Please select a valid audio file."
	MsgGenericFailure   = "An error occurred during transcription."
	LabelTranscribe     = "Transcribe Audio"
	LabelTranscribing   = "Transcribing..."
)

// State is the position of a session in the upload/transcribe flow
type State int

const (
	StateIdle State = iota
	StateFileSelected
	StateTranscribing
	StateTranscribed
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file_selected"
	case StateTranscribing:
		return "transcribing"
	case StateTranscribed:
		return "transcribed"
	case StateErrored:
		return "errored"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session holds the state of one upload/display client. All methods are safe
// to call from multiple goroutines; Transcribe does not hold the lock while
// the backend call is outstanding.
type Session struct {
	mu         sync.Mutex
	backend    Backend
	logger     *zap.Logger
	state      State
	file       *provider.AudioFile
	transcript string
	errMsg     string
}

// NewSession creates an idle session using backend for transcription
func NewSession(backend Backend, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		backend: backend,
		logger:  logger,
		state:   StateIdle,
	}
}

// SelectFile accepts file only when its declared type is audio/*. A rejected
// pick clears the previous file and transcript and records an error.
func (s *Session) SelectFile(file *provider.AudioFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !file.IsAudio() {
		s.file = nil
		s.transcript = ""
		s.errMsg = MsgInvalidAudioFile
		s.state = StateErrored
		return errors.New(MsgInvalidAudioFile)
	}

	s.file = file
	s.transcript = ""
	s.errMsg = ""
	s.state = StateFileSelected
	return nil
}

// Transcribe sends the selected file to the backend once. Without a selected
// file it does nothing. The returned error carries the displayed message.
func (s *Session) Transcribe(ctx context.Context) error {
	s.mu.Lock()
	if s.file == nil {
		s.mu.Unlock()
		return nil
	}
	file := s.file
	s.state = StateTranscribing
	s.errMsg = ""
	s.transcript = ""
	s.mu.Unlock()

	transcript, err := s.backend.Transcribe(ctx, file)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Error("Transcription error", zap.String("file", file.Name), zap.Error(err))
		message := err.Error()
		if message == "" {
			message = MsgGenericFailure
		}
		s.errMsg = message
		s.transcript = ""
		s.state = StateErrored
		return errors.New(message)
	}

	s.transcript = transcript
	s.state = StateTranscribed
	return nil
}

// Download writes the current transcript to w. It is a no-op without a
// transcript and never changes the session.
func (s *Session) Download(w io.Writer) (bool, error) {
	transcript := s.Transcript()
	if transcript == "" {
		return false, nil
	}
	if _, err := io.WriteString(w, transcript); err != nil {
		return false, fmt.Errorf("failed to write transcript: %w", err)
	}
	return true, nil
}

// DownloadFile saves the transcript as transcription.txt in dir and returns
// its path, or "" when there is no transcript.
func (s *Session) DownloadFile(dir string) (string, error) {
	transcript := s.Transcript()
	if transcript == "" {
		return "", nil
	}

	path := filepath.Join(dir, DownloadFileName)
	if err := os.WriteFile(path, []byte(transcript), 0644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", DownloadFileName, err)
	}
	return path, nil
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// File returns the selected file, if any
func (s *Session) File() *provider.AudioFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file
}

// Transcript returns the displayed transcript
func (s *Session) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript
}

// Err returns the displayed error message
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Busy reports whether a transcription is in flight
func (s *Session) Busy() bool {
	return s.State() == StateTranscribing
}

// Label is the text of the transcribe control
func (s *Session) Label() string {
	if s.Busy() {
		return LabelTranscribing
	}
	return LabelTranscribe
}
