package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"audio-transcriber/internal/api/dto"
	apierrors "audio-transcriber/internal/api/errors"
	"audio-transcriber/internal/app/api/provider"
)

// transcriptionService implements TranscriptionService
type transcriptionService struct {
	provider provider.TranscriptionProvider
	metrics  provider.ProviderMetrics
	logger   *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(p provider.TranscriptionProvider, metrics provider.ProviderMetrics, logger *zap.Logger) TranscriptionService {
	return &transcriptionService{
		provider: p,
		metrics:  metrics,
		logger:   logger,
	}
}

// Ready implements TranscriptionService
func (s *transcriptionService) Ready() error {
	if s.provider == nil {
		return apierrors.NewConfigurationError(apierrors.MsgAPIKeyNotConfigured)
	}
	if err := s.provider.ValidateConfiguration(); err != nil {
		return apierrors.NewConfigurationError(err.Error())
	}
	return nil
}

// Transcribe implements TranscriptionService
func (s *transcriptionService) Transcribe(ctx context.Context, file *provider.AudioFile) (json.RawMessage, error) {
	name := s.provider.GetProviderInfo().Name
	start := time.Now()

	result, err := s.provider.Transcribe(ctx, file)
	if err != nil {
		var tErr *provider.TranscriptionError
		if errors.As(err, &tErr) {
			s.metrics.RecordFailure(name, tErr.Code)
			s.logger.Error("Transcription error",
				zap.String("provider", name),
				zap.String("code", tErr.Code),
				zap.Int("upstream_status", tErr.StatusCode),
				zap.Error(err),
			)
			if tErr.Code == "api_error" {
				return nil, apierrors.NewUpstreamError(tErr.Message)
			}
			return nil, apierrors.NewInternalError(tErr.Message)
		}

		s.metrics.RecordFailure(name, "unexpected")
		s.logger.Error("Transcription error", zap.String("provider", name), zap.Error(err))
		return nil, apierrors.NewInternalError(err.Error())
	}

	s.metrics.RecordSuccess(name, time.Since(start).Seconds())
	s.logger.Debug("Transcription completed",
		zap.String("provider", name),
		zap.String("file", file.Name),
		zap.Int("bytes", file.Size()),
		zap.Duration("latency", time.Since(start)),
	)
	return result.Raw, nil
}

// Provider implements TranscriptionService
func (s *transcriptionService) Provider() dto.ProviderResponse {
	if s.provider == nil {
		return dto.ProviderResponse{}
	}
	info := s.provider.GetProviderInfo()
	return dto.ProviderResponse{
		Name:           info.Name,
		DisplayName:    info.DisplayName,
		Type:           string(info.Type),
		DefaultModel:   info.DefaultModel,
		RequiresAPIKey: info.RequiresAPIKey,
	}
}
