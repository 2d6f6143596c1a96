package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"

	"audio-transcriber/internal/api/dto"
	"audio-transcriber/internal/app/api/provider"
)

// MockTranscriptionService is a mock implementation of services.TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func NewMockTranscriptionService(t *testing.T) *MockTranscriptionService {
	m := &MockTranscriptionService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionService) Ready() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, file *provider.AudioFile) (json.RawMessage, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockTranscriptionService) Provider() dto.ProviderResponse {
	args := m.Called()
	return args.Get(0).(dto.ProviderResponse)
}
