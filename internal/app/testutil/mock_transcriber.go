package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"audio-transcriber/internal/app/api/provider"
)

// MockProvider is a testify mock of provider.TranscriptionProvider
type MockProvider struct {
	mock.Mock
}

func NewMockProvider(t *testing.T) *MockProvider {
	m := &MockProvider{}
	m.Test(t)
	return m
}

func (m *MockProvider) Transcribe(ctx context.Context, file *provider.AudioFile) (*provider.TranscriptionResult, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.TranscriptionResult), args.Error(1)
}

func (m *MockProvider) GetProviderInfo() provider.ProviderInfo {
	args := m.Called()
	return args.Get(0).(provider.ProviderInfo)
}

func (m *MockProvider) ValidateConfiguration() error {
	args := m.Called()
	return args.Error(0)
}

// MockMetrics is a testify mock of provider.ProviderMetrics
type MockMetrics struct {
	mock.Mock
}

func NewMockMetrics(t *testing.T) *MockMetrics {
	m := &MockMetrics{}
	m.Test(t)
	return m
}

func (m *MockMetrics) RecordSuccess(name string, latencySec float64) {
	m.Called(name, latencySec)
}

func (m *MockMetrics) RecordFailure(name string, errorCode string) {
	m.Called(name, errorCode)
}
