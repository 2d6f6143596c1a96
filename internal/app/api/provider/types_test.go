package provider

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioFile_IsAudio(t *testing.T) {
	assert.True(t, (&AudioFile{ContentType: "audio/mpeg"}).IsAudio())
	assert.True(t, (&AudioFile{ContentType: "audio/wav"}).IsAudio())
	assert.False(t, (&AudioFile{ContentType: "video/mp4"}).IsAudio())
	assert.False(t, (&AudioFile{ContentType: ""}).IsAudio())
	assert.False(t, (*AudioFile)(nil).IsAudio())
}

func TestExtractTranscript(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		wantErr  bool
	}{
		{
			name:     "full envelope",
			body:     `{"results":{"channels":[{"alternatives":[{"transcript":"hello world"}]}]}}`,
			expected: "hello world",
		},
		{
			name:     "extra fields are ignored",
			body:     `{"metadata":{"request_id":"x"},"results":{"channels":[{"alternatives":[{"transcript":"hi","confidence":0.9}]}]}}`,
			expected: "hi",
		},
		{name: "missing results", body: `{}`, wantErr: true},
		{name: "empty channels", body: `{"results":{"channels":[]}}`, wantErr: true},
		{name: "empty alternatives", body: `{"results":{"channels":[{"alternatives":[]}]}}`, wantErr: true},
		{name: "missing transcript", body: `{"results":{"channels":[{"alternatives":[{}]}]}}`, wantErr: true},
		{name: "empty transcript", body: `{"results":{"channels":[{"alternatives":[{"transcript":""}]}]}}`, wantErr: true},
		{name: "not json", body: `nope`, wantErr: true},
		{name: "wrong type", body: `{"results":{"channels":[{"alternatives":[{"transcript":1}]}]}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTranscript([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidResponse)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewEnvelope_RoundTripsThroughResult(t *testing.T) {
	raw, err := NewEnvelope("abc")
	require.NoError(t, err)

	result := &TranscriptionResult{Raw: raw}
	transcript, err := result.Transcript()
	require.NoError(t, err)
	assert.Equal(t, "abc", transcript)

	var empty *TranscriptionResult
	_, err = empty.Transcript()
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestProviderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewProviderMetrics(reg)

	m.RecordSuccess("deepgram", 0.5)
	m.RecordSuccess("deepgram", 1.5)
	m.RecordFailure("deepgram", "api_error")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("deepgram", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("deepgram", "failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.failures.WithLabelValues("deepgram", "api_error")))
}

func TestTranscriptionError(t *testing.T) {
	err := &TranscriptionError{Code: "api_error", Message: "Deepgram API error: 401", StatusCode: 401}
	assert.Equal(t, "Deepgram API error: 401", err.Error())
}
