package client

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio-transcriber/internal/api/dto"
	"audio-transcriber/internal/api/server"
	"audio-transcriber/internal/api/services"
	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/api/simulated"
	"audio-transcriber/internal/app/testutil"
	"audio-transcriber/web"
)

func stubProxy(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestProxyBackend_SendsAudioPart(t *testing.T) {
	var gotPath, gotType, gotName string
	var gotData []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		part, header, err := r.FormFile(dto.AudioField)
		if err == nil {
			defer part.Close()
			gotData, _ = io.ReadAll(part)
			gotName = header.Filename
			gotType, _, _ = mime.ParseMediaType(header.Header.Get("Content-Type"))
		}
		io.WriteString(w, testutil.HelloWorldEnvelope)
	}))
	t.Cleanup(srv.Close)

	backend := NewProxyBackend(srv.URL + "/")
	transcript, err := backend.Transcribe(context.Background(), &provider.AudioFile{
		Name:        "hello.wav",
		ContentType: "audio/wav",
		Data:        testutil.WAVHeader,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello world", transcript)
	assert.Equal(t, TranscribePath, gotPath)
	assert.Equal(t, "hello.wav", gotName)
	assert.Equal(t, "audio/wav", gotType)
	assert.Equal(t, testutil.WAVHeader, gotData)
}

func TestProxyBackend_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error envelope", http.StatusInternalServerError, `{"error":"Deepgram API error: 401"}`, "Deepgram API error: 401"},
		{"bad request envelope", http.StatusBadRequest, `{"error":"No audio file provided"}`, "No audio file provided"},
		{"non-json error body", http.StatusBadGateway, "<html>bad gateway</html>", "Transcription failed"},
		{"envelope without error", http.StatusInternalServerError, `{"message":"nope"}`, "Transcription failed"},
		{"success without transcript", http.StatusOK, `{"results":{"channels":[]}}`, "Invalid response format"},
		{"success with empty transcript", http.StatusOK, `{"results":{"channels":[{"alternatives":[{"transcript":""}]}]}}`, "Invalid response format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := stubProxy(t, tt.status, tt.body)

			_, err := NewProxyBackend(srv.URL).Transcribe(context.Background(), wavFile())

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, int32(1), atomic.LoadInt32(calls))
		})
	}
}

func TestProxyBackend_UnparseableSuccessBody(t *testing.T) {
	srv, calls := stubProxy(t, http.StatusOK, "ok")

	_, err := NewProxyBackend(srv.URL).Transcribe(context.Background(), wavFile())

	require.Error(t, err)
	assert.NotEqual(t, provider.ErrInvalidResponse.Error(), err.Error())
	assert.Contains(t, err.Error(), "invalid character")
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestProxyBackend_SessionAgainstSimulatedServer(t *testing.T) {
	registry := prometheus.NewRegistry()
	svc := services.NewTranscriptionService(
		simulated.NewSimulatedProvider(0),
		provider.NewProviderMetrics(registry),
		zap.NewNop(),
	)
	s := server.NewServer(server.Config{Environment: "test"}, svc, web.Static(), registry, zap.NewNop())
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	session := NewSession(NewProxyBackend(srv.URL), zap.NewNop())
	require.NoError(t, session.SelectFile(wavFile()))
	require.NoError(t, session.Transcribe(context.Background()))

	assert.Equal(t, simulated.Transcript("hello.wav"), session.Transcript())
	assert.Equal(t, StateTranscribed, session.State())
}
