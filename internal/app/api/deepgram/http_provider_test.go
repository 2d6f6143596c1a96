package deepgram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-transcriber/internal/app/api/provider"
)

const upstreamBody = `{"metadata":{"request_id":"abc"},"results":{"channels":[{"alternatives":[{"transcript":"hello world","confidence":0.99}]}]}}`

type capturedRequest struct {
	method        string
	path          string
	query         string
	authorization string
	contentType   string
	body          []byte
}

// Mock Deepgram listen endpoint
func createMockDeepgramServer(t *testing.T, status int, body string, captured *capturedRequest, calls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		*captured = capturedRequest{
			method:        r.Method,
			path:          r.URL.Path,
			query:         r.URL.RawQuery,
			authorization: r.Header.Get("Authorization"),
			contentType:   r.Header.Get("Content-Type"),
			body:          data,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func testAudio() *provider.AudioFile {
	return &provider.AudioFile{
		Name:        "clip.wav",
		ContentType: "audio/wav",
		Data:        []byte("RIFF\x24\x00\x00\x00WAVEfmt "),
	}
}

func TestDeepgramProvider_Transcribe_Success(t *testing.T) {
	var captured capturedRequest
	var calls int32
	server := createMockDeepgramServer(t, http.StatusOK, upstreamBody, &captured, &calls)
	defer server.Close()

	p := NewDeepgramProvider(DeepgramConfig{APIKey: "secret-key", BaseURL: server.URL, SmartFormat: true})
	result, err := p.Transcribe(context.Background(), testAudio())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/v1/listen", captured.path)
	assert.Equal(t, "model=nova-2&smart_format=true", captured.query)
	assert.Equal(t, "Token secret-key", captured.authorization)
	assert.Equal(t, "audio/wav", captured.contentType)
	assert.Equal(t, testAudio().Data, captured.body)

	assert.JSONEq(t, upstreamBody, string(result.Raw))
	transcript, err := result.Transcript()
	require.NoError(t, err)
	assert.Equal(t, "hello world", transcript)
}

func TestDeepgramProvider_Transcribe_UpstreamError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusBadRequest, http.StatusInternalServerError} {
		var captured capturedRequest
		var calls int32
		server := createMockDeepgramServer(t, status, `{"err_code":"INVALID_AUTH","err_msg":"Invalid credentials."}`, &captured, &calls)

		p := NewDeepgramProvider(DeepgramConfig{APIKey: "bad", BaseURL: server.URL, SmartFormat: true})
		_, err := p.Transcribe(context.Background(), testAudio())
		server.Close()

		var tErr *provider.TranscriptionError
		require.True(t, errors.As(err, &tErr))
		assert.Equal(t, "api_error", tErr.Code)
		assert.Equal(t, status, tErr.StatusCode)
		assert.Equal(t, fmt.Sprintf("Deepgram API error: %d", status), tErr.Message)
		assert.NotContains(t, tErr.Message, "Invalid credentials")
	}
}

func TestDeepgramProvider_Transcribe_InvalidJSON(t *testing.T) {
	var captured capturedRequest
	var calls int32
	server := createMockDeepgramServer(t, http.StatusOK, "not json", &captured, &calls)
	defer server.Close()

	p := NewDeepgramProvider(DeepgramConfig{APIKey: "k", BaseURL: server.URL})
	_, err := p.Transcribe(context.Background(), testAudio())

	var tErr *provider.TranscriptionError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, "response_parse_failed", tErr.Code)
}

func TestDeepgramProvider_Transcribe_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p := NewDeepgramProvider(DeepgramConfig{APIKey: "k", BaseURL: url})
	_, err := p.Transcribe(context.Background(), testAudio())

	var tErr *provider.TranscriptionError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, "request_failed", tErr.Code)
}

func TestDeepgramProvider_ValidateConfiguration(t *testing.T) {
	assert.Error(t, NewDeepgramProvider(DeepgramConfig{}).ValidateConfiguration())
	assert.Error(t, NewDeepgramProvider(DeepgramConfig{APIKey: "k", BaseURL: "ftp://x"}).ValidateConfiguration())
	assert.NoError(t, NewDeepgramProvider(DeepgramConfig{APIKey: "k"}).ValidateConfiguration())
}

func TestDeepgramProvider_Registered(t *testing.T) {
	p, err := provider.NewProvider(ProviderName, provider.Settings{APIKey: "k", SmartFormat: true})
	require.NoError(t, err)

	info := p.GetProviderInfo()
	assert.Equal(t, ProviderName, info.Name)
	assert.Equal(t, DefaultModel, info.DefaultModel)
	assert.True(t, info.RequiresAPIKey)

	_, err = provider.NewProvider(ProviderName, provider.Settings{})
	assert.Error(t, err)
}
