package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"audio-transcriber/internal/api/dto"
	apierrors "audio-transcriber/internal/api/errors"
	"audio-transcriber/internal/app/api/provider"
)

// TranscribePath is the proxy route accepting uploads
const TranscribePath = "/api/transcribe"

// ProxyBackend uploads audio to a transcription proxy over HTTP
type ProxyBackend struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewProxyBackend creates a backend talking to the proxy at baseURL. No
// timeout is set beyond the transport's defaults.
func NewProxyBackend(baseURL string) *ProxyBackend {
	return &ProxyBackend{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Transcribe implements Backend. It issues exactly one request.
func (b *ProxyBackend) Transcribe(ctx context.Context, file *provider.AudioFile) (string, error) {
	body, contentType, err := createMultipartForm(file)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+TranscribePath, body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := b.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s", apierrors.DecodeEnvelope(responseData, apierrors.MsgTranscriptionFailed))
	}

	// A body that does not parse reports the decoder's message; a parsed body
	// without a transcript is an invalid response.
	var decoded interface{}
	if err := json.Unmarshal(responseData, &decoded); err != nil {
		return "", err
	}
	return provider.ExtractTranscript(responseData)
}

// createMultipartForm builds the upload body with the file under the audio field
func createMultipartForm(file *provider.AudioFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, dto.AudioField, escapeQuotes(file.Name)))
	header.Set("Content-Type", file.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
