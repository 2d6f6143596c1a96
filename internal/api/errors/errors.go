package errors

import (
	"encoding/json"
	"net/http"
)

// Fixed messages returned by the transcribe endpoint
const (
	MsgAPIKeyNotConfigured = "API key not configured"
	MsgNoAudioFile         = "No audio file provided"
	MsgInternal            = "Internal server error"
	MsgTranscriptionFailed = "Transcription failed"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindBadRequest    ErrorKind = "bad_request"
	KindConfiguration ErrorKind = "configuration"
	KindUpstream      ErrorKind = "upstream"
	KindInternal      ErrorKind = "internal"
)

// ErrorEnvelope is the only error body that crosses the client/proxy boundary
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// APIError represents a structured API error
type APIError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Envelope returns the wire representation of the error
func (e *APIError) Envelope() ErrorEnvelope {
	return ErrorEnvelope{Error: e.Message}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message}
}

// NewConfigurationError creates an error for missing server-side configuration
func NewConfigurationError(message string) *APIError {
	return &APIError{Kind: KindConfiguration, Message: message}
}

// NewUpstreamError creates an error for a failed call to the transcription API
func NewUpstreamError(message string) *APIError {
	return &APIError{Kind: KindUpstream, Message: message}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}

// DecodeEnvelope reads the error message out of an error body. When the body is
// not a JSON object or carries no non-empty string "error" field, fallback is returned.
func DecodeEnvelope(body []byte, fallback string) string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return fallback
	}
	field, ok := raw["error"]
	if !ok {
		return fallback
	}
	var message string
	if err := json.Unmarshal(field, &message); err != nil || message == "" {
		return fallback
	}
	return message
}
