package dto

import (
	"mime/multipart"

	apierrors "audio-transcriber/internal/api/errors"
)

// AudioField is the multipart field carrying the uploaded audio
const AudioField = "audio"

// TranscribeForm is the multipart payload of POST /api/transcribe
type TranscribeForm struct {
	Audio *multipart.FileHeader `form:"audio" binding:"required"`
}

// FieldMessage reports every binding failure as a missing audio part
func (f *TranscribeForm) FieldMessage(field, tag string) string {
	return apierrors.MsgNoAudioFile
}

// ProviderResponse describes the active transcription backend
type ProviderResponse struct {
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	Type           string `json:"type"`
	DefaultModel   string `json:"default_model,omitempty"`
	RequiresAPIKey bool   `json:"requires_api_key"`
}
