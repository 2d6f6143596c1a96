package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-transcriber/internal/api/dto"
	apierrors "audio-transcriber/internal/api/errors"
	"audio-transcriber/internal/api/middleware"
	"audio-transcriber/internal/api/services"
	"audio-transcriber/internal/app/api/provider"
)

// TranscriptionHandler handles transcription-related HTTP requests
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe forwards the uploaded "audio" part to the transcription backend and relays its JSON.
// @Summary Transcribe audio file
// @Description Upload one audio file; the transcription backend's JSON is returned unchanged
// @Tags Transcription
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Success 200 {object} object "Upstream transcription response"
// @Failure 400 {object} errors.ErrorEnvelope
// @Failure 500 {object} errors.ErrorEnvelope
// @Router /api/transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	if err := h.service.Ready(); err != nil {
		middleware.HandleError(c, err)
		return
	}

	var form dto.TranscribeForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, err := readAudioFile(form)
	if err != nil {
		middleware.HandleError(c, apierrors.NewInternalError(err.Error()))
		return
	}

	body, err := h.service.Transcribe(c.Request.Context(), file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// Provider describes the configured transcription backend
// @Summary Get provider
// @Description Describe the transcription backend this server forwards to
// @Tags Transcription
// @Produce json
// @Success 200 {object} dto.ProviderResponse
// @Router /api/providers [get]
func (h *TranscriptionHandler) Provider(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Provider())
}

func readAudioFile(form dto.TranscribeForm) (*provider.AudioFile, error) {
	part, err := form.Audio.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return &provider.AudioFile{
		Name:        form.Audio.Filename,
		ContentType: form.Audio.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
