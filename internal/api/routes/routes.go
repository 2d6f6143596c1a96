package routes

import (
	"github.com/gin-gonic/gin"

	"audio-transcriber/internal/api/handlers"
	"audio-transcriber/internal/api/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
}

// RegisterRoutes registers the /api routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)

	router.POST("/transcribe", transcriptionHandler.Transcribe)
	router.GET("/providers", transcriptionHandler.Provider)
}
