package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "audio-transcriber/internal/api/errors"
)

// ErrorHandler recovers from panics and answers with the error envelope
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Unknown panic occurred",
			zap.Any("recovered", recovered),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)

		c.AbortWithStatusJSON(http.StatusInternalServerError, apierrors.ErrorEnvelope{Error: apierrors.MsgInternal})
	})
}

// HandleError writes err as the error envelope. APIErrors keep their status;
// anything else is reported as a 500 carrying the error's message.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	c.Error(err)

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr.Envelope())
		return
	}

	message := err.Error()
	if message == "" {
		message = apierrors.MsgInternal
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, apierrors.ErrorEnvelope{Error: message})
}
