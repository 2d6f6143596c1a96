package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "audio-transcriber/internal/api/errors"
)

// FieldMessenger lets a request type choose the message reported for a failed field
type FieldMessenger interface {
	FieldMessage(field, tag string) string
}

// ValidateForm binds form or multipart data into req and runs its validation tags.
// Every failure is reported as a bad request.
func ValidateForm(c *gin.Context, req interface{}) error {
	err := c.ShouldBind(req)
	if err == nil {
		return nil
	}

	messenger, _ := req.(FieldMessenger)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fieldError := validationErrs[0]
		field := strings.ToLower(fieldError.Field())
		if messenger != nil {
			if msg := messenger.FieldMessage(field, fieldError.Tag()); msg != "" {
				return apierrors.NewBadRequestError(msg)
			}
		}

		switch fieldError.Tag() {
		case "required":
			return apierrors.NewBadRequestError(field + " is required")
		default:
			return apierrors.NewBadRequestError(field + " is invalid")
		}
	}

	if messenger != nil {
		if msg := messenger.FieldMessage("", "bind"); msg != "" {
			return apierrors.NewBadRequestError(msg)
		}
	}
	return apierrors.NewBadRequestError("invalid form data")
}
