package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Every error body
// has the shape {"error": "<message>"}.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the log, not on the wire
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		message = "Internal server error"
	}

	c.JSON(status, dto.NewErrorResponse(message))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrFileMissing),
		errors.Is(err, apperrors.ErrFileEmpty),
		errors.Is(err, apperrors.ErrInvalidFileType),
		errors.Is(err, apperrors.ErrSelfConversation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrNotParticipant),
		errors.Is(err, apperrors.ErrOwnMessage):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
