package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/blog-platform-api/internal/comments"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service errors to HTTP responses. Nothing here is
// fatal: every failure degrades to a localized error body.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	if vf, ok := service.AsValidationFailure(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": vf.Errors,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, comments.ErrParentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, comments.ErrBlankContent):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "comment content is required"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, session.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Caller went away mid-request; nothing to render.
		c.Status(http.StatusRequestTimeout)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
