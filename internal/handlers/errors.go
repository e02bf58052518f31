package handlers

import (
	"time"

	"supportpulse-be/internal/models"

	"github.com/gin-gonic/gin"
)

// Stable error tags carried in every JSON error envelope.
const (
	ErrTagValidation = "validation_error"
	ErrTagNotFound   = "not_found"
	ErrTagGeneration = "generation_error"
)

func respondError(c *gin.Context, status int, tag, message string) {
	c.JSON(status, models.ErrorResponse{
		Success:   false,
		Error:     tag,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request.URL.Path,
	})
}
