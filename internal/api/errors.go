package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/viralchemist-api/internal/llm"
	"github.com/viralchemist-api/internal/ocr"
	"github.com/viralchemist-api/internal/repository"
	"github.com/viralchemist-api/internal/service"
	"github.com/viralchemist-api/internal/validation"
)

// writeError maps a service failure to an HTTP status and JSON body.
// Bodies always carry an "error" field and, where an upstream message is
// available, a "details" field. Stack traces never leak to clients.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  verrs.Error(),
			"fields": verrs,
		})
		return
	}

	var uerr *llm.UpstreamError
	if errors.As(err, &uerr) {
		log.Error().Err(err).Msg("Upstream generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate content from the AI provider.",
			"details": uerr.Message,
		})
		return
	}

	if errors.Is(err, llm.ErrEmptyResponse) {
		log.Error().Err(err).Msg("Upstream returned empty response")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "The AI provider returned an empty response.",
		})
		return
	}

	var oerr *ocr.Error
	if errors.As(err, &oerr) {
		log.Error().Err(err).Msg("OCR failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process the uploaded image for text extraction (OCR).",
			"details": oerr.Message,
		})
		return
	}

	var perr *service.ParseError
	if errors.As(err, &perr) {
		log.Error().Err(err).Msg("Structured output parse failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "The AI provider did not return the expected structured output.",
		})
		return
	}

	var serr *repository.StorageError
	if errors.As(err, &serr) {
		log.Error().Err(err).Msg("Article store failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to access the article store.",
		})
		return
	}

	log.Error().Err(err).Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
