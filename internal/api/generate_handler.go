package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/viralchemist-api/internal/config"
	"github.com/viralchemist-api/internal/models"
	"github.com/viralchemist-api/internal/service"
	"github.com/viralchemist-api/internal/validation"
)

// GenerateHandler handles the single-shot generation endpoints
type GenerateHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *GenerateHandler {
	return &GenerateHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "generate").Logger(),
	}
}

// PostAlchemy handles POST /post-alchemy
func (h *GenerateHandler) PostAlchemy(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.ValidatePost(&req).OrNil(); err != nil {
		writeError(c, h.log, err)
		return
	}

	ctx, cancel := contextWithTimeout(c, h.cfg.LLM.Timeout)
	defer cancel()

	post, err := h.services.Generator.GeneratePost(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post generated successfully.",
		"post":    post,
	})
}

// CommentAlchemy handles POST /comment-alchemy (multipart form, optional
// image). The staged upload is removed on every exit path.
func (h *GenerateHandler) CommentAlchemy(c *gin.Context) {
	req := models.CommentRequest{
		PostText: c.PostForm("post_text"),
		Goal:     c.PostForm("goal"),
		Tone:     c.PostForm("tone"),
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		if file.Size > h.cfg.Upload.MaxSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
			return
		}

		if err := os.MkdirAll(h.cfg.Upload.Dir, 0755); err != nil {
			h.log.Error().Err(err).Msg("Failed to create upload directory")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded image"})
			return
		}

		imagePath := filepath.Join(h.cfg.Upload.Dir, uuid.New().String()[:8]+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, imagePath); err != nil {
			h.log.Error().Err(err).Msg("Failed to save uploaded image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded image"})
			return
		}
		defer os.Remove(imagePath)

		data, err := os.ReadFile(imagePath)
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to read uploaded image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded image"})
			return
		}
		req.Image = data
		req.ImageMIME = file.Header.Get("Content-Type")
		if req.ImageMIME == "" {
			req.ImageMIME = "image/png"
		}
	}

	if err := validation.ValidateComment(&req).OrNil(); err != nil {
		writeError(c, h.log, err)
		return
	}

	ctx, cancel := contextWithTimeout(c, h.cfg.LLM.Timeout)
	defer cancel()

	comment, err := h.services.Generator.GenerateComment(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment generated successfully.",
		"comment": comment,
	})
}

// HashtagsGenerate handles POST /hashtags-generate
func (h *GenerateHandler) HashtagsGenerate(c *gin.Context) {
	var req models.HashtagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.ValidateHashtags(&req).OrNil(); err != nil {
		writeError(c, h.log, err)
		return
	}

	ctx, cancel := contextWithTimeout(c, h.cfg.LLM.Timeout)
	defer cancel()

	hashtags, err := h.services.Generator.GenerateHashtags(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Hashtags generated successfully.",
		"hashtags": hashtags,
	})
}

// Rewrite handles POST /rewrite
func (h *GenerateHandler) Rewrite(c *gin.Context) {
	var req models.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.ValidateRewrite(&req).OrNil(); err != nil {
		writeError(c, h.log, err)
		return
	}

	ctx, cancel := contextWithTimeout(c, h.cfg.LLM.Timeout)
	defer cancel()

	rewritten, err := h.services.Generator.Rewrite(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Text rewritten successfully.",
		"rewrittenText": rewritten,
	})
}
