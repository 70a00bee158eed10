package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/viralchemist-api/internal/config"
	"github.com/viralchemist-api/internal/models"
	"github.com/viralchemist-api/internal/service"
	"github.com/viralchemist-api/internal/validation"
)

// BlogHandler handles blog generation, publishing and listing
type BlogHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// Generate handles POST /blog/generate. Runs two generation calls, so it
// gets double the single-call timeout.
func (h *BlogHandler) Generate(c *gin.Context) {
	var req models.BlogGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.ValidateBlogGenerate(&req).OrNil(); err != nil {
		writeError(c, h.log, err)
		return
	}

	ctx, cancel := contextWithTimeout(c, 2*h.cfg.LLM.Timeout)
	defer cancel()

	generation, err := h.services.Blog.Generate(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Article generated successfully.",
		"post":        generation.Post,
		"seoAnalysis": generation.SeoAnalysis,
	})
}

// Publish handles POST /blog/publish
func (h *BlogHandler) Publish(c *gin.Context) {
	var req models.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.ValidatePublish(&req).OrNil(); err != nil {
		writeError(c, h.log, err)
		return
	}

	ctx, cancel := contextWithTimeout(c, 10*time.Second)
	defer cancel()

	article, err := h.services.Blog.Publish(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article published successfully.",
		"article": article,
	})
}

// List handles GET /blog
func (h *BlogHandler) List(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, 10*time.Second)
	defer cancel()

	articles, err := h.services.Blog.List(ctx)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": articles,
	})
}
