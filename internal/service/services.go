package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/viralchemist-api/internal/config"
	"github.com/viralchemist-api/internal/llm"
	"github.com/viralchemist-api/internal/models"
	"github.com/viralchemist-api/internal/ocr"
	"github.com/viralchemist-api/internal/prompts"
	"github.com/viralchemist-api/internal/repository"
)

// GeneratorService defines the interface for single-shot generation
// capabilities
type GeneratorService interface {
	GeneratePost(ctx context.Context, req *models.PostRequest) (string, error)
	GenerateComment(ctx context.Context, req *models.CommentRequest) (string, error)
	GenerateHashtags(ctx context.Context, req *models.HashtagsRequest) (*models.HashtagSet, error)
	Rewrite(ctx context.Context, req *models.RewriteRequest) (string, error)
}

// BlogService defines the interface for blog operations
type BlogService interface {
	Generate(ctx context.Context, req *models.BlogGenerateRequest) (*models.BlogGeneration, error)
	Publish(ctx context.Context, req *models.PublishRequest) (*models.Article, error)
	List(ctx context.Context) ([]models.Article, error)
}

// Services holds all service interfaces
type Services struct {
	Generator GeneratorService
	Blog      BlogService
}

// NewServices creates all services
func NewServices(client llm.Client, extractor ocr.Extractor, articles repository.ArticleRepository, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Generator: newGeneratorService(client, extractor, cfg, log),
		Blog:      newBlogService(client, articles, cfg, log),
	}
}

// ParseError indicates the model did not return parseable JSON where the
// capability requires structured output
type ParseError struct {
	Capability models.Capability
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s output was not valid JSON: %v", e.Capability, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// decodeStructured parses raw model output for a capability whose
// registry entry requires machine-parseable JSON
func decodeStructured(capability models.Capability, raw string, v any) error {
	if !prompts.Structured(capability) {
		return fmt.Errorf("capability %s does not produce structured output", capability)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &ParseError{Capability: capability, Err: err}
	}
	return nil
}
