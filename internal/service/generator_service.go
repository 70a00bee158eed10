package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/viralchemist-api/internal/config"
	"github.com/viralchemist-api/internal/llm"
	"github.com/viralchemist-api/internal/models"
	"github.com/viralchemist-api/internal/ocr"
	"github.com/viralchemist-api/internal/prompts"
	"github.com/viralchemist-api/internal/validation"
)

// extractedTextLabel separates user-supplied post text from OCR output in
// the merged comment input
const extractedTextLabel = "[Extracted Text from Image]:"

type generatorService struct {
	client      llm.Client
	extractor   ocr.Extractor
	model       string
	ocrLanguage string
	log         zerolog.Logger
}

func newGeneratorService(client llm.Client, extractor ocr.Extractor, cfg *config.Config, log zerolog.Logger) *generatorService {
	return &generatorService{
		client:      client,
		extractor:   extractor,
		model:       cfg.LLM.Model,
		ocrLanguage: cfg.OCR.Language,
		log:         log.With().Str("service", "generator").Logger(),
	}
}

// generate runs one chat-completion call for a rendered prompt and trims
// the surrounding whitespace from the result
func (s *generatorService) generate(ctx context.Context, prompt prompts.Prompt, extra ...llm.Part) (string, error) {
	model := prompt.Model
	if s.model != "" {
		model = s.model
	}
	parts := append([]llm.Part{llm.TextPart(prompt.User)}, extra...)

	text, err := s.client.Generate(ctx, llm.Request{
		System:      prompt.System,
		Parts:       parts,
		Model:       model,
		Temperature: prompt.Temperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GeneratePost generates a LinkedIn post
func (s *generatorService) GeneratePost(ctx context.Context, req *models.PostRequest) (string, error) {
	s.log.Info().Str("topic", req.Topic).Msg("Generating post")
	return s.generate(ctx, prompts.Post(req))
}

// GenerateComment generates a comment on a post. When an image is
// uploaded its text is extracted first and merged into the post content;
// an OCR failure fails the whole request.
func (s *generatorService) GenerateComment(ctx context.Context, req *models.CommentRequest) (string, error) {
	content := strings.TrimSpace(req.PostText)

	var extra []llm.Part
	if req.HasImage() {
		extracted, err := s.extractor.ExtractText(ctx, req.Image, s.ocrLanguage)
		if err != nil {
			return "", err
		}
		s.log.Info().Int("extracted_chars", len(extracted)).Msg("Merged OCR text into comment input")
		if extracted != "" {
			if content != "" {
				content += "\n\n"
			}
			content += extractedTextLabel + "\n" + extracted
		}
		extra = append(extra, llm.ImagePart(req.ImageMIME, req.Image))
	}

	// Image upload that yielded no readable text and no typed post text:
	// there is nothing to comment on.
	if content == "" {
		return "", validation.Errors{{
			Field:   "post_text",
			Message: "post_text or a readable image must be provided",
		}}
	}

	return s.generate(ctx, prompts.Comment(content, req.Goal, req.Tone), extra...)
}

// GenerateHashtags generates a structured hashtag set. Output that does
// not parse as JSON is a hard error.
func (s *generatorService) GenerateHashtags(ctx context.Context, req *models.HashtagsRequest) (*models.HashtagSet, error) {
	s.log.Info().Str("topic", req.Topic).Msg("Generating hashtags")

	raw, err := s.generate(ctx, prompts.Hashtags(req))
	if err != nil {
		return nil, err
	}

	var set models.HashtagSet
	if err := decodeStructured(models.CapabilityHashtags, raw, &set); err != nil {
		s.log.Error().Err(err).Msg("Hashtag output was not valid JSON")
		return nil, err
	}
	return &set, nil
}

// Rewrite rewrites the given text
func (s *generatorService) Rewrite(ctx context.Context, req *models.RewriteRequest) (string, error) {
	s.log.Info().Int("chars", len(req.Text)).Msg("Rewriting text")
	return s.generate(ctx, prompts.Rewrite(req))
}
