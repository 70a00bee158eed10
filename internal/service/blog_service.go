package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/viralchemist-api/internal/config"
	"github.com/viralchemist-api/internal/llm"
	"github.com/viralchemist-api/internal/models"
	"github.com/viralchemist-api/internal/prompts"
	"github.com/viralchemist-api/internal/repository"
)

// excerptLength is the number of characters of stripped content kept in
// an article excerpt
const excerptLength = 200

type blogService struct {
	client   llm.Client
	articles repository.ArticleRepository
	model    string
	log      zerolog.Logger
}

func newBlogService(client llm.Client, articles repository.ArticleRepository, cfg *config.Config, log zerolog.Logger) *blogService {
	return &blogService{
		client:   client,
		articles: articles,
		model:    cfg.LLM.Model,
		log:      log.With().Str("service", "blog").Logger(),
	}
}

func (s *blogService) generate(ctx context.Context, prompt prompts.Prompt) (string, error) {
	model := prompt.Model
	if s.model != "" {
		model = s.model
	}
	text, err := s.client.Generate(ctx, llm.Request{
		System:      prompt.System,
		Parts:       []llm.Part{llm.TextPart(prompt.User)},
		Model:       model,
		Temperature: prompt.Temperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Generate runs the two-step blog flow: generate the article, then feed it
// back through the SEO analysis prompt. A broken analysis step must not
// discard a successful article, so any parse failure substitutes the
// degraded default instead of failing the request.
func (s *blogService) Generate(ctx context.Context, req *models.BlogGenerateRequest) (*models.BlogGeneration, error) {
	s.log.Info().Str("keyword", req.Keyword).Msg("Generating blog article")

	post, err := s.generate(ctx, prompts.Blog(req))
	if err != nil {
		return nil, err
	}

	analysis := s.analyze(ctx, post)
	return &models.BlogGeneration{Post: post, SeoAnalysis: analysis}, nil
}

// analyze runs the SEO analysis call and parses its structured output,
// degrading on any failure
func (s *blogService) analyze(ctx context.Context, post string) *models.SeoAnalysis {
	raw, err := s.generate(ctx, prompts.SeoAnalysis(post))
	if err != nil {
		s.log.Warn().Err(err).Msg("SEO analysis call failed, using degraded analysis")
		return models.DegradedSeoAnalysis()
	}

	var analysis models.SeoAnalysis
	if err := decodeStructured(models.CapabilitySeoAnalysis, raw, &analysis); err != nil {
		s.log.Warn().Err(err).Msg("SEO analysis output was not valid JSON, using degraded analysis")
		return models.DegradedSeoAnalysis()
	}
	// A partial parse (valid JSON, unusable fields) degrades the same way.
	if !analysis.Valid() {
		s.log.Warn().Int("score", analysis.Score).Int("points", len(analysis.Analysis)).
			Msg("SEO analysis output incomplete, using degraded analysis")
		return models.DegradedSeoAnalysis()
	}
	return &analysis
}

// Publish derives the stored fields and prepends the article to the store
func (s *blogService) Publish(ctx context.Context, req *models.PublishRequest) (*models.Article, error) {
	article := &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     excerpt(req.Content),
		Slug:        slugify(req.Title),
		SeoAnalysis: req.SeoAnalysis,
		Date:        time.Now().Format("2006-01-02"),
		Author:      models.DefaultAuthor,
	}

	if err := s.articles.Prepend(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", article.ID).Str("slug", article.Slug).Msg("Article published")
	return article, nil
}

// List returns all published articles, newest first
func (s *blogService) List(ctx context.Context) ([]models.Article, error) {
	return s.articles.List(ctx)
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases the title, collapses non-alphanumeric runs to single
// hyphens and strips leading/trailing hyphens. Uniqueness is not enforced.
func slugify(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// excerpt strips HTML tags from the content, collapses whitespace and
// keeps the first 200 characters with an ellipsis suffix
func excerpt(content string) string {
	text := content
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	return string(runes[:excerptLength]) + "..."
}
