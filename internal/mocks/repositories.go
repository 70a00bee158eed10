package mocks

import (
	"context"

	"github.com/viralchemist-api/internal/models"
	"github.com/viralchemist-api/internal/repository"
)

// MockArticleRepository is an in-memory mock of repository.ArticleRepository
type MockArticleRepository struct {
	ListFunc    func(ctx context.Context) ([]models.Article, error)
	PrependFunc func(ctx context.Context, article *models.Article) error
	Articles    []models.Article
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make([]models.Article, 0)}
}

func (m *MockArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	out := make([]models.Article, len(m.Articles))
	copy(out, m.Articles)
	return out, nil
}

func (m *MockArticleRepository) Prepend(ctx context.Context, article *models.Article) error {
	if m.PrependFunc != nil {
		return m.PrependFunc(ctx, article)
	}
	var max int64
	for _, a := range m.Articles {
		if a.ID > max {
			max = a.ID
		}
	}
	article.ID = max + 1
	m.Articles = append([]models.Article{*article}, m.Articles...)
	return nil
}
