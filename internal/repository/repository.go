package repository

import (
	"context"
	"fmt"

	"github.com/viralchemist-api/internal/models"
)

// ArticleRepository defines the interface for article persistence.
// The store is append-only: no update or delete is exposed.
type ArticleRepository interface {
	// List returns all articles, newest first.
	List(ctx context.Context) ([]models.Article, error)

	// Prepend assigns the article a strictly increasing id and stores it
	// as the newest entry.
	Prepend(ctx context.Context, article *models.Article) error
}

// StorageError wraps a failure to read or write the backing store
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("article store %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
