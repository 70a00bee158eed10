package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/viralchemist-api/internal/models"
)

// articleFileRepo persists articles to a single JSON document holding an
// array of articles, newest first. Reads and writes go through a full
// read-modify-write cycle; a process-local mutex serializes writers.
// Concurrent publishes from separate processes are not isolated - a known
// limitation of the flat-file store.
type articleFileRepo struct {
	mu   sync.Mutex
	path string
}

// Verify interface compliance
var _ ArticleRepository = (*articleFileRepo)(nil)

// NewArticleRepo creates a JSON-file-backed article repository
func NewArticleRepo(path string) ArticleRepository {
	return &articleFileRepo{path: path}
}

// List returns all stored articles, newest first
func (r *articleFileRepo) List(_ context.Context) ([]models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

// Prepend stores the article as the newest entry with a strictly
// increasing time-derived id
func (r *articleFileRepo) Prepend(_ context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles, err := r.readAll()
	if err != nil {
		return err
	}

	article.ID = nextID(articles)

	updated := make([]models.Article, 0, len(articles)+1)
	updated = append(updated, *article)
	updated = append(updated, articles...)

	return r.writeAll(updated)
}

// nextID derives a millisecond-timestamp id, clamped so ids stay strictly
// increasing even when two publishes land within the same millisecond
func nextID(articles []models.Article) int64 {
	id := time.Now().UnixMilli()
	var max int64
	for _, a := range articles {
		if a.ID > max {
			max = a.ID
		}
	}
	if id <= max {
		id = max + 1
	}
	return id
}

func (r *articleFileRepo) readAll() ([]models.Article, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Article{}, nil
		}
		return nil, &StorageError{Op: "read", Err: err}
	}
	if len(data) == 0 {
		return []models.Article{}, nil
	}

	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, &StorageError{Op: "decode", Err: err}
	}
	return articles, nil
}

func (r *articleFileRepo) writeAll(articles []models.Article) error {
	if dir := filepath.Dir(r.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &StorageError{Op: "write", Err: err}
		}
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}
