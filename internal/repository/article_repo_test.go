package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/viralchemist-api/internal/models"
)

func testRepo(t *testing.T) ArticleRepository {
	t.Helper()
	return NewArticleRepo(filepath.Join(t.TempDir(), "articles.json"))
}

func TestListEmptyStore(t *testing.T) {
	repo := testRepo(t)

	articles, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("Expected empty list, got %d articles", len(articles))
	}
}

func TestPrependOrdersNewestFirst(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	first := &models.Article{Title: "First", Slug: "first"}
	second := &models.Article{Title: "Second", Slug: "second"}

	if err := repo.Prepend(ctx, first); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}
	if err := repo.Prepend(ctx, second); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}

	articles, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "Second" {
		t.Errorf("Expected newest article first, got %q", articles[0].Title)
	}
	if articles[1].Title != "First" {
		t.Errorf("Expected oldest article last, got %q", articles[1].Title)
	}
}

func TestPrependAssignsStrictlyIncreasingIDs(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		a := &models.Article{Title: "Article"}
		if err := repo.Prepend(ctx, a); err != nil {
			t.Fatalf("Prepend failed: %v", err)
		}
		if a.ID <= prev {
			t.Errorf("Expected id > %d, got %d", prev, a.ID)
		}
		prev = a.ID
	}
}

func TestListIsIdempotent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.Prepend(ctx, &models.Article{Title: "Only"}); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results from consecutive List calls")
	}
}

func TestListCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	repo := NewArticleRepo(path)

	_, err := repo.List(context.Background())
	if err == nil {
		t.Fatal("Expected error for corrupt store")
	}
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Errorf("Expected StorageError, got %T", err)
	}
}

func TestPrependPersistsAllFields(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	article := &models.Article{
		Title:   "Hello, World!",
		Content: "<p>content</p>",
		Excerpt: "content",
		Slug:    "hello-world",
		SeoAnalysis: &models.SeoAnalysis{
			Score:    85,
			Analysis: []models.AnalysisPoint{{Kind: "Good", Note: "keyword in title"}},
		},
		Date:   "2026-09-01",
		Author: models.DefaultAuthor,
	}
	if err := repo.Prepend(ctx, article); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}

	articles, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	got := articles[0]
	if got.Slug != "hello-world" || got.Author != models.DefaultAuthor {
		t.Errorf("Stored article lost fields: %+v", got)
	}
	if got.SeoAnalysis == nil || got.SeoAnalysis.Score != 85 {
		t.Errorf("Stored article lost seo analysis: %+v", got.SeoAnalysis)
	}
}
