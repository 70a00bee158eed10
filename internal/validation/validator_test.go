package validation

import (
	"strings"
	"testing"

	"github.com/viralchemist-api/internal/models"
)

func fieldNames(errs Errors) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.PostRequest
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid request",
			req:        &models.PostRequest{Topic: "remote work", Goal: "engagement", Tone: "casual"},
			wantErrors: 0,
		},
		{
			name:       "missing topic",
			req:        &models.PostRequest{Goal: "engagement", Tone: "casual"},
			wantErrors: 1,
			wantFields: []string{"topic"},
		},
		{
			name:       "whitespace-only fields count as missing",
			req:        &models.PostRequest{Topic: "  ", Goal: "engagement", Tone: "casual"},
			wantErrors: 1,
			wantFields: []string{"topic"},
		},
		{
			name:       "all fields missing",
			req:        &models.PostRequest{},
			wantErrors: 3,
			wantFields: []string{"topic", "goal", "tone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePost(tt.req)
			if len(errs) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
			for _, field := range tt.wantFields {
				found := false
				for _, got := range fieldNames(errs) {
					if got == field {
						found = true
					}
				}
				if !found {
					t.Errorf("Expected error for field %q, got %v", field, fieldNames(errs))
				}
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.CommentRequest
		wantErrors int
		wantFields []string
	}{
		{
			name:       "text only",
			req:        &models.CommentRequest{PostText: "a post", Goal: "support", Tone: "warm"},
			wantErrors: 0,
		},
		{
			name:       "image only",
			req:        &models.CommentRequest{Image: []byte{0x89}, Goal: "support", Tone: "warm"},
			wantErrors: 0,
		},
		{
			name:       "neither text nor image",
			req:        &models.CommentRequest{Goal: "support", Tone: "warm"},
			wantErrors: 1,
			wantFields: []string{"post_text"},
		},
		{
			name:       "text present but goal and tone missing",
			req:        &models.CommentRequest{PostText: "a post"},
			wantErrors: 2,
			wantFields: []string{"goal", "tone"},
		},
		{
			name:       "both conditions fail independently",
			req:        &models.CommentRequest{},
			wantErrors: 3,
			wantFields: []string{"post_text", "goal", "tone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateComment(tt.req)
			if len(errs) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
			for _, field := range tt.wantFields {
				found := false
				for _, got := range fieldNames(errs) {
					if got == field {
						found = true
					}
				}
				if !found {
					t.Errorf("Expected error for field %q, got %v", field, fieldNames(errs))
				}
			}
		})
	}
}

func TestValidatePublish(t *testing.T) {
	valid := &models.PublishRequest{
		Title:       "Hello",
		Content:     "<p>body</p>",
		SeoAnalysis: &models.SeoAnalysis{Score: 80, Analysis: []models.AnalysisPoint{{Kind: "Good", Note: "fine"}}},
	}
	if errs := ValidatePublish(valid); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	missing := &models.PublishRequest{Title: "Hello"}
	errs := ValidatePublish(missing)
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d: %v", len(errs), errs)
	}
	got := fieldNames(errs)
	if got[0] != "content" || got[1] != "seoAnalysis" {
		t.Errorf("Expected content and seoAnalysis errors, got %v", got)
	}
}

func TestValidateRewriteGoalOptional(t *testing.T) {
	if errs := ValidateRewrite(&models.RewriteRequest{Text: "some text"}); len(errs) != 0 {
		t.Errorf("Expected goal to be optional, got %v", errs)
	}
	if errs := ValidateRewrite(&models.RewriteRequest{}); len(errs) != 1 {
		t.Errorf("Expected text to be required, got %v", errs)
	}
}

func TestErrorsMessageNamesFields(t *testing.T) {
	errs := ValidatePost(&models.PostRequest{Tone: "casual"})
	msg := errs.Error()
	if !strings.Contains(msg, "topic") || !strings.Contains(msg, "goal") {
		t.Errorf("Expected message to name missing fields, got %q", msg)
	}
}
