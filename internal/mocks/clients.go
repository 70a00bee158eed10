package mocks

import (
	"context"

	"github.com/viralchemist-api/internal/llm"
	"github.com/viralchemist-api/internal/ocr"
)

// MockLLM is a mock implementation of llm.Client
type MockLLM struct {
	GenerateFunc func(ctx context.Context, req llm.Request) (string, error)
	Requests     []llm.Request
}

// Verify interface compliance
var _ llm.Client = (*MockLLM)(nil)

func NewMockLLM() *MockLLM {
	return &MockLLM{Requests: make([]llm.Request, 0)}
}

func (m *MockLLM) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return "generated text", nil
}

// MockExtractor is a mock implementation of ocr.Extractor
type MockExtractor struct {
	ExtractFunc func(ctx context.Context, image []byte, language string) (string, error)
	Calls       int
}

// Verify interface compliance
var _ ocr.Extractor = (*MockExtractor)(nil)

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

func (m *MockExtractor) ExtractText(ctx context.Context, image []byte, language string) (string, error) {
	m.Calls++
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, image, language)
	}
	return "extracted text", nil
}
