package prompts

import (
	"strings"
	"testing"

	"github.com/viralchemist-api/internal/models"
)

func TestRendersAreDeterministic(t *testing.T) {
	req := &models.PostRequest{Topic: "ai", Goal: "reach", Tone: "bold"}
	a := Post(req)
	b := Post(req)
	if a != b {
		t.Error("Expected identical prompts for identical inputs")
	}
}

func TestPostPromptIncludesInputs(t *testing.T) {
	p := Post(&models.PostRequest{Topic: "remote work", Goal: "engagement", Tone: "casual"})
	for _, want := range []string{"remote work", "engagement", "casual"} {
		if !strings.Contains(p.User, want) {
			t.Errorf("Expected user prompt to contain %q", want)
		}
	}
	if p.System == "" || p.Model == "" {
		t.Error("Expected system prompt and model to be set")
	}
}

func TestStructuredFlags(t *testing.T) {
	tests := []struct {
		capability models.Capability
		structured bool
	}{
		{models.CapabilityPost, false},
		{models.CapabilityComment, false},
		{models.CapabilityHashtags, true},
		{models.CapabilityBlog, false},
		{models.CapabilitySeoAnalysis, true},
		{models.CapabilityRewrite, false},
	}
	for _, tt := range tests {
		if got := Structured(tt.capability); got != tt.structured {
			t.Errorf("Structured(%s): expected %v, got %v", tt.capability, tt.structured, got)
		}
	}
}

func TestStructuredPromptsDemandJSON(t *testing.T) {
	if !strings.Contains(Hashtags(&models.HashtagsRequest{Topic: "ai"}).System, "JSON") {
		t.Error("Expected hashtag system prompt to demand JSON output")
	}
	if !strings.Contains(SeoAnalysis("<h1>x</h1>").System, "JSON") {
		t.Error("Expected analysis system prompt to demand JSON output")
	}
}

func TestTemperaturesDifferPerCapability(t *testing.T) {
	if Hashtags(&models.HashtagsRequest{Topic: "x"}).Temperature >= Post(&models.PostRequest{}).Temperature {
		t.Error("Expected hashtag generation to run cooler than post generation")
	}
}
