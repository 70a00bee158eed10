// Package prompts maps each generation capability to its fixed system
// instruction and a renderer for the user turn. The registry is pure:
// the same inputs always render the same prompt text.
package prompts

import (
	"fmt"
	"strings"

	"github.com/viralchemist-api/internal/models"
)

// DefaultModel is the free OpenRouter model used unless configuration
// overrides it
const DefaultModel = "mistralai/mistral-7b-instruct:free"

// Prompt is a fully rendered pair of messages plus call parameters
type Prompt struct {
	System      string
	User        string
	Model       string
	Temperature float32
}

// definition is the per-capability entry of the registry
type definition struct {
	system      string
	model       string
	temperature float32
	structured  bool
}

var registry = map[models.Capability]definition{
	models.CapabilityPost:        {system: postSystemPrompt, model: DefaultModel, temperature: 0.8},
	models.CapabilityComment:     {system: commentSystemPrompt, model: DefaultModel, temperature: 0.8},
	models.CapabilityHashtags:    {system: hashtagsSystemPrompt, model: DefaultModel, temperature: 0.5, structured: true},
	models.CapabilityBlog:        {system: blogSystemPrompt, model: DefaultModel, temperature: 0.7},
	models.CapabilitySeoAnalysis: {system: seoAnalysisSystemPrompt, model: DefaultModel, temperature: 0.3, structured: true},
	models.CapabilityRewrite:     {system: rewriteSystemPrompt, model: DefaultModel, temperature: 0.7},
}

// Structured reports whether the capability's output must parse as JSON
func Structured(c models.Capability) bool {
	return registry[c].structured
}

func render(c models.Capability, user string) Prompt {
	def := registry[c]
	return Prompt{
		System:      def.system,
		User:        user,
		Model:       def.model,
		Temperature: def.temperature,
	}
}

// Post renders the LinkedIn post generation prompt
func Post(req *models.PostRequest) Prompt {
	var sb strings.Builder
	sb.WriteString("Generate a LinkedIn post based on the following inputs:\n")
	fmt.Fprintf(&sb, "- Topic/Keyword: %s\n", req.Topic)
	fmt.Fprintf(&sb, "- Goal: %s\n", req.Goal)
	fmt.Fprintf(&sb, "- Tone: %s\n\n", req.Tone)
	sb.WriteString("The output must be ONLY the post content, following all the instructions in the system prompt. Do not include any introductory or concluding remarks.")
	return render(models.CapabilityPost, sb.String())
}

// Comment renders the comment generation prompt. content is the post being
// commented on, already merged with any OCR-extracted text.
func Comment(content, goal, tone string) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Input: %s\n\n", content)
	fmt.Fprintf(&sb, "Goal: %s\n", goal)
	fmt.Fprintf(&sb, "Tone: %s\n\n", tone)
	sb.WriteString("Output: The final, polished LinkedIn comment only.")
	return render(models.CapabilityComment, sb.String())
}

// Hashtags renders the hashtag generation prompt
func Hashtags(req *models.HashtagsRequest) Prompt {
	return render(models.CapabilityHashtags, "Input: "+req.Topic)
}

// Blog renders the blog article generation prompt
func Blog(req *models.BlogGenerateRequest) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Target keyword: %s\n\n", req.Keyword)
	sb.WriteString("Write the complete article now. Output only the article HTML.")
	return render(models.CapabilityBlog, sb.String())
}

// SeoAnalysis renders the analysis prompt for a just-generated article
func SeoAnalysis(post string) Prompt {
	var sb strings.Builder
	sb.WriteString("Analyze the following article:\n\n")
	sb.WriteString(post)
	return render(models.CapabilitySeoAnalysis, sb.String())
}

// Rewrite renders the text rewrite prompt
func Rewrite(req *models.RewriteRequest) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Text to rewrite:\n%s\n", req.Text)
	if req.Goal != "" {
		fmt.Fprintf(&sb, "\nRewrite goal: %s\n", req.Goal)
	}
	sb.WriteString("\nOutput only the rewritten text.")
	return render(models.CapabilityRewrite, sb.String())
}
