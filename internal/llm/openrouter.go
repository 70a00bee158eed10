package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/viralchemist-api/internal/config"
)

// OpenRouter implements Client against an OpenAI-compatible
// chat-completion endpoint
type OpenRouter struct {
	client *openai.Client
	log    zerolog.Logger
}

// Verify interface compliance
var _ Client = (*OpenRouter)(nil)

// NewOpenRouter creates a client from the injected provider configuration.
// No package-level state: the credential and base URL live here only.
func NewOpenRouter(cfg config.LLMConfig, log zerolog.Logger) *OpenRouter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenRouter{
		client: openai.NewClientWithConfig(clientCfg),
		log:    log.With().Str("component", "llm").Logger(),
	}
}

// Generate performs one outbound chat-completion call. There is no retry:
// a transient failure surfaces immediately to the caller.
func (o *OpenRouter) Generate(ctx context.Context, req Request) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.System},
	}
	messages = append(messages, userMessage(req.Parts))

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	duration := time.Since(start)

	if err != nil {
		o.log.Error().Err(err).Str("model", req.Model).Dur("duration", duration).Msg("Chat completion failed")
		return "", &UpstreamError{Message: "chat completion request failed", Err: err}
	}
	if len(resp.Choices) == 0 {
		o.log.Error().Str("model", req.Model).Dur("duration", duration).Msg("Chat completion returned no choices")
		return "", ErrEmptyResponse
	}

	o.log.Debug().Str("model", req.Model).Dur("duration", duration).Msg("Chat completion succeeded")
	return resp.Choices[0].Message.Content, nil
}

// userMessage assembles the user turn. Text-only requests use the plain
// string form; requests with an image use multi-part content with the
// image inlined as a data URI.
func userMessage(parts []Part) openai.ChatCompletionMessage {
	hasImage := false
	for _, p := range parts {
		if len(p.Image) > 0 {
			hasImage = true
			break
		}
	}

	if !hasImage {
		text := ""
		for _, p := range parts {
			text += p.Text
		}
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text}
	}

	multi := make([]openai.ChatMessagePart, 0, len(parts))
	for _, p := range parts {
		if len(p.Image) > 0 {
			uri := fmt.Sprintf("data:%s;base64,%s", p.ImageMIME, base64.StdEncoding.EncodeToString(p.Image))
			multi = append(multi, openai.ChatMessagePart{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: uri, Detail: openai.ImageURLDetailAuto},
			})
			continue
		}
		multi = append(multi, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: p.Text,
		})
	}
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, MultiContent: multi}
}
