package llm

import (
	"context"
	"errors"
	"fmt"
)

// Part is one piece of user-turn content: plain text or an inline image.
// Image parts exist only for the image-bearing comment flow.
type Part struct {
	Text      string
	Image     []byte
	ImageMIME string
}

// TextPart builds a plain text content part
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart builds an inline image content part
func ImagePart(mime string, data []byte) Part {
	return Part{Image: data, ImageMIME: mime}
}

// Request describes a single chat-completion call
type Request struct {
	System      string
	Parts       []Part
	Model       string
	Temperature float32
}

// Client issues requests to the external language-model provider
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ErrEmptyResponse is returned when the provider call succeeds but
// returns no choices
var ErrEmptyResponse = errors.New("model returned no choices")

// UpstreamError wraps a failure of the generation provider
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream generation failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("upstream generation failed: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
