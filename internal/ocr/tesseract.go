package ocr

import (
	"context"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog"
)

// Tesseract implements Extractor using the gosseract binding.
// A worker client is created per call and closed on every exit path.
type Tesseract struct {
	log zerolog.Logger
}

// Verify interface compliance
var _ Extractor = (*Tesseract)(nil)

// NewTesseract creates a Tesseract-backed extractor
func NewTesseract(log zerolog.Logger) *Tesseract {
	return &Tesseract{log: log.With().Str("component", "ocr").Logger()}
}

// ExtractText recognizes text in the given image bytes
func (t *Tesseract) ExtractText(_ context.Context, image []byte, language string) (string, error) {
	if language == "" {
		language = "eng"
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", &Error{Message: "unsupported language " + language, Err: err}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", &Error{Message: "image could not be loaded", Err: err}
	}

	text, err := client.Text()
	if err != nil {
		t.log.Error().Err(err).Msg("Text recognition failed")
		return "", &Error{Message: "text recognition failed", Err: err}
	}

	text = strings.TrimSpace(text)
	t.log.Debug().Int("chars", len(text)).Msg("Text extracted from image")
	return text, nil
}
