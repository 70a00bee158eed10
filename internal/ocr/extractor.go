package ocr

import (
	"context"
	"fmt"
)

// Extractor recognizes text in an image byte buffer
type Extractor interface {
	ExtractText(ctx context.Context, image []byte, language string) (string, error)
}

// Error wraps a recognition failure
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ocr failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("ocr failed: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
