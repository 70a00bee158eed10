package validation

import (
	"strings"

	"github.com/viralchemist-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the set of validation failures for one request. Validators
// run before any network call is attempted.
type Errors []ValidationError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for _, ve := range e {
		fields = append(fields, ve.Field)
	}
	return "missing required fields: " + strings.Join(fields, ", ")
}

// OrNil returns the error set as an error, or nil when empty
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func required(errors Errors, field, value string) Errors {
	if strings.TrimSpace(value) == "" {
		errors = append(errors, ValidationError{Field: field, Message: field + " is required"})
	}
	return errors
}

// ValidatePost validates a post generation request
func ValidatePost(req *models.PostRequest) Errors {
	var errors Errors
	errors = required(errors, "topic", req.Topic)
	errors = required(errors, "goal", req.Goal)
	errors = required(errors, "tone", req.Tone)
	return errors
}

// ValidateComment validates a comment generation request. Two independent
// conditions, both must pass: at least one of post_text/image is present,
// and goal and tone are both present.
func ValidateComment(req *models.CommentRequest) Errors {
	var errors Errors
	if strings.TrimSpace(req.PostText) == "" && !req.HasImage() {
		errors = append(errors, ValidationError{
			Field:   "post_text",
			Message: "either post_text or an image must be provided",
		})
	}
	errors = required(errors, "goal", req.Goal)
	errors = required(errors, "tone", req.Tone)
	return errors
}

// ValidateHashtags validates a hashtag generation request
func ValidateHashtags(req *models.HashtagsRequest) Errors {
	var errors Errors
	errors = required(errors, "topic", req.Topic)
	return errors
}

// ValidateBlogGenerate validates a blog generation request
func ValidateBlogGenerate(req *models.BlogGenerateRequest) Errors {
	var errors Errors
	errors = required(errors, "keyword", req.Keyword)
	return errors
}

// ValidateRewrite validates a rewrite request. goal is optional.
func ValidateRewrite(req *models.RewriteRequest) Errors {
	var errors Errors
	errors = required(errors, "text", req.Text)
	return errors
}

// ValidatePublish validates an article publish request
func ValidatePublish(req *models.PublishRequest) Errors {
	var errors Errors
	errors = required(errors, "title", req.Title)
	errors = required(errors, "content", req.Content)
	if req.SeoAnalysis == nil {
		errors = append(errors, ValidationError{Field: "seoAnalysis", Message: "seoAnalysis is required"})
	}
	return errors
}
