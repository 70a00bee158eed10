package models

// Capability identifies one generation use-case
type Capability string

const (
	CapabilityPost        Capability = "post"
	CapabilityComment     Capability = "comment"
	CapabilityHashtags    Capability = "hashtags"
	CapabilityBlog        Capability = "blog"
	CapabilityRewrite     Capability = "rewrite"
	CapabilitySeoAnalysis Capability = "seo-analysis"
)

// PostRequest is the input for LinkedIn post generation
type PostRequest struct {
	Topic string `json:"topic"`
	Goal  string `json:"goal"`
	Tone  string `json:"tone"`
}

// CommentRequest is the input for comment generation. The image, when
// present, arrives as a multipart upload and is OCR'd into post text.
type CommentRequest struct {
	PostText  string `json:"post_text"`
	Goal      string `json:"goal"`
	Tone      string `json:"tone"`
	Image     []byte `json:"-"`
	ImageMIME string `json:"-"`
}

// HasImage reports whether an image payload was uploaded
func (r *CommentRequest) HasImage() bool {
	return len(r.Image) > 0
}

// HashtagsRequest is the input for hashtag generation
type HashtagsRequest struct {
	Topic string `json:"topic"`
}

// HashtagSet is the structured hashtag output: exactly 12 tags split
// 4/4/4 across broad, niche and long-tail buckets
type HashtagSet struct {
	Broad    []string `json:"broad"`
	Niche    []string `json:"niche"`
	LongTail []string `json:"long_tail"`
}

// BlogGenerateRequest is the input for blog article generation
type BlogGenerateRequest struct {
	Keyword string `json:"keyword"`
}

// BlogGeneration is the combined output of the generate-then-analyze flow
type BlogGeneration struct {
	Post        string       `json:"post"`
	SeoAnalysis *SeoAnalysis `json:"seoAnalysis"`
}

// PublishRequest is the input for publishing a generated article
type PublishRequest struct {
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	SeoAnalysis *SeoAnalysis `json:"seoAnalysis"`
}

// RewriteRequest is the input for text rewriting
type RewriteRequest struct {
	Text string `json:"text"`
	Goal string `json:"goal"`
}
