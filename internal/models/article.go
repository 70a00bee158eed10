package models

// Article represents a published blog article
type Article struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Excerpt     string       `json:"excerpt"`
	Slug        string       `json:"slug"`
	SeoAnalysis *SeoAnalysis `json:"seoAnalysis"`
	Date        string       `json:"date"` // ISO date, no time component
	Author      string       `json:"author"`
}

// DefaultAuthor is the placeholder byline until authentication exists
const DefaultAuthor = "ViralChemist Team"

// SeoAnalysis holds the AI assessment of an article
type SeoAnalysis struct {
	Score    int             `json:"score"`
	Analysis []AnalysisPoint `json:"analysis"`
}

// AnalysisPoint is a single observation within an SEO analysis
type AnalysisPoint struct {
	Kind string `json:"kind"` // "Good" or "Improvement"
	Note string `json:"note"`
}

// ValidAnalysisKinds defines allowed analysis point kinds
var ValidAnalysisKinds = map[string]bool{
	"Good":        true,
	"Improvement": true,
}

// Valid reports whether the analysis is complete enough to persist as-is.
// A score outside 0-100, an empty point list, or a point of unknown kind
// counts as unusable, the caller substitutes the degraded default instead
// of repairing it.
func (s *SeoAnalysis) Valid() bool {
	if s == nil {
		return false
	}
	if s.Score < 0 || s.Score > 100 {
		return false
	}
	if len(s.Analysis) == 0 {
		return false
	}
	for _, p := range s.Analysis {
		if !ValidAnalysisKinds[p.Kind] {
			return false
		}
	}
	return true
}

// DegradedSeoAnalysis is returned when the analysis step fails but the
// generated post is still usable
func DegradedSeoAnalysis() *SeoAnalysis {
	return &SeoAnalysis{
		Score: 0,
		Analysis: []AnalysisPoint{
			{Kind: "Improvement", Note: "SEO analysis was unavailable for this article. Try regenerating to get a full report."},
		},
	}
}
