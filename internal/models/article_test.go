package models

import "testing"

func TestSeoAnalysisValid(t *testing.T) {
	good := []AnalysisPoint{{Kind: "Good", Note: "keyword in title"}}

	tests := []struct {
		name     string
		analysis *SeoAnalysis
		want     bool
	}{
		{
			name:     "complete analysis",
			analysis: &SeoAnalysis{Score: 80, Analysis: good},
			want:     true,
		},
		{
			name:     "nil analysis",
			analysis: nil,
			want:     false,
		},
		{
			name:     "score above range",
			analysis: &SeoAnalysis{Score: 101, Analysis: good},
			want:     false,
		},
		{
			name:     "score below range",
			analysis: &SeoAnalysis{Score: -1, Analysis: good},
			want:     false,
		},
		{
			name:     "empty point list",
			analysis: &SeoAnalysis{Score: 50},
			want:     false,
		},
		{
			name: "unknown point kind",
			analysis: &SeoAnalysis{Score: 50, Analysis: []AnalysisPoint{
				{Kind: "Neutral", Note: "meh"},
			}},
			want: false,
		},
		{
			name: "known kind mixed with unknown kind",
			analysis: &SeoAnalysis{Score: 50, Analysis: []AnalysisPoint{
				{Kind: "Good", Note: "fine"},
				{Kind: "Warning", Note: "not a kind"},
			}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.analysis.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestDegradedSeoAnalysis(t *testing.T) {
	degraded := DegradedSeoAnalysis()
	if degraded.Score != 0 {
		t.Errorf("Expected score 0, got %d", degraded.Score)
	}
	if len(degraded.Analysis) != 1 || degraded.Analysis[0].Kind != "Improvement" {
		t.Errorf("Expected a single Improvement note, got %+v", degraded.Analysis)
	}
	if !degraded.Valid() {
		t.Error("Expected the degraded default itself to be storable")
	}
}
