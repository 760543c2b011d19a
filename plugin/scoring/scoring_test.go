package scoring

import (
	"testing"
)

func TestImpactScore(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		name     string
		text     string
		category string
		want     float64
	}{
		{"neutral transport", "took the bus", "transport", 30.0},
		{"neutral energy", "turned off lights", "energy", 16.0},
		{"neutral waste", "recycled bottles", "waste", 15.0},
		{"unknown category", "something else", "bogus", 10.0},
		{"high effort transport", "walked to the office", "transport", 36.0},
		{"low effort energy", "just turned off lights", "energy", 12.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ImpactScore(tt.text, tt.category); got != tt.want {
				t.Errorf("ImpactScore(%q, %q) = %v, want %v", tt.text, tt.category, got, tt.want)
			}
		})
	}
}

func TestImpactScore_Bounds(t *testing.T) {
	s := NewScorer()

	texts := []string{
		"walked to work all day",
		"just a quick moment",
		"organized a neighborhood cleanup for an entire week",
		"",
	}
	categories := []string{"transport", "energy", "waste", "water", "consumption", "food", "other", "bogus"}
	for _, text := range texts {
		for _, category := range categories {
			score := s.ImpactScore(text, category)
			if score < 0 || score > 100 {
				t.Errorf("ImpactScore(%q, %q) = %v, out of [0, 100]", text, category, score)
			}
		}
	}
}

func TestAnalyzeIntensity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"neutral", "took the bus", 1.0},
		{"high effort", "walked to the office", 1.2},
		{"low effort", "simply turned off the tap", 0.8},
		{"long duration", "kept the heating off for a week", 1.1},
		{"short duration", "turned off the tap for a minute", 0.9},
		{"high effort and long duration", "walked to work today", 1.3},
		{"low effort and short duration", "just a moment", 0.7},
		{"high effort scan applies once", "completely and totally organized", 1.2},
		{"empty", "", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeIntensity(tt.text)
			if !almostEqual(got, tt.want) {
				t.Errorf("analyzeIntensity(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeIntensity_Bounds(t *testing.T) {
	texts := []string{
		"just briefly remembered to unplug for a second",
		"walked to the farmers market, organized the pantry, entire day of cooking for a week",
	}
	for _, text := range texts {
		got := analyzeIntensity(text)
		if got < 0.5 || got > 1.5 {
			t.Errorf("analyzeIntensity(%q) = %v, out of [0.5, 1.5]", text, got)
		}
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
