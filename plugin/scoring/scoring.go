// Package scoring computes environmental impact scores for green habits and
// derives aggregate statistics over a habit log.
package scoring

import (
	"log/slog"
	"math"
	"strings"
)

// Per-category base impact weights (0-100 scale before multipliers).
var categoryWeights = map[string]float64{
	"transport":   25, // high impact: reduces emissions significantly
	"energy":      20,
	"waste":       15,
	"water":       12,
	"consumption": 18,
	"food":        22,
	"other":       8,
}

// Habit difficulty multipliers. Easier habits earn fewer points.
var difficultyMultipliers = map[string]float64{
	"transport":   1.2, // often requires planning/effort
	"energy":      0.8,
	"waste":       1.0,
	"water":       0.9,
	"consumption": 1.3, // requires research/planning
	"food":        1.1,
	"other":       1.0,
}

// Defaults for categories outside the fixed table.
const (
	defaultWeight     = 10.0
	defaultMultiplier = 1.0
)

// Intensity term lists. Each scan applies at most once; the first matching
// term in declaration order settles that scan.
var (
	highEffortTerms = []string{
		"all day", "entire", "completely", "totally", "exclusively",
		"walked to", "biked to", "cycled to", "carpooled with",
		"organized", "planned", "researched", "installed",
	}
	lowEffortTerms = []string{
		"just", "simply", "only", "briefly", "quickly",
		"remembered to", "tried to", "attempted",
	}
	longDurationTerms  = []string{"hour", "hours", "day", "week", "month"}
	shortDurationTerms = []string{"minute", "minutes", "second", "moment"}
)

// Scorer computes impact scores from the fixed weight tables.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// ImpactScore calculates the impact score for a single habit, clamped to
// [0, 100] and rounded to one decimal place. Unknown categories fall back to
// weight 10 and multiplier 1.0.
func (s *Scorer) ImpactScore(text, category string) float64 {
	baseWeight, ok := categoryWeights[category]
	if !ok {
		baseWeight = defaultWeight
	}
	difficulty, ok := difficultyMultipliers[category]
	if !ok {
		difficulty = defaultMultiplier
	}

	intensity := analyzeIntensity(text)
	score := math.Min(100, round1(baseWeight*difficulty*intensity))

	slog.Debug("calculated impact",
		slog.String("text", text),
		slog.Float64("score", score),
		slog.Float64("base", baseWeight),
		slog.Float64("difficulty", difficulty),
		slog.Float64("intensity", intensity))
	return score
}

// analyzeIntensity derives an effort multiplier from the habit text,
// bounded to [0.5, 1.5].
func analyzeIntensity(text string) float64 {
	lower := strings.ToLower(text)
	multiplier := 1.0

	for _, term := range highEffortTerms {
		if strings.Contains(lower, term) {
			multiplier += 0.2
			break
		}
	}
	for _, term := range lowEffortTerms {
		if strings.Contains(lower, term) {
			multiplier -= 0.2
			break
		}
	}
	for _, term := range longDurationTerms {
		if strings.Contains(lower, term) {
			multiplier += 0.1
			break
		}
	}
	for _, term := range shortDurationTerms {
		if strings.Contains(lower, term) {
			multiplier -= 0.1
			break
		}
	}

	return math.Max(0.5, math.Min(1.5, multiplier))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
