// Package classifier categorizes free-text green habit descriptions into a
// fixed set of environmental categories using keyword and pattern signals.
package classifier

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/verdantlabs/greensense/store"
)

// Classifier maps habit text to a category. It holds only the static rule
// tables and is safe for concurrent use.
type Classifier struct {
	rules []categoryRule
}

// NewClassifier creates a new Classifier backed by the built-in rule tables.
func NewClassifier() *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the best matching category for the given habit text, or
// CategoryOther when no signal matches. Keyword hits score 1, pattern hits
// score 2; ties resolve to the first-declared category.
func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)

	best := CategoryOther
	bestScore := 0
	for _, rule := range c.rules {
		score := 0
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		for _, pattern := range rule.patterns {
			if pattern.MatchString(lower) {
				score += 2
			}
		}
		// Strictly greater keeps the first-declared category on ties.
		if score > bestScore {
			best = rule.category
			bestScore = score
		}
	}

	if bestScore == 0 {
		slog.Debug("could not classify habit, defaulting to 'other'", slog.String("text", text))
		return CategoryOther
	}
	slog.Debug("classified habit",
		slog.String("text", text),
		slog.String("category", best),
		slog.Int("score", bestScore))
	return best
}

// Distribution counts habits per category, including CategoryOther.
func (c *Classifier) Distribution(habits []*store.Habit) map[string]int {
	if len(habits) == 0 {
		return map[string]int{}
	}
	distribution := make(map[string]int)
	for _, habit := range habits {
		category := habit.Category
		if category == "" {
			category = CategoryOther
		}
		distribution[category]++
	}
	return distribution
}

// Description returns the human-readable name of a category, or
// "Unknown Category" for anything outside the fixed set.
func (c *Classifier) Description(category string) string {
	if description, ok := descriptions[category]; ok {
		return description
	}
	return "Unknown Category"
}

// ImprovementHints suggests up to 3 categories where the user could broaden
// their habits. An empty log yields fixed onboarding hints.
func (c *Classifier) ImprovementHints(habits []*store.Habit) []string {
	if len(habits) == 0 {
		return append([]string{}, onboardingHints...)
	}

	distribution := c.Distribution(habits)

	hints := []string{}
	for _, category := range Categories {
		if distribution[category] == 0 {
			hints = append(hints, missingCategoryHints[category])
		}
	}

	// Categories tied for the minimum count could use more attention.
	// The minimum is taken over all logged categories, 'other' included,
	// but 'other' itself is never suggested.
	minCount := 0
	for _, count := range distribution {
		if minCount == 0 || count < minCount {
			minCount = count
		}
	}
	explored := 0
	for _, category := range Categories {
		if explored >= 2 {
			break
		}
		if distribution[category] == minCount {
			hints = append(hints, fmt.Sprintf("You could explore more %s habits.", strings.ToLower(c.Description(category))))
			explored++
		}
	}

	if len(hints) > 3 {
		hints = hints[:3]
	}
	return hints
}
