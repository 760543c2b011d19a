// Package suggest generates personalized green habit recommendations from a
// user's logged habit history.
package suggest

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/verdantlabs/greensense/store"
)

// Suggestion is a single recommendation. Suggestions are generated per
// request and never stored.
type Suggestion struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Reason     string `json:"reason"`
}

// Engine assembles suggestions from the static catalogs. All randomness
// flows through the *rand.Rand passed by the caller, so output is
// reproducible under a fixed seed.
type Engine struct{}

// NewEngine creates a new suggestion Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// User level thresholds by total habit count.
const (
	intermediateThreshold = 5
	advancedThreshold     = 20
)

// patternAnalysis summarizes a habit log for suggestion assembly.
type patternAnalysis struct {
	userLevel        string
	categoryCounts   map[string]int
	missing          []string
	underrepresented []string
	totalHabits      int
}

// Generate produces 5-7 deduplicated suggestions for the given habit log.
// An empty log yields exactly one beginner suggestion per starter category.
func (e *Engine) Generate(rnd *rand.Rand, habits []*store.Habit) []Suggestion {
	return e.generateAt(rnd, habits, time.Now())
}

func (e *Engine) generateAt(rnd *rand.Rand, habits []*store.Habit, now time.Time) []Suggestion {
	if len(habits) == 0 {
		return e.starterSuggestions(rnd)
	}

	analysis := analyzePatterns(habits)

	suggestions := []Suggestion{}
	suggestions = append(suggestions, e.gapSuggestions(rnd, analysis)...)
	suggestions = append(suggestions, e.reinforcementSuggestions(rnd, analysis)...)
	suggestions = append(suggestions, e.levelingSuggestions(rnd, analysis)...)
	if analysis.totalHabits >= advancedThreshold {
		suggestions = append(suggestions, e.challengeSuggestion(rnd))
	}
	suggestions = append(suggestions, e.seasonalSuggestion(rnd, now))

	return finalize(rnd, suggestions)
}

// starterSuggestions covers users who have not logged anything yet.
func (e *Engine) starterSuggestions(rnd *rand.Rand) []Suggestion {
	suggestions := make([]Suggestion, 0, len(starterCategories))
	for _, category := range starterCategories {
		suggestions = append(suggestions, Suggestion{
			Text:       pick(rnd, catalog[category][DifficultyBeginner]),
			Category:   category,
			Difficulty: DifficultyBeginner,
			Reason:     "Great starting point for sustainable habits",
		})
	}
	return suggestions
}

// analyzePatterns derives level, gaps and weak spots from the habit log.
// Category iteration follows the catalog's declared order, so the result is
// deterministic for a given log.
func analyzePatterns(habits []*store.Habit) *patternAnalysis {
	counts := map[string]int{}
	for _, habit := range habits {
		category := habit.Category
		if category == "" {
			category = "other"
		}
		counts[category]++
	}

	level := DifficultyBeginner
	switch {
	case len(habits) >= advancedThreshold:
		level = DifficultyAdvanced
	case len(habits) >= intermediateThreshold:
		level = DifficultyIntermediate
	}

	missing := []string{}
	for _, category := range catalogCategories {
		if counts[category] == 0 {
			missing = append(missing, category)
		}
	}

	// Mean count over every logged category, 'other' included; 'other'
	// itself is never reinforced.
	mean := 0.0
	if len(counts) > 0 {
		total := 0
		for _, count := range counts {
			total += count
		}
		mean = float64(total) / float64(len(counts))
	}
	underrepresented := []string{}
	for _, category := range catalogCategories {
		if count := counts[category]; count > 0 && float64(count) < mean {
			underrepresented = append(underrepresented, category)
		}
	}

	return &patternAnalysis{
		userLevel:        level,
		categoryCounts:   counts,
		missing:          missing,
		underrepresented: underrepresented,
		totalHabits:      len(habits),
	}
}

// gapSuggestions fills up to 2 never-logged categories with beginner tips.
func (e *Engine) gapSuggestions(rnd *rand.Rand, analysis *patternAnalysis) []Suggestion {
	suggestions := []Suggestion{}
	for i, category := range analysis.missing {
		if i >= 2 {
			break
		}
		suggestions = append(suggestions, Suggestion{
			Text:       pick(rnd, catalog[category][DifficultyBeginner]),
			Category:   category,
			Difficulty: DifficultyBeginner,
			Reason:     fmt.Sprintf("Explore %s habits to diversify your environmental impact", capitalize(category)),
		})
	}
	return suggestions
}

// reinforcementSuggestions nudges 1 underrepresented category at the user's
// current level.
func (e *Engine) reinforcementSuggestions(rnd *rand.Rand, analysis *patternAnalysis) []Suggestion {
	suggestions := []Suggestion{}
	for i, category := range analysis.underrepresented {
		if i >= 1 {
			break
		}
		suggestions = append(suggestions, Suggestion{
			Text:       pick(rnd, catalog[category][analysis.userLevel]),
			Category:   category,
			Difficulty: analysis.userLevel,
			Reason:     fmt.Sprintf("Build on your %s habits", category),
		})
	}
	return suggestions
}

// levelingSuggestions pushes the 2 most active categories one tier above the
// user's current level. Advanced users stay at advanced.
func (e *Engine) levelingSuggestions(rnd *rand.Rand, analysis *patternAnalysis) []Suggestion {
	nextLevel := map[string]string{
		DifficultyBeginner:     DifficultyIntermediate,
		DifficultyIntermediate: DifficultyAdvanced,
		DifficultyAdvanced:     DifficultyAdvanced,
	}[analysis.userLevel]

	suggestions := []Suggestion{}
	for _, category := range topCategories(analysis.categoryCounts, 2) {
		tiers, ok := catalog[category]
		if !ok {
			// 'other' has no catalog entries and earns no leveling tip.
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Text:       pick(rnd, tiers[nextLevel]),
			Category:   category,
			Difficulty: nextLevel,
			Reason:     fmt.Sprintf("Level up your %s habits", category),
		})
	}
	return suggestions
}

func (e *Engine) challengeSuggestion(rnd *rand.Rand) Suggestion {
	return Suggestion{
		Text:       pick(rnd, challenges),
		Category:   CategoryChallenge,
		Difficulty: DifficultyAdvanced,
		Reason:     "Take on a sustainability challenge to deepen your impact",
	}
}

func (e *Engine) seasonalSuggestion(rnd *rand.Rand, now time.Time) Suggestion {
	season := seasonFor(now.Month())
	return Suggestion{
		Text:       pick(rnd, seasonalCatalog[season]),
		Category:   CategorySeasonal,
		Difficulty: DifficultyIntermediate,
		Reason:     fmt.Sprintf("Seasonal suggestion for %s", capitalize(season)),
	}
}

// seasonFor maps a calendar month to a Northern Hemisphere season.
func seasonFor(month time.Month) string {
	switch {
	case month >= time.March && month <= time.May:
		return "spring"
	case month >= time.June && month <= time.August:
		return "summer"
	case month >= time.September && month <= time.November:
		return "fall"
	default:
		return "winter"
	}
}

// finalize deduplicates by text (first occurrence wins), shuffles, and
// truncates to a random count between 5 and 7.
func finalize(rnd *rand.Rand, suggestions []Suggestion) []Suggestion {
	seen := map[string]bool{}
	unique := []Suggestion{}
	for _, suggestion := range suggestions {
		if seen[suggestion.Text] {
			continue
		}
		seen[suggestion.Text] = true
		unique = append(unique, suggestion)
	}

	rnd.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	limit := 5 + rnd.Intn(3)
	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// topCategories returns the n most-logged categories, counts descending,
// ties broken by catalog declaration order with 'other' last.
func topCategories(counts map[string]int, n int) []string {
	order := func(category string) int {
		for i, c := range catalogCategories {
			if c == category {
				return i
			}
		}
		return len(catalogCategories)
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if counts[categories[i]] != counts[categories[j]] {
			return counts[categories[i]] > counts[categories[j]]
		}
		return order(categories[i]) < order(categories[j])
	})

	if len(categories) > n {
		categories = categories[:n]
	}
	return categories
}

func pick(rnd *rand.Rand, options []string) string {
	return options[rnd.Intn(len(options))]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
