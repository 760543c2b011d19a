package suggest

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/verdantlabs/greensense/store"
)

func habitsFor(counts map[string]int) []*store.Habit {
	habits := []*store.Habit{}
	for _, category := range append(append([]string{}, catalogCategories...), "other") {
		for i := 0; i < counts[category]; i++ {
			habits = append(habits, &store.Habit{Category: category})
		}
	}
	return habits
}

func TestGenerate_EmptyLog(t *testing.T) {
	e := NewEngine()
	rnd := rand.New(rand.NewSource(1))

	suggestions := e.Generate(rnd, nil)
	if len(suggestions) != len(starterCategories) {
		t.Fatalf("got %d suggestions, want %d", len(suggestions), len(starterCategories))
	}
	for i, suggestion := range suggestions {
		if suggestion.Category != starterCategories[i] {
			t.Errorf("suggestion %d: category = %q, want %q", i, suggestion.Category, starterCategories[i])
		}
		if suggestion.Difficulty != DifficultyBeginner {
			t.Errorf("suggestion %d: difficulty = %q, want beginner", i, suggestion.Difficulty)
		}
		if suggestion.Reason != "Great starting point for sustainable habits" {
			t.Errorf("suggestion %d: reason = %q", i, suggestion.Reason)
		}
		found := false
		for _, text := range catalog[suggestion.Category][DifficultyBeginner] {
			if text == suggestion.Text {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("suggestion %d: text %q not in beginner catalog for %s", i, suggestion.Text, suggestion.Category)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	e := NewEngine()
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	habits := habitsFor(map[string]int{"transport": 4, "energy": 2, "food": 6})

	first := e.generateAt(rand.New(rand.NewSource(42)), habits, now)
	second := e.generateAt(rand.New(rand.NewSource(42)), habits, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different output:\n%v\n%v", first, second)
	}
}

func TestGenerate_Bounds(t *testing.T) {
	e := NewEngine()
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	logs := []map[string]int{
		{"transport": 1},
		{"transport": 3, "energy": 2},
		{"transport": 10, "energy": 5, "waste": 3, "water": 2, "consumption": 1, "food": 4},
		{"transport": 25},
	}
	for seed := int64(0); seed < 20; seed++ {
		for _, counts := range logs {
			habits := habitsFor(counts)
			suggestions := e.generateAt(rand.New(rand.NewSource(seed)), habits, now)
			if len(suggestions) == 0 || len(suggestions) > 7 {
				t.Errorf("seed %d, log %v: got %d suggestions, want 1-7", seed, counts, len(suggestions))
			}
			seen := map[string]bool{}
			for _, suggestion := range suggestions {
				if seen[suggestion.Text] {
					t.Errorf("seed %d, log %v: duplicate text %q", seed, counts, suggestion.Text)
				}
				seen[suggestion.Text] = true
			}
		}
	}
}

func TestGenerate_ChallengeThreshold(t *testing.T) {
	e := NewEngine()
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	countChallenges := func(suggestions []Suggestion) int {
		n := 0
		for _, suggestion := range suggestions {
			if suggestion.Category == CategoryChallenge {
				n++
			}
		}
		return n
	}

	below := habitsFor(map[string]int{"transport": 19})
	for seed := int64(0); seed < 20; seed++ {
		if n := countChallenges(e.generateAt(rand.New(rand.NewSource(seed)), below, now)); n != 0 {
			t.Fatalf("seed %d: got %d challenges for 19 habits, want 0", seed, n)
		}
	}

	// A 20-entry single-category log yields 5 unique candidates, never more
	// than the truncation limit, so the challenge must survive exactly once.
	at := habitsFor(map[string]int{"transport": 20})
	for seed := int64(0); seed < 20; seed++ {
		if n := countChallenges(e.generateAt(rand.New(rand.NewSource(seed)), at, now)); n != 1 {
			t.Fatalf("seed %d: got %d challenges for 20 habits, want exactly 1", seed, n)
		}
	}
}

func TestGenerate_SeasonalAlwaysOffered(t *testing.T) {
	e := NewEngine()
	now := time.Date(2024, 12, 5, 12, 0, 0, 0, time.UTC)
	habits := habitsFor(map[string]int{"transport": 1})

	// One transport habit yields 5 candidates, never more than the
	// truncation limit, so the seasonal pick must survive.
	suggestions := e.generateAt(rand.New(rand.NewSource(7)), habits, now)
	found := false
	for _, suggestion := range suggestions {
		if suggestion.Category == CategorySeasonal {
			found = true
			if suggestion.Reason != "Seasonal suggestion for Winter" {
				t.Errorf("reason = %q", suggestion.Reason)
			}
		}
	}
	if !found {
		t.Error("expected a seasonal suggestion")
	}
}

func TestAnalyzePatterns(t *testing.T) {
	tests := []struct {
		name      string
		counts    map[string]int
		wantLevel string
	}{
		{"beginner", map[string]int{"transport": 4}, DifficultyBeginner},
		{"intermediate", map[string]int{"transport": 5}, DifficultyIntermediate},
		{"advanced", map[string]int{"transport": 20}, DifficultyAdvanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := analyzePatterns(habitsFor(tt.counts))
			if analysis.userLevel != tt.wantLevel {
				t.Errorf("level = %q, want %q", analysis.userLevel, tt.wantLevel)
			}
		})
	}

	t.Run("missing and underrepresented", func(t *testing.T) {
		analysis := analyzePatterns(habitsFor(map[string]int{"transport": 5, "energy": 1}))
		wantMissing := []string{"waste", "water", "consumption", "food"}
		if !reflect.DeepEqual(analysis.missing, wantMissing) {
			t.Errorf("missing = %v, want %v", analysis.missing, wantMissing)
		}
		// Mean is 3; only energy sits below it among logged categories.
		if !reflect.DeepEqual(analysis.underrepresented, []string{"energy"}) {
			t.Errorf("underrepresented = %v", analysis.underrepresented)
		}
	})
}

func TestTopCategories(t *testing.T) {
	counts := map[string]int{"transport": 1, "energy": 3, "food": 3, "other": 5}
	got := topCategories(counts, 2)
	// 'other' leads on count; energy beats food on the catalog order tie.
	want := []string{"other", "energy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topCategories = %v, want %v", got, want)
	}
}

func TestFinalize_Dedupe(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	suggestions := []Suggestion{
		{Text: "a", Reason: "first"},
		{Text: "b"},
		{Text: "a", Reason: "second"},
		{Text: "c"},
	}
	got := finalize(rnd, suggestions)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(got))
	}
	for _, suggestion := range got {
		if suggestion.Text == "a" && suggestion.Reason != "first" {
			t.Errorf("dedupe kept %q, want the first occurrence", suggestion.Reason)
		}
	}
}

func TestSeasonFor(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "winter"},
		{time.February, "winter"},
		{time.March, "spring"},
		{time.May, "spring"},
		{time.June, "summer"},
		{time.August, "summer"},
		{time.September, "fall"},
		{time.November, "fall"},
		{time.December, "winter"},
	}
	for _, tt := range tests {
		if got := seasonFor(tt.month); got != tt.want {
			t.Errorf("seasonFor(%v) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestExplain(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"transport", "Walk or bike for trips under 1 mile instead of driving", explanations["transport"]},
		{"energy", "Turn off lights when leaving a room", explanations["energy"]},
		{"water", "Take shorter showers (aim for 5 minutes or less)", explanations["water"]},
		{"fallback", "Do a good deed", fallbackExplanation},
		{"empty", "", fallbackExplanation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Explain(tt.text); got != tt.want {
				t.Errorf("Explain(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
