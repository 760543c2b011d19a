package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/verdantlabs/greensense/store"
)

// CategoryStats is the per-category slice of a score breakdown.
type CategoryStats struct {
	Count      int     `json:"count"`
	TotalScore float64 `json:"total_score"`
	AvgScore   float64 `json:"avg_score"`
}

// Trend labels.
const (
	TrendInsufficientData = "insufficient_data"
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
)

// TrendResult describes the score trend over a habit log.
type TrendResult struct {
	Trend           string  `json:"trend"`
	WeeklyChange    float64 `json:"weekly_change"`
	TrendPercentage float64 `json:"trend_percentage"`
}

// ConsistencySnapshot describes how regularly habits are logged.
type ConsistencySnapshot struct {
	ConsistencyScore float64 `json:"consistency_score"`
	StreakDays       int     `json:"streak_days"`
	TotalDaysActive  int     `json:"total_days_active"`
}

// minTrendEntries is the smallest log for which a trend is meaningful.
const minTrendEntries = 7

// DefaultTopHabitsLimit is used when TopHabits receives a non-positive limit.
const DefaultTopHabitsLimit = 5

// TotalScore sums the impact scores of all habits, rounded to 2 decimals.
func (s *Scorer) TotalScore(habits []*store.Habit) float64 {
	if len(habits) == 0 {
		return 0
	}
	total := 0.0
	for _, habit := range habits {
		total += habit.ImpactScore
	}
	return round2(total)
}

// Breakdown returns count, total and average score per category.
func (s *Scorer) Breakdown(habits []*store.Habit) map[string]CategoryStats {
	breakdown := map[string]CategoryStats{}
	if len(habits) == 0 {
		return breakdown
	}

	for _, habit := range habits {
		category := habit.Category
		if category == "" {
			category = "other"
		}
		stats := breakdown[category]
		stats.Count++
		stats.TotalScore += habit.ImpactScore
		breakdown[category] = stats
	}

	for category, stats := range breakdown {
		stats.AvgScore = round2(stats.TotalScore / float64(stats.Count))
		stats.TotalScore = round2(stats.TotalScore)
		breakdown[category] = stats
	}
	return breakdown
}

// AverageDailyScore groups habits by calendar date and returns the mean of
// the per-date score sums. Habits with unparseable timestamps are skipped.
func (s *Scorer) AverageDailyScore(habits []*store.Habit) float64 {
	if len(habits) == 0 {
		return 0
	}

	dailyScores := map[string]float64{}
	for _, habit := range habits {
		date, ok := parseDate(habit.Timestamp)
		if !ok {
			continue
		}
		dailyScores[date] += habit.ImpactScore
	}
	if len(dailyScores) == 0 {
		return 0
	}

	total := 0.0
	for _, score := range dailyScores {
		total += score
	}
	return round2(total / float64(len(dailyScores)))
}

// ImprovementTrend compares the mean impact score of the chronologically
// first half of the log against the second half. Fewer than 7 entries yield
// TrendInsufficientData.
func (s *Scorer) ImprovementTrend(habits []*store.Habit) TrendResult {
	if len(habits) < minTrendEntries {
		return TrendResult{Trend: TrendInsufficientData}
	}

	sorted := make([]*store.Habit, len(habits))
	copy(sorted, habits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	mid := len(sorted) / 2
	firstMean := meanScore(sorted[:mid])
	secondMean := meanScore(sorted[mid:])

	change := secondMean - firstMean
	percentage := 0.0
	if firstMean > 0 {
		percentage = change / firstMean * 100
	}

	trend := TrendStable
	switch {
	case change > 1:
		trend = TrendImproving
	case change < -1:
		trend = TrendDeclining
	}

	return TrendResult{
		Trend:           trend,
		WeeklyChange:    round2(change),
		TrendPercentage: round1(percentage),
	}
}

// TopHabits returns the highest scoring habits, preserving input order among
// equal scores. A non-positive limit falls back to DefaultTopHabitsLimit.
func (s *Scorer) TopHabits(habits []*store.Habit, limit int) []*store.Habit {
	if limit <= 0 {
		limit = DefaultTopHabitsLimit
	}
	if len(habits) == 0 {
		return []*store.Habit{}
	}

	sorted := make([]*store.Habit, len(habits))
	copy(sorted, habits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ImpactScore > sorted[j].ImpactScore
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Consistency reports distinct active days, the current streak ending today,
// and a 0-100 consistency score.
func (s *Scorer) Consistency(habits []*store.Habit) ConsistencySnapshot {
	return s.consistencyAt(habits, time.Now())
}

func (s *Scorer) consistencyAt(habits []*store.Habit, now time.Time) ConsistencySnapshot {
	if len(habits) == 0 {
		return ConsistencySnapshot{}
	}

	activeDays := map[string]bool{}
	for _, habit := range habits {
		if date, ok := parseDate(habit.Timestamp); ok {
			activeDays[date] = true
		}
	}
	if len(activeDays) == 0 {
		return ConsistencySnapshot{}
	}

	dates := make([]string, 0, len(activeDays))
	for date := range activeDays {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := streakDays(dates, now)

	var consistency float64
	if len(habits) >= minTrendEntries {
		span := daysBetween(dates[len(dates)-1], dates[0]) + 1
		consistency = float64(len(activeDays)) / float64(span) * 100
	} else {
		consistency = float64(streak) / 7 * 100
	}

	return ConsistencySnapshot{
		ConsistencyScore: round1(minFloat(100, consistency)),
		StreakDays:       streak,
		TotalDaysActive:  len(activeDays),
	}
}

// streakDays counts consecutive active days ending today. dates must be
// distinct "2006-01-02" strings sorted descending.
func streakDays(dates []string, now time.Time) int {
	expected := now.Format(dateLayout)
	streak := 0
	for _, date := range dates {
		if date != expected {
			break
		}
		streak++
		day, _ := time.Parse(dateLayout, date)
		expected = day.AddDate(0, 0, -1).Format(dateLayout)
	}
	return streak
}

const dateLayout = "2006-01-02"

// timestampLayouts are tried in order when extracting the calendar date of a
// habit. RFC 3339 covers store-generated timestamps; the offset-less variants
// cover caller-supplied ones.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateLayout,
}

// parseDate extracts the calendar date from an ISO-8601 timestamp string.
// A "Z" suffix is handled by the RFC 3339 layout directly.
func parseDate(timestamp string) (string, bool) {
	timestamp = strings.TrimSpace(timestamp)
	if timestamp == "" {
		return "", false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t.Format(dateLayout), true
		}
	}
	return "", false
}

func daysBetween(from, to string) int {
	fromDay, err := time.Parse(dateLayout, from)
	if err != nil {
		return 0
	}
	toDay, err := time.Parse(dateLayout, to)
	if err != nil {
		return 0
	}
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func meanScore(habits []*store.Habit) float64 {
	if len(habits) == 0 {
		return 0
	}
	total := 0.0
	for _, habit := range habits {
		total += habit.ImpactScore
	}
	return total / float64(len(habits))
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
