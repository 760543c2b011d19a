package v1

import (
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/verdantlabs/greensense/store"
)

// GetScore returns the user's green score with a per-category breakdown.
func (s *APIV1Service) GetScore(c echo.Context) error {
	ctx := c.Request().Context()

	habits, err := s.Store.ListHabits(ctx, &store.FindHabit{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list habits").SetInternal(err)
	}

	if len(habits) == 0 {
		return c.JSON(http.StatusOK, map[string]any{
			"green_score":  0,
			"total_habits": 0,
			"message":      "No habits logged yet",
		})
	}

	totalScore := s.Scorer.TotalScore(habits)
	return c.JSON(http.StatusOK, map[string]any{
		"green_score":     round2(totalScore / float64(len(habits))),
		"total_score":     totalScore,
		"total_habits":    len(habits),
		"score_breakdown": s.Scorer.Breakdown(habits),
	})
}

// GetStats returns the full aggregate picture of the habit log.
func (s *APIV1Service) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	if !s.Profile.AnalyticsEnabled {
		return echo.NewHTTPError(http.StatusNotFound, "analytics are disabled")
	}

	habits, err := s.Store.ListHabits(ctx, &store.FindHabit{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list habits").SetInternal(err)
	}

	if len(habits) == 0 {
		return c.JSON(http.StatusOK, map[string]any{
			"message": "No habits logged yet",
			"stats":   map[string]any{},
		})
	}

	topHabits := s.Scorer.TopHabits(habits, 0)
	topList := make([]*HabitResponse, 0, len(topHabits))
	for _, habit := range topHabits {
		topList = append(topList, convertHabit(habit))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"stats": map[string]any{
			"total_habits":      len(habits),
			"categories":        s.Classifier.Distribution(habits),
			"avg_daily_score":   s.Scorer.AverageDailyScore(habits),
			"improvement_trend": s.Scorer.ImprovementTrend(habits),
			"top_habits":        topList,
			"consistency":       s.Scorer.Consistency(habits),
		},
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetHints returns up to 3 category improvement hints.
func (s *APIV1Service) GetHints(c echo.Context) error {
	ctx := c.Request().Context()

	habits, err := s.Store.ListHabits(ctx, &store.FindHabit{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list habits").SetInternal(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"hints": s.Classifier.ImprovementHints(habits),
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
