package v1

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/verdantlabs/greensense/server/internal/observability"
	"github.com/verdantlabs/greensense/store"
)

// CreateHabitRequest is the payload for logging a new habit.
type CreateHabitRequest struct {
	Habit string `json:"habit"`
	// Timestamp optionally overrides the store-generated timestamp.
	// Must be an ISO-8601 date-time string when supplied.
	Timestamp string `json:"timestamp,omitempty"`
}

// HabitResponse is the wire representation of a habit.
type HabitResponse struct {
	ID          int32   `json:"id"`
	UID         string  `json:"uid"`
	Text        string  `json:"text"`
	Category    string  `json:"category"`
	ImpactScore float64 `json:"impact_score"`
	Timestamp   string  `json:"timestamp"`
}

// CreateHabit classifies, scores, and appends a habit.
func (s *APIV1Service) CreateHabit(c echo.Context) error {
	ctx := c.Request().Context()

	request := &CreateHabitRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}

	text := strings.TrimSpace(request.Habit)
	if text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "habit description cannot be empty")
	}

	category := s.Classifier.Classify(text)
	impactScore := s.Scorer.ImpactScore(text, category)

	habit, err := s.Store.CreateHabit(ctx, &store.Habit{
		Text:        text,
		Category:    category,
		ImpactScore: impactScore,
		Timestamp:   request.Timestamp,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmptyText) {
			return echo.NewHTTPError(http.StatusBadRequest, "habit description cannot be empty")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to log habit").SetInternal(err)
	}

	if reqCtx, ok := observability.FromContext(ctx); ok {
		reqCtx.Info("logged habit",
			slog.Int64(observability.LogFieldHabitID, int64(habit.ID)),
			slog.String(observability.LogFieldCategory, habit.Category),
			slog.Float64("impact_score", habit.ImpactScore))
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Habit logged successfully",
		"habit":   convertHabit(habit),
	})
}

// ListHabits returns every logged habit in insertion order.
func (s *APIV1Service) ListHabits(c echo.Context) error {
	ctx := c.Request().Context()

	habits, err := s.Store.ListHabits(ctx, &store.FindHabit{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list habits").SetInternal(err)
	}

	list := make([]*HabitResponse, 0, len(habits))
	for _, habit := range habits {
		list = append(list, convertHabit(habit))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"habits": list,
		"count":  len(list),
	})
}

func convertHabit(habit *store.Habit) *HabitResponse {
	return &HabitResponse{
		ID:          habit.ID,
		UID:         habit.UID,
		Text:        habit.Text,
		Category:    habit.Category,
		ImpactScore: habit.ImpactScore,
		Timestamp:   habit.Timestamp,
	}
}
