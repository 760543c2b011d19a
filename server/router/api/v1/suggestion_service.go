package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/verdantlabs/greensense/plugin/suggest"
	"github.com/verdantlabs/greensense/store"
)

// GetSuggestions generates personalized suggestions from the habit log.
func (s *APIV1Service) GetSuggestions(c echo.Context) error {
	ctx := c.Request().Context()

	if !s.Profile.SuggestionsEnabled {
		return echo.NewHTTPError(http.StatusNotFound, "suggestions are disabled")
	}

	habits, err := s.Store.ListHabits(ctx, &store.FindHabit{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list habits").SetInternal(err)
	}

	var suggestions []suggest.Suggestion
	s.rndMu.Lock()
	suggestions = s.Engine.Generate(s.rnd, habits)
	s.rndMu.Unlock()

	return c.JSON(http.StatusOK, map[string]any{
		"suggestions":  suggestions,
		"personalized": len(habits) > 0,
	})
}

// ExplainSuggestion returns the rationale behind a suggestion text.
func (s *APIV1Service) ExplainSuggestion(c echo.Context) error {
	text := strings.TrimSpace(c.QueryParam("text"))
	if text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing suggestion text")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"explanation": s.Engine.Explain(text),
	})
}
