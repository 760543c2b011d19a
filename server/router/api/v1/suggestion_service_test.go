package v1

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestGetSuggestions_EmptyLog(t *testing.T) {
	svc := newTestService(t)

	rec, err := doJSON(t, svc.GetSuggestions, http.MethodGet, "/api/v1/suggestions", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, false, body["personalized"])
	suggestions := body["suggestions"].([]any)
	require.Len(t, suggestions, 4)
	first := suggestions[0].(map[string]any)
	require.Equal(t, "transport", first["category"])
	require.Equal(t, "beginner", first["difficulty"])
}

func TestGetSuggestions_Personalized(t *testing.T) {
	svc := newTestService(t)

	_, err := doJSON(t, svc.CreateHabit, http.MethodPost, "/api/v1/habits", `{"habit": "Took the bus"}`)
	require.NoError(t, err)

	rec, err := doJSON(t, svc.GetSuggestions, http.MethodGet, "/api/v1/suggestions", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, true, body["personalized"])
	suggestions := body["suggestions"].([]any)
	require.NotEmpty(t, suggestions)
	require.LessOrEqual(t, len(suggestions), 7)
}

func TestGetSuggestions_Disabled(t *testing.T) {
	svc := newTestService(t)
	svc.Profile.SuggestionsEnabled = false

	_, err := doJSON(t, svc.GetSuggestions, http.MethodGet, "/api/v1/suggestions", "")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestExplainSuggestion(t *testing.T) {
	svc := newTestService(t)

	rec, err := doJSON(t, svc.ExplainSuggestion, http.MethodGet, "/api/v1/suggestions/explain?text=Walk+or+bike+for+trips+under+1+mile", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	explanation := decodeBody(t, rec)["explanation"].(string)
	require.Contains(t, explanation, "Transportation")
}

func TestExplainSuggestion_MissingText(t *testing.T) {
	svc := newTestService(t)

	_, err := doJSON(t, svc.ExplainSuggestion, http.MethodGet, "/api/v1/suggestions/explain", "")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, httpErr.Code)
}
