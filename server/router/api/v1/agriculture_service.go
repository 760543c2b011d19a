package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// agricultureTips are general sustainable farming practices, served as-is.
var agricultureTips = []string{
	"Use drip irrigation to reduce water wastage",
	"Practice crop rotation to improve soil fertility",
	"Use organic fertilizers instead of chemical ones",
	"Harvest rainwater for irrigation",
	"Adopt solar-powered pumps in farms",
}

// cropRecommendations map known crops to a tailored practice.
var cropRecommendations = map[string]string{
	"rice":       "Use alternate wetting and drying irrigation to save water",
	"wheat":      "Adopt crop rotation and organic fertilizers to improve soil health",
	"vegetables": "Use drip irrigation and compost-based manure",
	"cotton":     "Practice integrated pest management to reduce pesticides",
	"sugarcane":  "Use mulching and controlled irrigation techniques",
}

const fallbackCropRecommendation = "Adopt sustainable and water-efficient farming practices"

// RecommendCropRequest is the payload for a crop recommendation.
type RecommendCropRequest struct {
	Crop string `json:"crop"`
}

// GetAgricultureTips returns the static list of sustainable farming tips.
func (s *APIV1Service) GetAgricultureTips(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"category": "agriculture",
		"tips":     agricultureTips,
	})
}

// RecommendCrop returns a farming recommendation for the given crop. Unknown
// crops get a generic recommendation.
func (s *APIV1Service) RecommendCrop(c echo.Context) error {
	request := &RecommendCropRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}

	crop := strings.ToLower(strings.TrimSpace(request.Crop))
	if crop == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "crop is required")
	}

	recommendation, ok := cropRecommendations[crop]
	if !ok {
		recommendation = fallbackCropRecommendation
	}
	return c.JSON(http.StatusOK, map[string]any{
		"crop":           crop,
		"recommendation": recommendation,
	})
}
