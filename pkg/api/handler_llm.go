package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// defaultUsageWindow bounds GET /api/v1/llm/usage when no cutoff is given.
const defaultUsageWindow = 30 * 24 * time.Hour

// listModelsHandler handles GET /api/v1/llm/models.
func (s *Server) listModelsHandler(c *echo.Context) error {
	models, err := s.catalog.ListModels(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models)
}

// listPreferencesHandler handles GET /api/v1/llm/preferences. The body maps
// feature to its resolved catalog entry.
func (s *Server) listPreferencesHandler(c *echo.Context) error {
	prefs, err := s.catalog.Preferences(c.Request().Context(), ownerID(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, prefs)
}

// setPreferenceHandler handles PUT /api/v1/llm/preferences/:feature.
func (s *Server) setPreferenceHandler(c *echo.Context) error {
	var req SetPreferenceRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	pref, err := s.catalog.SetPreference(c.Request().Context(), ownerID(c), c.Param("feature"), req.CatalogID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pref)
}

// clearPreferenceHandler handles DELETE /api/v1/llm/preferences/:feature.
func (s *Server) clearPreferenceHandler(c *echo.Context) error {
	if err := s.catalog.ClearPreference(c.Request().Context(), ownerID(c), c.Param("feature")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// usageHandler handles GET /api/v1/llm/usage.
func (s *Server) usageHandler(c *echo.Context) error {
	since := time.Now().UTC().Add(-defaultUsageWindow)
	if v := c.QueryParam("since"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "since must be an RFC 3339 timestamp")
		}
		since = parsed
	}

	summary, err := s.catalog.Usage(c.Request().Context(), ownerID(c), since)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
