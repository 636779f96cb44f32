package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getBriefingHandler handles GET /api/v1/briefing. An empty date defaults to
// today; an empty mode is resolved from the local clock.
func (s *Server) getBriefingHandler(c *echo.Context) error {
	response, err := s.briefings.GetBriefing(c.Request().Context(), ownerID(c), c.QueryParam("date"), c.QueryParam("mode"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, response)
}

// briefingNarrativeHandler handles POST /api/v1/briefing/narrative.
func (s *Server) briefingNarrativeHandler(c *echo.Context) error {
	var req NarrativeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	result, err := s.briefings.Narrative(c.Request().Context(), ownerID(c), req.Briefing)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
