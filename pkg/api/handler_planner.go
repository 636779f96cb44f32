package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// buildPlanHandler handles POST /api/v1/plan. An empty plan_date plans for
// today in the workday timezone; the service resolves it.
func (s *Server) buildPlanHandler(c *echo.Context) error {
	var req BuildPlanRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	result, saved, err := s.planner.BuildPlan(c.Request().Context(), ownerID(c), req.PlanDate, req.Mode)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &PlanResponse{
		Plan:     result.Plan,
		Snapshot: result.Snapshot,
		Reasons:  result.Reasons,
		Saved:    saved,
	})
}

// latestPlanHandler handles GET /api/v1/plan. Returns the newest stored plan
// for the requested date; the service defaults an empty date to today in the
// workday timezone.
func (s *Server) latestPlanHandler(c *echo.Context) error {
	date := c.QueryParam("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	}

	plan, err := s.planner.Latest(c.Request().Context(), ownerID(c), date)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, plan)
}
