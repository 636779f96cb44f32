package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/missionctl/missionctl/pkg/services"
)

// listApplicationsHandler handles GET /api/v1/applications.
func (s *Server) listApplicationsHandler(c *echo.Context) error {
	apps, err := s.applications.List(c.Request().Context(), ownerID(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, apps)
}

// createApplicationHandler handles POST /api/v1/applications.
func (s *Server) createApplicationHandler(c *echo.Context) error {
	var req CreateApplicationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	created, err := s.applications.Create(c.Request().Context(), ownerID(c), services.CreateApplicationInput{
		Name:          req.Name,
		Phase:         req.Phase,
		RAG:           req.RAG,
		Stakeholders:  req.Stakeholders,
		Keywords:      req.Keywords,
		StatusSummary: req.StatusSummary,
		NextMilestone: req.NextMilestone,
		TargetDate:    req.TargetDate,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// getApplicationHandler handles GET /api/v1/applications/:id.
func (s *Server) getApplicationHandler(c *echo.Context) error {
	app, err := s.applications.Get(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, app)
}

// updateApplicationHandler handles PATCH /api/v1/applications/:id.
func (s *Server) updateApplicationHandler(c *echo.Context) error {
	var req UpdateApplicationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	updated, err := s.applications.Update(c.Request().Context(), ownerID(c), c.Param("id"), services.UpdateApplicationInput{
		Name:           req.Name,
		Phase:          req.Phase,
		RAG:            req.RAG,
		PriorityWeight: req.PriorityWeight,
		Stakeholders:   req.Stakeholders,
		Keywords:       req.Keywords,
		StatusSummary:  req.StatusSummary,
		NextMilestone:  req.NextMilestone,
		TargetDate:     req.TargetDate,
		ClearTarget:    req.ClearTarget,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// reorderApplicationsHandler handles POST /api/v1/applications/reorder.
func (s *Server) reorderApplicationsHandler(c *echo.Context) error {
	var req ReorderApplicationsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if len(req.OrderedIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "ordered_ids is required")
	}

	apps, err := s.applications.Reorder(c.Request().Context(), ownerID(c), req.OrderedIDs)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, apps)
}

// copyUpdateHandler handles POST /api/v1/implementations/:id/copy-update.
func (s *Server) copyUpdateHandler(c *echo.Context) error {
	var req CopyUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	saveToLog := req.SaveToLog == nil || *req.SaveToLog

	snippet, err := s.applications.CopyUpdate(c.Request().Context(), ownerID(c), c.Param("id"), saveToLog)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &CopyUpdateResponse{Text: snippet})
}

// listStatusUpdatesHandler handles GET /api/v1/applications/:id/status-updates.
func (s *Server) listStatusUpdatesHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	updates, err := s.applications.StatusUpdates(c.Request().Context(), ownerID(c), c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, updates)
}
