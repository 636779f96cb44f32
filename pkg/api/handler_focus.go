package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/missionctl/missionctl/pkg/services"
)

// getFocusHandler handles GET /api/v1/focus. A null body means no directive
// is currently in effect.
func (s *Server) getFocusHandler(c *echo.Context) error {
	directive, err := s.focus.Active(c.Request().Context(), ownerID(c), time.Now().UTC())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, directive)
}

// activateFocusHandler handles POST /api/v1/focus.
func (s *Server) activateFocusHandler(c *echo.Context) error {
	var req ActivateFocusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	directive, err := s.focus.Activate(c.Request().Context(), ownerID(c), services.ActivateDirectiveInput{
		DirectiveText: req.DirectiveText,
		ScopeType:     req.ScopeType,
		ScopeID:       req.ScopeID,
		ScopeValue:    req.ScopeValue,
		Strength:      req.Strength,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, directive)
}

// updateFocusHandler handles PATCH /api/v1/focus/:id. Re-activating a
// directive retires whichever one was active; deactivating stamps ends_at.
func (s *Server) updateFocusHandler(c *echo.Context) error {
	var req UpdateFocusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	directive, err := s.focus.Update(c.Request().Context(), ownerID(c), c.Param("id"), services.UpdateDirectiveInput{
		DirectiveText: req.DirectiveText,
		Strength:      req.Strength,
		IsActive:      req.IsActive,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, directive)
}

// clearFocusHandler handles POST /api/v1/focus/clear.
func (s *Server) clearFocusHandler(c *echo.Context) error {
	cleared, err := s.focus.Clear(c.Request().Context(), ownerID(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ClearFocusResponse{Cleared: cleared})
}

// listFocusHandler handles GET /api/v1/focus/history.
func (s *Server) listFocusHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	directives, err := s.focus.List(c.Request().Context(), ownerID(c), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, directives)
}
