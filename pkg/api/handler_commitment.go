package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/missionctl/missionctl/pkg/services"
)

// listCommitmentsHandler handles GET /api/v1/commitments.
func (s *Server) listCommitmentsHandler(c *echo.Context) error {
	openOnly := false
	if v := c.QueryParam("open_only"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "open_only must be a boolean")
		}
		openOnly = parsed
	}

	commitments, err := s.commitments.List(c.Request().Context(), ownerID(c), openOnly)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, commitments)
}

// createCommitmentHandler handles POST /api/v1/commitments.
func (s *Server) createCommitmentHandler(c *echo.Context) error {
	var req CreateCommitmentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	created, err := s.commitments.Create(c.Request().Context(), ownerID(c), services.CreateCommitmentInput{
		Stakeholder: req.Stakeholder,
		Description: req.Description,
		Direction:   req.Direction,
		DueAt:       req.DueAt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// satisfyCommitmentHandler handles POST /api/v1/commitments/:id/satisfy.
func (s *Server) satisfyCommitmentHandler(c *echo.Context) error {
	satisfied, err := s.commitments.Satisfy(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, satisfied)
}
