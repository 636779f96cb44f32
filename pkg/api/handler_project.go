package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listProjectsHandler handles GET /api/v1/projects.
func (s *Server) listProjectsHandler(c *echo.Context) error {
	projects, err := s.projects.List(c.Request().Context(), ownerID(c), c.QueryParam("application_id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

// createProjectHandler handles POST /api/v1/projects.
func (s *Server) createProjectHandler(c *echo.Context) error {
	var req CreateProjectRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	created, err := s.projects.Create(c.Request().Context(), ownerID(c), req.ApplicationID, req.Name, req.Description)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}
