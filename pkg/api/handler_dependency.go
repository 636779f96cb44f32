package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionctl/missionctl/pkg/services"
)

// listDependenciesHandler handles GET /api/v1/tasks/:id/dependencies.
func (s *Server) listDependenciesHandler(c *echo.Context) error {
	deps, err := s.dependencies.List(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, deps)
}

// addDependencyHandler handles POST /api/v1/tasks/:id/dependencies.
func (s *Server) addDependencyHandler(c *echo.Context) error {
	var req AddDependencyRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	dep, err := s.dependencies.Add(c.Request().Context(), ownerID(c), c.Param("id"), services.AddDependencyInput{
		DependsOnTaskID:       req.DependsOnTaskID,
		DependsOnCommitmentID: req.DependsOnCommitmentID,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, dep)
}

// removeDependencyHandler handles DELETE /api/v1/tasks/:id/dependencies/:dep_id.
func (s *Server) removeDependencyHandler(c *echo.Context) error {
	if err := s.dependencies.Remove(c.Request().Context(), ownerID(c), c.Param("id"), c.Param("dep_id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
