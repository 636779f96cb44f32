package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/missionctl/missionctl/pkg/services"
)

// dueSoonHorizon matches the window the priority scorer treats as due soon.
const dueSoonHorizon = 72 * time.Hour

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	input := services.ListTasksInput{
		Status:        c.QueryParam("status"),
		TaskType:      c.QueryParam("task_type"),
		ApplicationID: c.QueryParam("application_id"),
	}
	// implementation_id is the wire-facing alias for application_id.
	if v := c.QueryParam("implementation_id"); v != "" {
		input.ApplicationID = v
	}
	if v := c.QueryParam("needs_review"); v != "" {
		needsReview, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "needs_review must be a boolean")
		}
		input.NeedsReview = &needsReview
	}
	if v := c.QueryParam("due_before"); v != "" {
		dueBefore, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "due_before must be an RFC 3339 timestamp")
		}
		input.DueBefore = &dueBefore
	}
	if v := c.QueryParam("due_soon"); v != "" {
		dueSoon, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "due_soon must be a boolean")
		}
		if dueSoon {
			cutoff := time.Now().UTC().Add(dueSoonHorizon)
			input.DueBefore = &cutoff
		}
	}
	if v := c.QueryParam("include_done"); v != "" {
		includeDone, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "include_done must be a boolean")
		}
		input.IncludeDone = includeDone
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		input.Limit = limit
	}
	if v := c.QueryParam("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "offset must be an integer")
		}
		input.Offset = offset
	}

	tasks, err := s.tasks.List(c.Request().Context(), ownerID(c), input)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req CreateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	created, err := s.tasks.Create(c.Request().Context(), ownerID(c), services.CreateTaskInput{
		Title:               req.Title,
		Description:         req.Description,
		ApplicationID:       req.ApplicationID,
		ProjectID:           req.ProjectID,
		Status:              req.Status,
		TaskType:            req.TaskType,
		PriorityScore:       req.PriorityScore,
		EstimatedMinutes:    req.EstimatedMinutes,
		DueAt:               req.DueAt,
		Blocker:             req.Blocker,
		WaitingOn:           req.WaitingOn,
		FollowUpAt:          req.FollowUpAt,
		StakeholderMentions: req.StakeholderMentions,
		SourceType:          req.SourceType,
		SourceURL:           req.SourceURL,
		PinnedExcerpt:       req.PinnedExcerpt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	t, err := s.tasks.Get(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// updateTaskHandler handles PATCH /api/v1/tasks/:id.
func (s *Server) updateTaskHandler(c *echo.Context) error {
	var req UpdateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	// implementation_id is the wire-facing alias for application_id.
	if req.ImplementationID != nil {
		req.ApplicationID = req.ImplementationID
	}

	updated, err := s.tasks.Update(c.Request().Context(), ownerID(c), c.Param("id"), services.UpdateTaskInput{
		Title:               req.Title,
		Description:         req.Description,
		ApplicationID:       req.ApplicationID,
		ProjectID:           req.ProjectID,
		Status:              req.Status,
		TaskType:            req.TaskType,
		PriorityScore:       req.PriorityScore,
		EstimatedMinutes:    req.EstimatedMinutes,
		EstimateSource:      req.EstimateSource,
		DueAt:               req.DueAt,
		ClearDueAt:          req.ClearDueAt,
		NeedsReview:         req.NeedsReview,
		Blocker:             req.Blocker,
		WaitingOn:           req.WaitingOn,
		FollowUpAt:          req.FollowUpAt,
		ClearFollowUpAt:     req.ClearFollowUpAt,
		StakeholderMentions: req.StakeholderMentions,
		PinnedExcerpt:       req.PinnedExcerpt,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// deleteTaskHandler handles DELETE /api/v1/tasks/:id.
func (s *Server) deleteTaskHandler(c *echo.Context) error {
	if err := s.tasks.Delete(c.Request().Context(), ownerID(c), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listChecklistHandler handles GET /api/v1/tasks/:id/checklist.
func (s *Server) listChecklistHandler(c *echo.Context) error {
	items, err := s.tasks.Checklist(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// setChecklistDoneHandler handles PATCH /api/v1/checklist/:id.
func (s *Server) setChecklistDoneHandler(c *echo.Context) error {
	var req SetChecklistDoneRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	item, err := s.tasks.SetChecklistItemDone(c.Request().Context(), ownerID(c), c.Param("id"), req.Done)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, item)
}
