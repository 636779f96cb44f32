package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/missionctl/missionctl/pkg/models"
	"github.com/missionctl/missionctl/pkg/services"
)

// intakeEmailHandler handles POST /api/v1/intake/email. A duplicate intake
// returns the original inbox item with duplicate set and no task.
func (s *Server) intakeEmailHandler(c *echo.Context) error {
	var req models.IntakeEmail
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	result, err := s.intake.ProcessEmail(c.Request().Context(), ownerID(c), req)
	if err != nil {
		return mapServiceError(err)
	}

	status, response := intakeResponse(result)
	return c.JSON(status, response)
}

// intakeResponse maps a pipeline outcome to a status and body. A failed
// extraction is a server error, but the stored inbox item id still goes out
// so the caller can retry or triage it.
func intakeResponse(result *services.IntakeResult) (int, *IntakeResponse) {
	response := &IntakeResponse{
		InboxItem: result.InboxItem,
		Task:      result.Task,
		Duplicate: result.Duplicate,
	}
	if result.InboxItem != nil {
		response.InboxItemID = result.InboxItem.ID
	}
	switch {
	case result.Duplicate:
		response.Message = "Duplicate email, already processed"
		return http.StatusOK, response
	case result.ExtractionFailed:
		response.Message = "Extraction failed, inbox item stored for retry"
		if result.InboxItem != nil && result.InboxItem.ProcessingError != nil {
			response.Message = *result.InboxItem.ProcessingError
		}
		return http.StatusInternalServerError, response
	default:
		return http.StatusCreated, response
	}
}

// listInboxHandler handles GET /api/v1/inbox.
func (s *Server) listInboxHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	items, err := s.intake.Inbox(c.Request().Context(), ownerID(c), c.QueryParam("triage_state"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// listInboxEventsHandler handles GET /api/v1/inbox/:id/events.
func (s *Server) listInboxEventsHandler(c *echo.Context) error {
	events, err := s.intake.Events(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, events)
}
