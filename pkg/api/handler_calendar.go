package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionctl/missionctl/pkg/services"
)

// ingestCalendarHandler handles POST /api/v1/calendar/ingest.
func (s *Server) ingestCalendarHandler(c *echo.Context) error {
	var req IngestCalendarRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	events := make([]services.EventInput, 0, len(req.Events))
	for _, ev := range req.Events {
		events = append(events, services.EventInput{
			ExternalEventID: ev.ExternalEventID,
			Title:           ev.Title,
			Body:            ev.Body,
			StartAt:         ev.StartAt,
			EndAt:           ev.EndAt,
			IsAllDay:        ev.IsAllDay,
		})
	}

	stats, err := s.calendar.IngestEvents(c.Request().Context(), ownerID(c), req.Source, events, req.RangeStart, req.RangeEnd)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ingestICSHandler handles POST /api/v1/calendar/ingest/ics.
func (s *Server) ingestICSHandler(c *echo.Context) error {
	var req IngestICSRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if req.Payload == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payload is required")
	}

	stats, err := s.calendar.IngestICS(c.Request().Context(), ownerID(c), req.Payload, req.RangeStart, req.RangeEnd)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// calendarRangeHandler handles GET /api/v1/calendar.
func (s *Server) calendarRangeHandler(c *echo.Context) error {
	result, err := s.calendar.Range(c.Request().Context(), ownerID(c), c.QueryParam("rangeStart"), c.QueryParam("rangeEnd"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// meetingContextHandler handles PATCH /api/v1/calendar. The body names the
// event and carries the new meeting context; null clears it.
func (s *Server) meetingContextHandler(c *echo.Context) error {
	var req MeetingContextRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if req.EventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event_id is required")
	}

	meetingContext := ""
	if req.MeetingContext != nil {
		meetingContext = *req.MeetingContext
	}
	event, err := s.calendar.UpdateMeetingContext(c.Request().Context(), ownerID(c), req.EventID, meetingContext)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, event)
}
