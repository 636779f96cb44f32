package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests cover parameter validation only (the handler returns 400 before
// touching a service). Happy paths are covered by the service tests plus the
// route wiring in TestNewEcho_Routes.

func assertHTTPError(t *testing.T, err error, wantCode int, wantMsg string) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected echo.HTTPError")
	assert.Equal(t, wantCode, he.Code)
	if wantMsg != "" {
		assert.Contains(t, he.Message, wantMsg)
	}
}

func TestListTasksHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{"invalid needs_review", "needs_review=perhaps", "needs_review must be a boolean"},
		{"invalid due_soon", "due_soon=soonish", "due_soon must be a boolean"},
		{"invalid due_before", "due_before=tomorrow", "due_before must be an RFC 3339 timestamp"},
		{"invalid include_done", "include_done=2", "include_done must be a boolean"},
		{"invalid limit", "limit=ten", "limit must be an integer"},
		{"invalid offset", "offset=first", "offset must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.listTasksHandler(c)
			assertHTTPError(t, err, http.StatusBadRequest, tt.errMsg)
		})
	}
}

func TestCreateTaskHandler_InvalidBody(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.createTaskHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid request body")
}

func TestReorderApplicationsHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/reorder", strings.NewReader(`{"ordered_ids":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.reorderApplicationsHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "ordered_ids is required")
}

func TestLatestPlanHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/plan?date=someday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.latestPlanHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "date must be YYYY-MM-DD")
}

func TestIngestICSHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/ingest/ics", strings.NewReader(`{"payload":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.ingestICSHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "payload is required")
}

func TestMeetingContextHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/calendar", strings.NewReader(`{"meeting_context":"prep notes"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.meetingContextHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "event_id is required")
}

func TestUsageHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/llm/usage?since=yesterday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.usageHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "since must be an RFC 3339 timestamp")
}

func TestListCommitmentsHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/commitments?open_only=sometimes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.listCommitmentsHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest, "open_only must be a boolean")
}
