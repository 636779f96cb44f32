package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/missionctl/missionctl/pkg/config"
)

func TestNewEcho_Routes(t *testing.T) {
	s := NewServer(&config.Config{Auth: &config.AuthConfig{
		APIKey:            "secret-key",
		APIOwnerID:        "owner-1",
		SessionCookieName: "mc_session",
	}}, nil, Services{})
	e := s.NewEcho()

	t.Run("api routes sit behind auth", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/tasks",
			"/api/v1/applications",
			"/api/v1/planner/plan",
			"/api/v1/calendar",
			"/api/v1/briefing",
			"/api/v1/inbox",
			"/api/v1/llm/models",
		} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("security headers are set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	})
}
