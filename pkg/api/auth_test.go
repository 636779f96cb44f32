package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/pkg/config"
)

func authTestServer() *Server {
	return &Server{cfg: &config.Config{Auth: &config.AuthConfig{
		APIKey:            "secret-key",
		APIOwnerID:        "owner-1",
		SessionCookieName: "mc_session",
	}}}
}

// nextEcho returns a terminal handler that records the owner it ran as.
func nextEcho(ran *string) echo.HandlerFunc {
	return func(c *echo.Context) error {
		*ran = ownerID(c)
		return c.NoContent(http.StatusOK)
	}
}

func TestRequireAuth_APIKey(t *testing.T) {
	s := authTestServer()
	e := echo.New()

	tests := []struct {
		name    string
		prepare func(req *http.Request)
		wantOK  bool
	}{
		{
			name: "header key admits",
			prepare: func(req *http.Request) {
				req.Header.Set("X-Mission-Control-Key", "secret-key")
			},
			wantOK: true,
		},
		{
			name: "bearer token admits",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer secret-key")
			},
			wantOK: true,
		},
		{
			name:    "query key admits",
			prepare: func(req *http.Request) { req.URL.RawQuery = "key=secret-key" },
			wantOK:  true,
		},
		{
			name: "wrong key is rejected",
			prepare: func(req *http.Request) {
				req.Header.Set("X-Mission-Control-Key", "guess")
			},
			wantOK: false,
		},
		{
			name:    "no credentials are rejected",
			prepare: func(req *http.Request) {},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ranAs string
			err := s.requireAuth(nextEcho(&ranAs))(c)
			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, "owner-1", ranAs)
			} else {
				require.Error(t, err)
				he, ok := err.(*echo.HTTPError)
				require.True(t, ok)
				assert.Equal(t, http.StatusUnauthorized, he.Code)
				assert.Empty(t, ranAs)
			}
		})
	}
}

func TestRequireAuth_KeyNotConfigured(t *testing.T) {
	// Without an API owner the key cannot be mapped to anyone, so key
	// admission is off even when a key is set.
	s := &Server{cfg: &config.Config{Auth: &config.AuthConfig{
		APIKey:            "secret-key",
		SessionCookieName: "mc_session",
	}}}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("X-Mission-Control-Key", "secret-key")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ranAs string
	err := s.requireAuth(nextEcho(&ranAs))(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestOwnerID_Unset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Empty(t, ownerID(c))
}
