package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// ownerIDKey is the echo context key holding the authenticated owner id.
const ownerIDKey = "owner_id"

// requireAuth admits a request via a session cookie or, when configured, the
// shared API key. API-key requests act as the configured API owner.
// Priority: session cookie > X-Mission-Control-Key header > Authorization
// bearer > key query parameter.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		if cookie, err := c.Request().Cookie(s.cfg.Auth.SessionCookieName); err == nil && cookie.Value != "" {
			session, err := s.sessions.Validate(c.Request().Context(), cookie.Value)
			if err == nil {
				c.Set(ownerIDKey, session.OwnerID)
				return next(c)
			}
			// An expired or revoked cookie can still fall through to the
			// API key, so a stale browser session never blocks automation.
		}

		if s.cfg.Auth.APIKeyConfigured() {
			if key := presentedAPIKey(c); key != "" &&
				subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.Auth.APIKey)) == 1 {
				c.Set(ownerIDKey, s.cfg.Auth.APIOwnerID)
				return next(c)
			}
		}

		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
}

// presentedAPIKey extracts the API key from the request, if any.
func presentedAPIKey(c *echo.Context) string {
	if key := c.Request().Header.Get("X-Mission-Control-Key"); key != "" {
		return key
	}
	if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.QueryParam("key")
}

// ownerID returns the authenticated owner set by requireAuth.
func ownerID(c *echo.Context) string {
	if id, ok := c.Get(ownerIDKey).(string); ok {
		return id
	}
	return ""
}
