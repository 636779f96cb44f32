package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// logoutHandler handles POST /api/v1/auth/logout. The session token is
// revoked and the cookie expired; API-key requests have nothing to revoke
// and still succeed.
func (s *Server) logoutHandler(c *echo.Context) error {
	cookie, err := c.Request().Cookie(s.cfg.Auth.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := s.sessions.Revoke(c.Request().Context(), cookie.Value); err != nil {
			return mapServiceError(err)
		}
		http.SetCookie(c.Response(), &http.Cookie{
			Name:     s.cfg.Auth.SessionCookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return c.NoContent(http.StatusNoContent)
}
