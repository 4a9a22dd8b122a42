package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// sessionContextKey is the echo context key for the forwarded session value.
const sessionContextKey = "session"

// RequireSession returns a middleware that rejects requests without the
// backend's session cookie and stashes its value for pass-through. The
// gateway never interprets the cookie; the upstream owns authentication.
func RequireSession(cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"type":   "https://hogar.app/errors/unauthorized",
					"title":  "Unauthorized",
					"status": http.StatusUnauthorized,
					"detail": "Session cookie required",
				})
			}
			c.Set(sessionContextKey, cookie.Value)
			return next(c)
		}
	}
}

// GetSession returns the forwarded session value, or "" when absent.
func GetSession(c echo.Context) string {
	if session, ok := c.Get(sessionContextKey).(string); ok {
		return session
	}
	return ""
}
