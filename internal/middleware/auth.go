package middleware

import (
	"net/http"
	"net/url"

	"github.com/evermorehealth/portal/internal/domain"
	"github.com/labstack/echo/v4"
)

// LoginPath is where RequireSession sends visitors without a token cookie.
const LoginPath = "/login"

// RequireSession protects routes that need a signed-in visitor. The token is
// opaque to this service, so only the cookie's presence is checked; the
// backend validates it on use.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(domain.SessionCookie)
		if err != nil || cookie.Value == "" {
			target := LoginPath + "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
			if c.Request().Header.Get("HX-Request") == "true" {
				c.Response().Header().Set("HX-Redirect", target)
				return c.NoContent(http.StatusUnauthorized)
			}
			return c.Redirect(http.StatusSeeOther, target)
		}
		return next(c)
	}
}
