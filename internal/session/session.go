// Package session holds the browser-side state of the portal: the signed
// session cookie that carries the session id and the forgot-password flow,
// and the HttpOnly cookie that transports the backend's opaque token.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/evermorehealth/portal/internal/domain"
	"github.com/evermorehealth/portal/internal/workflow"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// Name is the gorilla session holding portal state.
	Name = "portal-session"

	keySessionID = "sid"
	keyResetFlow = "reset_flow"
)

func init() {
	gob.Register(workflow.ResetFlow{})
}

// NewStore creates the cookie store backing every gorilla session.
func NewStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// ID returns the per-browser session id, minting and saving one if needed.
// It returns "" when no session store is installed.
func ID(c echo.Context) string {
	// An undecodable cookie still yields a fresh session, which replaces it.
	sess, _ := session.Get(Name, c)
	if sess == nil {
		return ""
	}
	if id, ok := sess.Values[keySessionID].(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	sess.Values[keySessionID] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("failed to save session id: %v", err)
	}
	return id
}

// PeekID returns the session id carried by the request without minting one.
func PeekID(c echo.Context) string {
	sess, err := session.Get(Name, c)
	if err != nil || sess == nil {
		return ""
	}
	id, _ := sess.Values[keySessionID].(string)
	return id
}

// LoadResetFlow returns the stored forgot-password flow, or a fresh one.
func LoadResetFlow(c echo.Context) workflow.ResetFlow {
	sess, err := session.Get(Name, c)
	if err != nil {
		return workflow.NewResetFlow()
	}
	flow, ok := sess.Values[keyResetFlow].(workflow.ResetFlow)
	if !ok {
		return workflow.NewResetFlow()
	}
	flow.Normalize()
	return flow
}

// SaveResetFlow persists the forgot-password flow.
func SaveResetFlow(c echo.Context, flow workflow.ResetFlow) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return err
	}
	sess.Values[keyResetFlow] = flow
	return sess.Save(c.Request(), c.Response())
}

// ClearResetFlow drops any stored forgot-password flow.
func ClearResetFlow(c echo.Context) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return err
	}
	delete(sess.Values, keyResetFlow)
	return sess.Save(c.Request(), c.Response())
}

// SetTokenCookie issues the backend token as an HttpOnly cookie. When persist
// is false the cookie lives for the browser session only.
func SetTokenCookie(c echo.Context, token string, secure, persist bool) {
	cookie := &http.Cookie{
		Name:     domain.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if persist {
		cookie.MaxAge = domain.SessionMaxAge
	}
	c.SetCookie(cookie)
}

// ClearTokenCookies expires the current and the legacy token cookies.
func ClearTokenCookies(c echo.Context, secure bool) {
	for _, name := range []string{domain.SessionCookie, domain.LegacySessionCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// Token returns the token cookie value, or "".
func Token(c echo.Context) string {
	cookie, err := c.Cookie(domain.SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
