package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/evermorehealth/portal/internal/domain"
	portalsession "github.com/evermorehealth/portal/internal/session"
	"github.com/evermorehealth/portal/web/src/templates/components"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginForm(email, password string) url.Values {
	return url.Values{"email": {email}, "password": {password}}
}

func TestLoginPost(t *testing.T) {
	t.Run("field errors re-render without calling the backend", func(t *testing.T) {
		h := newHarness(t)

		rec := h.post("/login", loginForm("not-an-email", ""))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="login-email-error"`)
		assert.Contains(t, rec.Body.String(), "Enter a valid email")
		assert.Contains(t, rec.Body.String(), "Required")
		assert.Zero(t, h.auth.LoginCalls())
	})

	t.Run("success sets a session cookie and redirects", func(t *testing.T) {
		h := newHarness(t)

		rec := h.post("/login", loginForm(" jane@example.com ", "s3cret!"))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/portal", rec.Header().Get(echo.HeaderLocation))
		c := cookie(rec, domain.SessionCookie)
		require.NotNil(t, c)
		assert.Equal(t, "test-token", c.Value)
		assert.True(t, c.HttpOnly)
		assert.Zero(t, c.MaxAge, "without remember the cookie ends with the browser session")

		reqs := h.auth.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, domain.LoginRequest{Email: "jane@example.com", Password: "s3cret!"}, reqs[0])
	})

	t.Run("remember me persists the cookie", func(t *testing.T) {
		h := newHarness(t)
		form := loginForm("jane@example.com", "s3cret!")
		form.Set("remember", "true")

		rec := h.post("/login", form)

		c := cookie(rec, domain.SessionCookie)
		require.NotNil(t, c)
		assert.Equal(t, domain.SessionMaxAge, c.MaxAge)
	})

	t.Run("next stays on this site", func(t *testing.T) {
		cases := map[string]string{
			"/careers?q=nurse":     "/careers?q=nurse",
			"//evil.example":       "/portal",
			"/\\evil.example":      "/portal",
			"https://evil.example": "/portal",
			"":                     "/portal",
		}
		for next, want := range cases {
			h := newHarness(t)
			form := loginForm("jane@example.com", "s3cret!")
			form.Set("next", next)

			rec := h.post("/login", form)
			assert.Equal(t, want, rec.Header().Get(echo.HeaderLocation), "next=%q", next)
		}
	})

	t.Run("backend rejection shows its message", func(t *testing.T) {
		h := newHarness(t)
		h.auth.LoginFn = func(context.Context, domain.LoginRequest) (*domain.LoginResult, error) {
			return nil, &domain.APIError{Status: http.StatusUnauthorized, Message: "Invalid email or password"}
		}

		rec := h.post("/login", loginForm("jane@example.com", "wrong"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
		assert.Nil(t, cookie(rec, domain.SessionCookie))
	})

	t.Run("transport failures use the generic message", func(t *testing.T) {
		h := newHarness(t)
		h.auth.LoginFn = func(context.Context, domain.LoginRequest) (*domain.LoginResult, error) {
			return nil, errors.New("dial tcp: connection refused")
		}

		rec := h.post("/login", loginForm("jane@example.com", "s3cret!"))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.GenericFailureMessage)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("a reply without a token is a failure", func(t *testing.T) {
		h := newHarness(t)
		h.auth.LoginFn = func(context.Context, domain.LoginRequest) (*domain.LoginResult, error) {
			return &domain.LoginResult{}, nil
		}

		rec := h.post("/login", loginForm("jane@example.com", "s3cret!"))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Nil(t, cookie(rec, domain.SessionCookie))
	})

	t.Run("a second submit while one is in flight is rejected", func(t *testing.T) {
		h := newHarness(t)

		// A first-time visitor: the only prior request is the form page.
		require.Equal(t, http.StatusOK, h.get("/login").Code)

		release := make(chan struct{})
		h.auth.LoginFn = func(context.Context, domain.LoginRequest) (*domain.LoginResult, error) {
			<-release
			return &domain.LoginResult{Token: "t"}, nil
		}

		first := h.request(http.MethodPost, "/login", loginForm("jane@example.com", "s3cret!"))
		done := make(chan int, 1)
		go func() {
			rec := httptest.NewRecorder()
			h.e.ServeHTTP(rec, first)
			done <- rec.Code
		}()
		require.Eventually(t, func() bool { return h.auth.LoginCalls() == 1 }, 2*time.Second, 5*time.Millisecond)

		rec := h.post("/login", loginForm("jane@example.com", "s3cret!"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "already in progress")
		assert.Equal(t, 1, h.auth.LoginCalls())

		close(release)
		assert.Equal(t, http.StatusSeeOther, <-done)
	})
}

func TestFormPages_StartSession(t *testing.T) {
	for _, target := range []string{"/login", "/signup", "/forgot-password"} {
		t.Run(target, func(t *testing.T) {
			h := newHarness(t)

			rec := h.get(target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotNil(t, cookie(rec, portalsession.Name))
		})
	}
}

func TestLoginGet_KeepsNext(t *testing.T) {
	h := newHarness(t)

	rec := h.get("/login?next=%2Fportal%2Fappointments")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="/portal/appointments"`)
}

func TestLiveValidation(t *testing.T) {
	t.Run("errors stay hidden before the first attempt", func(t *testing.T) {
		h := newHarness(t)

		rec := h.htmx(http.MethodPost, "/login/validate", loginForm("bad", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="login-email-error"`)
		assert.Contains(t, rec.Body.String(), `hx-swap-oob="true"`)
		assert.NotContains(t, rec.Body.String(), "Enter a valid email")
	})

	t.Run("errors show after an attempt", func(t *testing.T) {
		h := newHarness(t)
		form := loginForm("bad", "")
		form.Set("attempted", "true")

		rec := h.htmx(http.MethodPost, "/login/validate", form)

		assert.Contains(t, rec.Body.String(), "Enter a valid email")
		assert.Zero(t, h.auth.LoginCalls())
	})

	t.Run("signup refreshes the strength meter", func(t *testing.T) {
		h := newHarness(t)

		rec := h.htmx(http.MethodPost, "/signup/validate", url.Values{"password": {"Abcdefg1!"}})

		assert.Contains(t, rec.Body.String(), `id="`+components.StrengthMeterID+`"`)
		assert.Contains(t, rec.Body.String(), "Strong")
		assert.NotContains(t, rec.Body.String(), "Required")
	})
}

func signupForm() url.Values {
	return url.Values{
		"firstName": {"Jane"},
		"lastName":  {"Doe"},
		"email":     {"jane@example.com"},
		"phone":     {"555-0100"},
		"dob":       {"1990-01-01"},
		"password":  {"Str0ng!pass"},
		"password2": {"Str0ng!pass"},
		"agree":     {"true"},
	}
}

func TestSignupPost(t *testing.T) {
	t.Run("mismatched passwords are caught locally", func(t *testing.T) {
		h := newHarness(t)
		form := signupForm()
		form.Set("password2", "different")

		rec := h.post("/signup", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Passwords do not match")
		assert.Zero(t, h.auth.SignupCalls())
	})

	t.Run("terms must be accepted", func(t *testing.T) {
		h := newHarness(t)
		form := signupForm()
		form.Del("agree")

		rec := h.post("/signup", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="signup-agree-error"`)
		assert.Zero(t, h.auth.SignupCalls())
	})

	t.Run("success flashes and redirects to login", func(t *testing.T) {
		h := newHarness(t)

		rec := h.post("/signup", signupForm())

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		reqs := h.auth.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, domain.SignupRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "Str0ng!pass",
			Phone:    "555-0100",
		}, reqs[0])

		page := h.get("/login")
		assert.Contains(t, page.Body.String(), "Account created.")

		// Flashes are shown once.
		again := h.get("/login")
		assert.NotContains(t, again.Body.String(), "Account created.")
	})

	t.Run("duplicate accounts surface the backend message", func(t *testing.T) {
		h := newHarness(t)
		h.auth.SignupFn = func(context.Context, domain.SignupRequest) (*domain.MessageResult, error) {
			return nil, &domain.APIError{Status: http.StatusConflict, Message: "An account with that email already exists"}
		}

		rec := h.post("/signup", signupForm())

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "An account with that email already exists")
		assert.Contains(t, rec.Body.String(), `value="Jane"`, "entered values are kept")
		assert.NotContains(t, rec.Body.String(), "Str0ng!pass", "passwords are never echoed")
	})
}

func TestLogoutPost(t *testing.T) {
	h := newHarness(t)

	rec := h.post("/logout", url.Values{})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	for _, name := range []string{domain.SessionCookie, domain.LegacySessionCookie} {
		c := cookie(rec, name)
		require.NotNil(t, c, name)
		assert.Negative(t, c.MaxAge, name)
		assert.Empty(t, c.Value, name)
	}
}
