package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evermorehealth/portal/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) postJSON(target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return h.serve(req)
}

func TestVerifyEmailAPI(t *testing.T) {
	t.Run("missing token never reaches the backend", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"token":""}`, `{`} {
			h := newHarness(t)

			rec := h.postJSON("/api/session/verify-email", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.JSONEq(t, `{"ok":false,"message":"token required"}`, rec.Body.String(), body)
			assert.Zero(t, h.auth.VerifyEmailCalls(), body)
		}
	})

	t.Run("success forwards the reply and sets the cookie", func(t *testing.T) {
		h := newHarness(t)
		h.auth.VerifyEmailFn = func(_ context.Context, token string) (*domain.VerifyEmailResult, error) {
			assert.Equal(t, "tok-1", token)
			return &domain.VerifyEmailResult{
				Status: http.StatusOK,
				Body:   []byte(`{"ok":true,"token":"session-1","user":{"id":7}}`),
				OK:     true,
				Token:  "session-1",
			}, nil
		}

		rec := h.postJSON("/api/session/verify-email", `{"token":"tok-1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true,"token":"session-1","user":{"id":7}}`, rec.Body.String())
		c := cookie(rec, domain.SessionCookie)
		require.NotNil(t, c)
		assert.Equal(t, "session-1", c.Value)
		assert.Equal(t, domain.SessionMaxAge, c.MaxAge)
		assert.True(t, c.HttpOnly)
	})

	t.Run("ok without a token sets no cookie", func(t *testing.T) {
		h := newHarness(t)
		h.auth.VerifyEmailFn = func(context.Context, string) (*domain.VerifyEmailResult, error) {
			return &domain.VerifyEmailResult{Status: http.StatusOK, Body: []byte(`{"ok":true}`), OK: true}, nil
		}

		rec := h.postJSON("/api/session/verify-email", `{"token":"tok-1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Values(echo.HeaderSetCookie))
	})

	t.Run("backend rejections pass through unchanged", func(t *testing.T) {
		h := newHarness(t)
		h.auth.VerifyEmailFn = func(context.Context, string) (*domain.VerifyEmailResult, error) {
			return &domain.VerifyEmailResult{
				Status:  http.StatusGone,
				Body:    []byte(`{"ok":false,"message":"link expired"}`),
				Message: "link expired",
			}, nil
		}

		rec := h.postJSON("/api/session/verify-email", `{"token":"old"}`)

		assert.Equal(t, http.StatusGone, rec.Code)
		assert.JSONEq(t, `{"ok":false,"message":"link expired"}`, rec.Body.String())
		assert.Empty(t, rec.Header().Values(echo.HeaderSetCookie))
	})

	t.Run("unauthorized reply sets no cookie at all", func(t *testing.T) {
		h := newHarness(t)
		h.auth.VerifyEmailFn = func(context.Context, string) (*domain.VerifyEmailResult, error) {
			return &domain.VerifyEmailResult{
				Status:  http.StatusUnauthorized,
				Body:    []byte(`{"ok":false,"message":"invalid token"}`),
				Message: "invalid token",
			}, nil
		}

		rec := h.postJSON("/api/session/verify-email", `{"token":"forged"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Header().Values(echo.HeaderSetCookie))
	})

	t.Run("unreachable backend is a bad gateway", func(t *testing.T) {
		h := newHarness(t)
		h.auth.VerifyEmailFn = func(context.Context, string) (*domain.VerifyEmailResult, error) {
			return nil, errors.New("connection refused")
		}

		rec := h.postJSON("/api/session/verify-email", `{"token":"tok-1"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"ok":false,"message":"backend unavailable"}`, rec.Body.String())
		assert.Empty(t, rec.Header().Values(echo.HeaderSetCookie))
	})
}

func TestVerifyEmailPage(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h := newHarness(t)

		rec := h.get("/verify-email")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing its token")
		assert.Zero(t, h.auth.VerifyEmailCalls())
	})

	t.Run("success signs the user in", func(t *testing.T) {
		h := newHarness(t)
		h.auth.VerifyEmailFn = func(context.Context, string) (*domain.VerifyEmailResult, error) {
			return &domain.VerifyEmailResult{Status: http.StatusOK, Body: []byte(`{}`), OK: true, Token: "session-1"}, nil
		}

		rec := h.get("/verify-email?token=tok-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Continue to your portal")
		assert.NotNil(t, cookie(rec, domain.SessionCookie))
	})

	t.Run("rejection keeps the backend status", func(t *testing.T) {
		h := newHarness(t)
		h.auth.VerifyEmailFn = func(context.Context, string) (*domain.VerifyEmailResult, error) {
			return &domain.VerifyEmailResult{Status: http.StatusGone, Body: []byte(`{}`)}, nil
		}

		rec := h.get("/verify-email?token=old")

		assert.Equal(t, http.StatusGone, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid or has expired")
		assert.Nil(t, cookie(rec, domain.SessionCookie))
	})

	t.Run("unreachable backend", func(t *testing.T) {
		h := newHarness(t)
		h.auth.VerifyEmailFn = func(context.Context, string) (*domain.VerifyEmailResult, error) {
			return nil, errors.New("timeout")
		}

		rec := h.get("/verify-email?token=tok-1")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "could not reach the verification service")
	})
}
