package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/evermorehealth/portal/internal/audit"
	"github.com/evermorehealth/portal/internal/domain"
	"github.com/evermorehealth/portal/internal/middleware"
	"github.com/evermorehealth/portal/internal/pubsub"
	"github.com/evermorehealth/portal/internal/session"
	"github.com/evermorehealth/portal/internal/view/dto/auth"
	"github.com/evermorehealth/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

const (
	msgVerified        = "Your email address has been confirmed."
	msgVerifyFailed    = "This verification link is invalid or has expired."
	msgVerifyNoToken   = "This verification link is missing its token."
	msgVerifyCannotRun = "We could not reach the verification service. Please try again shortly."
)

// VerifyHandler exchanges email verification tokens with the backend and
// turns a successful exchange into a session cookie.
type VerifyHandler struct {
	auth      domain.Authenticator
	publisher pubsub.Publisher
	secure    bool
}

// NewVerifyHandler creates a new VerifyHandler.
func NewVerifyHandler(auth domain.Authenticator, publisher pubsub.Publisher, secure bool) *VerifyHandler {
	return &VerifyHandler{auth: auth, publisher: publisher, secure: secure}
}

// verify calls the backend and sets the cookie only on a full success. It
// never touches the portal session, so a failed exchange sets no cookie.
func (h *VerifyHandler) verify(c echo.Context, token string) (*domain.VerifyEmailResult, error) {
	ctx := c.Request().Context()
	res, err := h.auth.VerifyEmail(ctx, token)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			middleware.FromContext(ctx).Error("Email verification unavailable", "error", err)
		}
		audit.Publish(ctx, h.publisher, audit.AuthEvent{Kind: audit.EmailVerifyFailed, SessionID: session.PeekID(c), Detail: "backend unavailable"})
		return nil, err
	}

	if res.Authenticated() {
		session.SetTokenCookie(c, res.Token, h.secure, true)
		audit.Publish(ctx, h.publisher, audit.AuthEvent{Kind: audit.EmailVerified, SessionID: session.PeekID(c)})
	} else {
		middleware.FromContext(ctx).Info("Email verification rejected", "status", res.Status)
		audit.Publish(ctx, h.publisher, audit.AuthEvent{Kind: audit.EmailVerifyFailed, SessionID: session.PeekID(c), Detail: res.Message})
	}
	return res, nil
}

// VerifyEmailAPI is the session verification proxy (POST /api/session/verify-email).
// The backend's status and JSON body are forwarded as they are.
func (h *VerifyHandler) VerifyEmailAPI(c echo.Context) error {
	var req VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, respTokenRequired)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, respTokenRequired)
	}

	res, err := h.verify(c, req.Token)
	if err != nil {
		return c.JSON(http.StatusBadGateway, respBackendUnavailable)
	}
	return c.JSONBlob(res.Status, res.Body)
}

// VerifyEmailPage handles the link from the verification email (GET /verify-email?token=).
func (h *VerifyHandler) VerifyEmailPage(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return renderPage(c, http.StatusBadRequest, "Verify email", pages.VerifyEmail(auth.VerifyEmailData{Message: msgVerifyNoToken}))
	}

	res, err := h.verify(c, token)
	if err != nil {
		return renderPage(c, http.StatusBadGateway, "Verify email", pages.VerifyEmail(auth.VerifyEmailData{Message: msgVerifyCannotRun}))
	}

	data := auth.VerifyEmailData{OK: res.Authenticated(), Message: res.Message}
	status := http.StatusOK
	switch {
	case data.OK && data.Message == "":
		data.Message = msgVerified
	case !data.OK:
		if data.Message == "" {
			data.Message = msgVerifyFailed
		}
		status = res.Status
		if status < 400 {
			status = http.StatusBadRequest
		}
	}
	return renderPage(c, status, "Verify email", pages.VerifyEmail(data))
}
