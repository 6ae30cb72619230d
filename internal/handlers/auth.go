package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/evermorehealth/portal/internal/audit"
	"github.com/evermorehealth/portal/internal/domain"
	"github.com/evermorehealth/portal/internal/forms"
	"github.com/evermorehealth/portal/internal/logging"
	"github.com/evermorehealth/portal/internal/middleware"
	"github.com/evermorehealth/portal/internal/pubsub"
	"github.com/evermorehealth/portal/internal/session"
	"github.com/evermorehealth/portal/internal/view"
	"github.com/evermorehealth/portal/internal/view/dto/auth"
	"github.com/evermorehealth/portal/internal/workflow"
	"github.com/evermorehealth/portal/web/src/templates/components"
	"github.com/evermorehealth/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Form names, used for guard keys and element ids.
const (
	formLogin          = "login"
	formSignup         = "signup"
	formForgotPassword = "forgot-password"
)

const (
	defaultAfterLogin = "/portal"

	msgSignedUp     = "Account created. Check your email to verify your address, then sign in."
	msgPasswordSet  = "Your password has been updated. Sign in with your new password."
	msgSignedOut    = "You have been signed out."
	msgStaleSession = "Your session expired. Please start again."
)

var errNoToken = errors.New("backend accepted the login but returned no token")

// AuthHandler serves the login, signup and password recovery flows.
type AuthHandler struct {
	auth      domain.Authenticator
	guard     *workflow.Guard
	recovery  *workflow.Recovery
	publisher pubsub.Publisher
	secure    bool
}

// NewAuthHandler creates a new AuthHandler. secure sets the Secure flag on
// the token cookie and should be true in production.
func NewAuthHandler(auth domain.Authenticator, guard *workflow.Guard, recovery *workflow.Recovery, publisher pubsub.Publisher, secure bool) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		guard:     guard,
		recovery:  recovery,
		publisher: publisher,
		secure:    secure,
	}
}

// --- Login ---

// LoginGet renders the login page (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	// Submits are guarded per session, so the id must exist before the first one.
	session.ID(c)
	data := auth.LoginData{Next: safeNext(c.QueryParam("next"))}
	return renderPage(c, http.StatusOK, "Sign in", pages.Login(data))
}

// LoginPost handles the login form submission (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Normalize()
	next := safeNext(c.FormValue("next"))

	var res *domain.LoginResult
	out := workflow.Submit(c.Request().Context(), h.guard, h.key(c, formLogin),
		func() forms.Errors { return forms.ValidateLogin(form) },
		func(ctx context.Context) (err error) {
			res, err = h.auth.Login(ctx, domain.LoginRequest{Email: form.Email, Password: form.Password})
			if err == nil && (res == nil || res.Token == "") {
				err = errNoToken
			}
			return err
		})

	if !out.OK() {
		h.logFailure(c, "Login failed", form.Email, out)
		if !errors.Is(out.Err, domain.ErrValidation) {
			h.publish(c, audit.LoginFailed, form.Email, out.Banner)
		}
		data := auth.LoginData{
			Form:      form,
			Errors:    forms.Visible(true, out.Errors),
			Attempted: true,
			Banner:    out.Banner,
			Next:      next,
		}
		return renderPage(c, outcomeStatus(out), "Sign in", pages.Login(data))
	}

	session.SetTokenCookie(c, res.Token, h.secure, form.Remember)
	h.publish(c, audit.LoginSucceeded, form.Email, "")
	return c.Redirect(http.StatusSeeOther, next)
}

// LoginValidate answers live validation of the login form (POST /login/validate).
func (h *AuthHandler) LoginValidate(c echo.Context) error {
	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Normalize()
	errs := forms.Visible(attempted(c), forms.ValidateLogin(form))
	return renderFragment(c, http.StatusOK, components.FieldErrorsOOB(formLogin, pages.LoginFields, errs))
}

// --- Signup ---

// SignupGet renders the signup page (GET /signup).
func (h *AuthHandler) SignupGet(c echo.Context) error {
	session.ID(c)
	return renderPage(c, http.StatusOK, "Create account", pages.Signup(auth.SignupData{}))
}

// SignupPost handles the signup form submission (POST /signup).
func (h *AuthHandler) SignupPost(c echo.Context) error {
	var form forms.SignupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Normalize()

	out := workflow.Submit(c.Request().Context(), h.guard, h.key(c, formSignup),
		func() forms.Errors { return forms.ValidateSignup(form) },
		func(ctx context.Context) error {
			_, err := h.auth.Signup(ctx, domain.SignupRequest{
				Name:     form.FullName(),
				Email:    form.Email,
				Password: form.Password,
				Phone:    form.Phone,
			})
			return err
		})

	if !out.OK() {
		h.logFailure(c, "Signup failed", form.Email, out)
		if !errors.Is(out.Err, domain.ErrValidation) {
			h.publish(c, audit.SignupFailed, form.Email, out.Banner)
		}
		data := auth.SignupData{
			Form:      form,
			Errors:    forms.Visible(true, out.Errors),
			Attempted: true,
			Banner:    out.Banner,
			Strength:  forms.PasswordStrength(form.Password),
		}
		return renderPage(c, outcomeStatus(out), "Create account", pages.Signup(data))
	}

	h.publish(c, audit.SignupCompleted, form.Email, "")
	view.SetFlashSuccess(c, msgSignedUp)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// SignupValidate answers live validation of the signup form (POST /signup/validate).
// The strength meter is refreshed on every keystroke, errors only after an attempt.
func (h *AuthHandler) SignupValidate(c echo.Context) error {
	var form forms.SignupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Normalize()
	errs := forms.Visible(attempted(c), forms.ValidateSignup(form))
	return renderFragment(c, http.StatusOK, g.Group([]g.Node{
		components.FieldErrorsOOB(formSignup, pages.SignupFields, errs),
		components.StrengthMeter(forms.PasswordStrength(form.Password), true),
	}))
}

// --- Forgot password ---

// ForgotPasswordGet renders the current recovery step (GET /forgot-password).
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	session.ID(c)
	flow := session.LoadResetFlow(c)
	return h.renderRecovery(c, http.StatusOK, flow, forms.ResetForm{Email: flow.Email}, workflow.Outcome{})
}

// ForgotPasswordPost advances the recovery flow (POST /forgot-password).
// The action field picks the transition; successful transitions redirect
// back to the GET so a refresh never resubmits.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	var form forms.ResetForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Normalize()

	ctx := c.Request().Context()
	flow := session.LoadResetFlow(c)
	key := h.key(c, formForgotPassword)
	action := c.FormValue("action")

	var out workflow.Outcome
	switch action {
	case "request":
		out = h.recovery.RequestCode(ctx, key, &flow, form)
		if out.OK() {
			h.publish(c, audit.ResetRequested, flow.Email, "")
		}
	case "resend":
		out = h.recovery.Resend(ctx, key, &flow)
		if out.OK() {
			h.publish(c, audit.ResetRequested, flow.Email, "resend")
		}
	case "code":
		out = h.recovery.SubmitCode(&flow, form)
	case "reset":
		email := flow.Email
		out = h.recovery.Reset(ctx, key, &flow, form)
		if out.OK() {
			h.publish(c, audit.ResetCompleted, email, "")
			if err := session.ClearResetFlow(c); err != nil {
				middleware.FromContext(ctx).Warn("Failed to clear reset flow", "error", err)
			}
			view.SetFlashSuccess(c, msgPasswordSet)
			return c.Redirect(http.StatusSeeOther, "/login")
		}
	case "back":
		flow.Back()
	case "restart":
		flow = workflow.NewResetFlow()
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action")
	}

	if err := session.SaveResetFlow(c, flow); err != nil {
		middleware.FromContext(ctx).Error("Failed to save reset flow", "error", err)
		view.SetFlashError(c, msgStaleSession)
		return c.Redirect(http.StatusSeeOther, "/forgot-password")
	}

	if out.OK() {
		return c.Redirect(http.StatusSeeOther, "/forgot-password")
	}
	h.logFailure(c, "Password recovery step failed", flow.Email, out)
	return h.renderRecovery(c, outcomeStatus(out), flow, form, out)
}

// ForgotPasswordCooldown renders the resend countdown fragment
// (GET /forgot-password/cooldown). htmx polls it once a second.
func (h *AuthHandler) ForgotPasswordCooldown(c echo.Context) error {
	flow := session.LoadResetFlow(c)
	return renderFragment(c, http.StatusOK, pages.ResendControl(h.remaining(flow)))
}

func (h *AuthHandler) renderRecovery(c echo.Context, status int, flow workflow.ResetFlow, form forms.ResetForm, out workflow.Outcome) error {
	if form.Email == "" {
		form.Email = flow.Email
	}
	data := auth.ForgotPasswordData{
		Flow:      flow,
		Form:      form,
		Errors:    forms.Visible(out.Err != nil, out.Errors),
		Attempted: out.Err != nil,
		Banner:    out.Banner,
		Remaining: h.remaining(flow),
	}
	return renderPage(c, status, "Reset password", pages.ForgotPassword(data))
}

func (h *AuthHandler) remaining(flow workflow.ResetFlow) int {
	if flow.Step != workflow.StepCode {
		return 0
	}
	return h.recovery.Cooldown().Remaining(flow.ResendAt)
}

// --- Session ---

// LogoutPost clears the token cookies (POST /logout).
func (h *AuthHandler) LogoutPost(c echo.Context) error {
	session.ClearTokenCookies(c, h.secure)
	h.publish(c, audit.LoggedOut, "", "")
	view.SetFlashSuccess(c, msgSignedOut)
	return c.Redirect(http.StatusSeeOther, "/")
}

// PortalGet renders the signed-in landing page (GET /portal).
func (h *AuthHandler) PortalGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Your portal", pages.Portal())
}

// --- helpers ---

func (h *AuthHandler) key(c echo.Context, form string) string {
	return workflow.Key(session.ID(c), form)
}

func (h *AuthHandler) publish(c echo.Context, kind audit.Kind, email, detail string) {
	audit.Publish(c.Request().Context(), h.publisher, audit.AuthEvent{
		Kind:      kind,
		Email:     logging.MaskEmail(email),
		SessionID: session.ID(c),
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		Detail:    detail,
	})
}

func (h *AuthHandler) logFailure(c echo.Context, msg, email string, out workflow.Outcome) {
	logger := middleware.FromContext(c.Request().Context())
	if errors.Is(out.Err, domain.ErrValidation) {
		logger.Debug(msg, "reason", "validation", "fields", len(out.Errors))
		return
	}
	logger.Warn(msg, "email", logging.MaskEmail(email), "error", out.Err)
}

// outcomeStatus maps a failed submission to the status of the re-rendered page.
func outcomeStatus(out workflow.Outcome) int {
	var apiErr *domain.APIError
	switch {
	case out.Err == nil:
		return http.StatusOK
	case errors.Is(out.Err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(out.Err, domain.ErrRequestInFlight), errors.Is(out.Err, domain.ErrInvalidStep):
		return http.StatusConflict
	case errors.Is(out.Err, domain.ErrCooldownActive):
		return http.StatusTooManyRequests
	case errors.As(out.Err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// attempted reports whether the form has been submitted before.
func attempted(c echo.Context) bool {
	return c.FormValue("attempted") == "true"
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return defaultAfterLogin
	}
	return next
}
