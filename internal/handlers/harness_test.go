package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/evermorehealth/portal/internal/content"
	"github.com/evermorehealth/portal/internal/handlers"
	"github.com/evermorehealth/portal/internal/pubsub"
	"github.com/evermorehealth/portal/internal/rendering"
	portalsession "github.com/evermorehealth/portal/internal/session"
	"github.com/evermorehealth/portal/internal/testutils"
	"github.com/evermorehealth/portal/internal/workflow"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// harness is an echo instance wired with every handler and a cookie jar that
// carries the session between requests, like a browser would.
type harness struct {
	e       *echo.Echo
	auth    *testutils.FakeAuth
	clock   *clockwork.FakeClock
	store   *content.Store
	cookies map[string]*http.Cookie
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(portalsession.NewStore(testSessionSecret, false)))

	fake := &testutils.FakeAuth{}
	clock := clockwork.NewFakeClock()
	guard := workflow.NewGuard()
	recovery := workflow.NewRecovery(fake, guard, workflow.NewCooldown(clock, workflow.ResendCooldown))

	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	store, err := content.NewEmbeddedStore()
	require.NoError(t, err)

	authHandler := handlers.NewAuthHandler(fake, guard, recovery, bus, false)
	verify := handlers.NewVerifyHandler(fake, bus, false)
	pages := handlers.NewPagesHandler(store)

	e.GET("/login", authHandler.LoginGet)
	e.POST("/login", authHandler.LoginPost)
	e.POST("/login/validate", authHandler.LoginValidate)
	e.GET("/signup", authHandler.SignupGet)
	e.POST("/signup", authHandler.SignupPost)
	e.POST("/signup/validate", authHandler.SignupValidate)
	e.GET("/forgot-password", authHandler.ForgotPasswordGet)
	e.POST("/forgot-password", authHandler.ForgotPasswordPost)
	e.GET("/forgot-password/cooldown", authHandler.ForgotPasswordCooldown)
	e.POST("/logout", authHandler.LogoutPost)
	e.GET("/verify-email", verify.VerifyEmailPage)
	e.POST("/api/session/verify-email", verify.VerifyEmailAPI)
	e.GET("/", pages.HomeGet)
	e.GET("/careers", pages.CareersGet)
	e.GET("/careers/:id", pages.CareerDetail)
	e.GET("/health", handlers.HealthGet)

	return &harness{
		e:       e,
		auth:    fake,
		clock:   clock,
		store:   store,
		cookies: make(map[string]*http.Cookie),
	}
}

// request builds a request carrying the jar's cookies. A non-nil form is
// sent url-encoded.
func (h *harness) request(method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range h.cookies {
		req.AddCookie(c)
	}
	return req
}

// serve runs req and stores the cookies it sets.
func (h *harness) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(h.cookies, c.Name)
			continue
		}
		h.cookies[c.Name] = c
	}
	return rec
}

func (h *harness) get(target string) *httptest.ResponseRecorder {
	return h.serve(h.request(http.MethodGet, target, nil))
}

func (h *harness) post(target string, form url.Values) *httptest.ResponseRecorder {
	return h.serve(h.request(http.MethodPost, target, form))
}

func (h *harness) htmx(method, target string, form url.Values) *httptest.ResponseRecorder {
	req := h.request(method, target, form)
	req.Header.Set("HX-Request", "true")
	return h.serve(req)
}

// cookie returns the named cookie from a response, or nil.
func cookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
