package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/evermorehealth/portal/internal/app"
	"github.com/evermorehealth/portal/internal/handlers"
	"github.com/evermorehealth/portal/internal/middleware"
	"github.com/evermorehealth/portal/internal/session"
	"github.com/evermorehealth/portal/web"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const msgInternalError = "Something went wrong on our side. Please try again."

// Server holds the echo instance and the services it was built from.
type Server struct {
	E    *echo.Echo
	deps app.Dependencies
}

// New creates a Server with middleware and routes registered.
func New(deps app.Dependencies) *Server {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		HSTSMaxAge:         hstsMaxAge(cfg.IsProduction()),
	}))

	// Configure and use session middleware
	e.Use(echosession.Middleware(session.NewStore(cfg.GetSessionSecret(), cfg.IsProduction())))

	e.StaticFS("/static", web.Static())

	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	s := &Server{E: e, deps: deps}
	s.RegisterRoutes()
	return s
}

func hstsMaxAge(production bool) int {
	if production {
		return 31536000
	}
	return 0
}

// setupErrorHandling replaces echo's error handler. Errors that are not
// *echo.HTTPError are unexpected and logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := msgInternalError

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = httpErrorMessage(he)
			if code >= http.StatusInternalServerError {
				slog.Error("HTTP error", "status", code, "error", err, "path", c.Request().URL.Path)
			}
		} else {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if rerr := handlers.RenderError(c, code, message); rerr != nil {
			slog.Warn("Failed to render error page", "error", rerr)
			if !c.Response().Committed {
				_ = c.String(code, message)
			}
		}
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch he.Code {
	case http.StatusNotFound:
		return "We could not find that page."
	case http.StatusMethodNotAllowed:
		return "That action is not allowed here."
	}
	if he.Code >= http.StatusInternalServerError {
		return msgInternalError
	}
	if msg, ok := he.Message.(string); ok && msg != "" {
		return msg
	}
	return fmt.Sprint(he.Message)
}
